package uiutil

import (
	"image"
	"image/draw"
	"testing"
	"time"

	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

type testWindow struct {
	evs     chan interface{}
	img     *image.RGBA
	name    string
	puts    []image.Rectangle
	cursors []event.Cursor
}

func newTestWindow() *testWindow {
	return &testWindow{
		evs: make(chan interface{}, 8),
		img: image.NewRGBA(image.Rect(0, 0, 1, 1)),
	}
}

func (w *testWindow) NextEvent() interface{}  { return <-w.evs }
func (w *testWindow) Close() error             { return nil }
func (w *testWindow) SetWindowName(s string)   { w.name = s }
func (w *testWindow) Image() draw.Image        { return w.img }
func (w *testWindow) SetCursor(c event.Cursor) { w.cursors = append(w.cursors, c) }
func (w *testWindow) PutImage(r image.Rectangle) error {
	w.puts = append(w.puts, r)
	return nil
}
func (w *testWindow) ResizeImage(r image.Rectangle) error {
	w.img = image.NewRGBA(r)
	return nil
}

//----------

func TestBasicUIEventLoop(t *testing.T) {
	win := newTestWindow()
	root := widget.NewRectangle("bg")
	root.SetTheme(widget.DefaultTheme())
	ctx := widget.NewContext()

	ui := NewBasicUI(win, "test", root, ctx)
	var resized image.Rectangle
	ui.OnResize = func(r image.Rectangle) { resized = r }

	ran := false
	r := image.Rect(0, 0, 40, 30)
	win.evs <- &event.WindowResize{Rect: r}
	win.evs <- &UIRunFuncEvent{func() { ran = true }}
	win.evs <- &event.WindowClose{}
	ui.EventLoop()

	if win.name != "test" {
		t.Fatal(win.name)
	}
	if root.Bounds != r || resized != r {
		t.Fatal(root.Bounds, resized)
	}
	if len(win.puts) == 0 || win.puts[0] != r {
		t.Fatal(win.puts)
	}
	if !ran {
		t.Fatal("func not run")
	}
}

func TestBasicUISendAfterLoopEnd(t *testing.T) {
	win := newTestWindow()
	root := widget.NewRectangle("bg")
	root.SetTheme(widget.DefaultTheme())
	ui := NewBasicUI(win, "test", root, widget.NewContext())

	win.evs <- &event.WindowClose{}
	ui.EventLoop()

	// nobody reads the events anymore
	for full := false; !full; {
		select {
		case ui.events <- &frameEvent{}:
		default:
			full = true
		}
	}

	res := make(chan bool, 2)
	go func() {
		res <- ui.RunOnUIThread(func() {})
		res <- ui.send(&frameEvent{}) // same path as a pending frame timer
	}()
	for i := 0; i < 2; i++ {
		select {
		case ok := <-res:
			if ok {
				t.Fatal("event sent after loop end")
			}
		case <-time.After(2 * time.Second):
			t.Fatal("send blocked after loop end")
		}
	}

	// a late frame request does not block the caller
	ui.requestFrame(0)
}
