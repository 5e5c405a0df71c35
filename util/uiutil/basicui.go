package uiutil

import (
	"image"
	"image/draw"
	"log"
	"sync"
	"time"

	"github.com/jmigpin/scrollview/driver"
	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

type BasicUI struct {
	DrawFrameRate int // frame per second
	RootNode      widget.Node
	Win           driver.Window
	Ctx           *widget.Context

	// Called after the root bounds change, before painting.
	OnResize func(r image.Rectangle)

	ae        *widget.ApplyEvent
	events    chan interface{}
	lastPaint time.Time
	curCursor event.Cursor
	frameReq  bool // a frame event is scheduled
	done      chan struct{}
	doneOnce  sync.Once
}

func NewBasicUI(win driver.Window, winName string, root widget.Node, ctx *widget.Context) *BasicUI {
	win.SetWindowName(winName)

	ui := &BasicUI{
		DrawFrameRate: 37,
		RootNode:      root,
		Win:           win,
		Ctx:           ctx,
		events:        make(chan interface{}, 32),
		done:          make(chan struct{}),
	}
	ui.ae = widget.NewApplyEvent(ctx, ui)

	// window event loop with mousemove event filter
	events2 := make(chan interface{}, cap(ui.events))
	go func() {
		for {
			ev := win.NextEvent()
			events2 <- ev
			if _, ok := ev.(*event.WindowClose); ok {
				close(events2)
				return
			}
		}
	}()
	go MouseMoveFilterLoop(events2, ui.events, &ui.DrawFrameRate)

	return ui
}

func (ui *BasicUI) Close() error {
	return ui.Win.Close()
}

//----------

// Runs until the window is closed. Later sends to the loop are dropped.
func (ui *BasicUI) EventLoop() {
	defer ui.doneOnce.Do(func() { close(ui.done) })
	for ev := range ui.events {
		if _, ok := ev.(*event.WindowClose); ok {
			return
		}
		ui.HandleEvent(ev)
		ui.TickAndPaint()
	}
}

func (ui *BasicUI) HandleEvent(ev interface{}) {
	switch t := ev.(type) {
	case *event.WindowResize:
		ui.resize(t.Rect)
	case *event.WindowExpose:
		ui.RootNode.Embed().MarkNeedsPaint()
	case *event.WindowInput:
		ui.ae.Apply(ui.RootNode, t.Event, t.Point)
	case *UIRunFuncEvent:
		t.Func()
	case *frameEvent:
		ui.frameReq = false
	case error:
		log.Print(t)
	default:
		log.Printf("unhandled event: %#v", ev)
	}
}

func (ui *BasicUI) resize(r image.Rectangle) {
	if err := ui.Win.ResizeImage(r); err != nil {
		log.Print(err)
		return
	}
	en := ui.RootNode.Embed()
	en.SetBounds(ui.Win.Image().Bounds())
	if ui.OnResize != nil {
		ui.OnResize(en.Bounds)
	}
	en.MarkNeedsPaint()
}

//----------

// Advances the animations and paints at most once per frame. Should be called in the event loop after every event.
func (ui *BasicUI) TickAndPaint() {
	frameDur := time.Second / time.Duration(ui.DrawFrameRate)
	d := time.Since(ui.lastPaint)
	if d < frameDur {
		ui.requestFrame(frameDur - d)
		return
	}

	animating := widget.TickTree(ui.RootNode)
	if ui.paintIfNeeded() {
		ui.lastPaint = time.Now()
	}
	if animating {
		ui.requestFrame(frameDur)
	}
}

func (ui *BasicUI) paintIfNeeded() bool {
	return widget.PaintIfNeeded(ui.RootNode, ui.Win.Image(), func(r image.Rectangle) {
		if err := ui.Win.PutImage(r); err != nil {
			log.Print(err)
		}
	})
}

// Ensures the loop iterates again after the duration.
func (ui *BasicUI) requestFrame(d time.Duration) {
	if ui.frameReq {
		return
	}
	ui.frameReq = true
	time.AfterFunc(d, func() {
		ui.send(&frameEvent{})
	})
}

// Returns false if the event loop has ended.
func (ui *BasicUI) send(ev interface{}) bool {
	select {
	case ui.events <- ev:
		return true
	case <-ui.done:
		return false
	}
}

//----------

func (ui *BasicUI) Image() draw.Image {
	return ui.Win.Image()
}

// Implements widget.CursorContext
func (ui *BasicUI) SetCursor(c event.Cursor) {
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

// Returns false if the event loop has ended and f will not run.
func (ui *BasicUI) RunOnUIThread(f func()) bool {
	return ui.send(&UIRunFuncEvent{f})
}

//----------

type UIRunFuncEvent struct {
	Func func()
}

type frameEvent struct{}
