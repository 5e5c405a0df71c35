package xdriver

import (
	"image"
	"image/draw"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/driver/xdriver/wimage"
	"github.com/jmigpin/scrollview/driver/xdriver/wmprotocols"
	"github.com/jmigpin/scrollview/driver/xdriver/xcursors"
	"github.com/jmigpin/scrollview/driver/xdriver/xinput"
	"github.com/jmigpin/scrollview/driver/xdriver/xutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/pkg/errors"
)

// Initial window size, before the first configure notify.
var defaultSize = image.Point{500, 500}

// X11 window implementing driver.Window. Events are read in a goroutine and delivered through NextEvent.
type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	Cursors *xcursors.Cursors
	XInput  *xinput.XInput
	Wmp     *wmprotocols.WMP
	WImg    *wimage.WImage

	events    chan interface{}
	closeOnce sync.Once
}

func NewWindow() (*Window, error) {
	conn, err := xgb.NewConnDisplay(displayName())
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}
	win := &Window{Conn: conn, events: make(chan interface{}, 8)}
	if err := win.setup(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "x window setup")
	}
	go win.readEvents()
	return win, nil
}

// Empty uses xgb's own lookup of $DISPLAY.
func displayName() string {
	if d := os.Getenv("DISPLAY"); d != "" {
		return d
	}
	if runtime.GOOS == "windows" {
		return "127.0.0.1:0.0"
	}
	return ""
}

//----------

func (win *Window) setup() error {
	win.Screen = xproto.Setup(win.Conn).DefaultScreen(win.Conn)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"create window", win.createWindow},
		{"atoms", func() error { return xutil.LoadAtoms(win.Conn, &atoms) }},
		{"graphic context", win.createGC},
		{"input", win.setupInput},
		{"image", win.setupImage},
		{"wm protocols", win.setupWMP},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return errors.Wrap(err, s.name)
		}
	}
	return nil
}

func (win *Window) createWindow() error {
	id, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = id

	mask := uint32(xproto.CwEventMask)
	values := []uint32{windowEventMask} // same order as the mask bits
	c := xproto.CreateWindowChecked(
		win.Conn, win.Screen.RootDepth, id, win.Screen.Root,
		0, 0, uint16(defaultSize.X), uint16(defaultSize.Y),
		0, // border
		xproto.WindowClassInputOutput, win.Screen.RootVisual,
		mask, values)
	if err := c.Check(); err != nil {
		return err
	}
	return xproto.MapWindowChecked(win.Conn, id).Check()
}

const windowEventMask = xproto.EventMaskStructureNotify |
	xproto.EventMaskExposure |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskKeyPress

func (win *Window) createGC() error {
	gc, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gc
	return xproto.CreateGCChecked(win.Conn, gc, xproto.Drawable(win.Window), 0, nil).Check()
}

func (win *Window) setupInput() error {
	xi, err := xinput.NewXInput(win.Conn)
	if err != nil {
		return err
	}
	cs, err := xcursors.NewCursors(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.XInput, win.Cursors = xi, cs
	return nil
}

func (win *Window) setupImage() error {
	img, err := wimage.NewWImage(&wimage.Options{
		Conn:       win.Conn,
		Window:     win.Window,
		ScreenInfo: win.Screen,
		GCtx:       win.GCtx,
	})
	if err != nil {
		return err
	}
	win.WImg = img
	return nil
}

func (win *Window) setupWMP() error {
	wmp, err := wmprotocols.NewWMP(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp
	return nil
}

func (win *Window) Close() error {
	var err error
	win.closeOnce.Do(func() {
		err = win.WImg.Close()
		win.Conn.Close()
	})
	return err
}

//----------

func (win *Window) NextEvent() interface{} {
	return <-win.events
}

// Ends with a WindowClose once the connection is gone.
func (win *Window) readEvents() {
	for {
		ev, xerr := win.Conn.WaitForEvent()
		if ev == nil && xerr == nil {
			win.events <- &event.WindowClose{}
			return
		}
		if xerr != nil {
			win.events <- errors.Wrap(xerr, "x event")
			continue
		}
		if out, ok := win.translate(ev); ok {
			win.events <- out
		}
	}
}

// Converts an x event into a driver event. Returns false for events that have no counterpart.
func (win *Window) translate(ev xgb.Event) (interface{}, bool) {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent:
		// the image is always at the origin
		return &event.WindowResize{Rect: sizeRect(t.Width, t.Height)}, true
	case xproto.ExposeEvent:
		return &event.WindowExpose{Rect: sizeRect(t.Width, t.Height)}, true
	case xproto.MappingNotifyEvent:
		if err := win.XInput.ReadMapTable(); err != nil {
			return errors.Wrap(err, "keyboard mapping"), true
		}
		return nil, false
	case xproto.KeyPressEvent:
		return win.XInput.KeyPress(&t), true
	case xproto.ButtonPressEvent:
		return win.XInput.ButtonPress(&t), true
	case xproto.ButtonReleaseEvent:
		return win.XInput.ButtonRelease(&t), true
	case xproto.MotionNotifyEvent:
		return win.XInput.MotionNotify(&t), true
	case xproto.LeaveNotifyEvent:
		return win.XInput.LeaveNotify(&t), true
	case xproto.ClientMessageEvent:
		if win.Wmp.IsDeleteWindow(&t) {
			return &event.WindowClose{}, true
		}
		return nil, false
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:
		return nil, false
	default:
		slog.Debug("unhandled x event", "ev", ev)
		return nil, false
	}
}

func sizeRect(w, h uint16) image.Rectangle {
	return image.Rect(0, 0, int(w), int(h))
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(win.Conn, xproto.PropModeReplace, win.Window,
		atoms.NetWMName, atoms.Utf8String, 8, uint32(len(b)), b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}

func (win *Window) PutImage(r image.Rectangle) error {
	return win.WImg.PutImage(r)
}

func (win *Window) ResizeImage(r image.Rectangle) error {
	if r == win.Image().Bounds() {
		return nil
	}
	return win.WImg.Resize(r)
}

func (win *Window) SetCursor(c event.Cursor) {
	if err := win.Cursors.SetEventCursor(c); err != nil {
		slog.Error("set cursor", "err", err)
	}
}

//----------

var atoms struct {
	NetWMName  xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String xproto.Atom `loadAtoms:"UTF8_STRING"`
}
