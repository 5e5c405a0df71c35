package tcelldriver

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/pkg/errors"
)

// Terminal window. Each cell shows two vertical pixels with the upper half block rune (fg is the top pixel, bg the bottom one).
type Window struct {
	screen tcell.Screen
	img    *image.RGBA

	buttons   tcell.ButtonMask // non-wheel buttons currently down
	closeOnce sync.Once
	events    chan interface{}
}

func NewWindow() (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "tcell screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "tcell init")
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	win := &Window{
		screen: screen,
		events: make(chan interface{}, 8),
	}
	cols, rows := screen.Size()
	win.img = image.NewRGBA(imageRect(cols, rows))

	go win.eventLoop()

	return win, nil
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		win.screen.Fini()
	})
	return nil
}

//----------

func (win *Window) NextEvent() interface{} {
	return <-win.events
}

func (win *Window) eventLoop() {
	for {
		ev := win.screen.PollEvent()
		if ev == nil { // screen finalized
			win.events <- &event.WindowClose{}
			return
		}
		win.handleEvent(ev)
	}
}

func (win *Window) handleEvent(ev tcell.Event) {
	switch t := ev.(type) {
	case *tcell.EventResize:
		cols, rows := t.Size()
		r := imageRect(cols, rows)
		win.events <- &event.WindowResize{Rect: r}
		win.events <- &event.WindowExpose{Rect: r}
	case *tcell.EventMouse:
		x, y := t.Position()
		var evs []*event.WindowInput
		win.buttons, evs = mouseEvents(win.buttons, t.Buttons(), pixelPoint(x, y), translateModifiers(t.Modifiers()))
		for _, e := range evs {
			win.events <- e
		}
	case *tcell.EventKey:
		if t.Key() == tcell.KeyCtrlC {
			win.events <- &event.WindowClose{}
			return
		}
		kd := &event.KeyDown{
			KeySym: translateKey(t.Key()),
			Mods:   translateModifiers(t.Modifiers()),
		}
		if t.Key() == tcell.KeyRune {
			kd.Rune = t.Rune()
		}
		win.events <- &event.WindowInput{Event: kd}
	case *tcell.EventError:
		win.events <- errors.Wrap(t, "tcell event")
	}
}

//----------

// Window title is the terminal title.
func (win *Window) SetWindowName(str string) {
	win.screen.SetTitle(str)
}

func (win *Window) Image() draw.Image {
	return win.img
}

func (win *Window) PutImage(r image.Rectangle) error {
	r = cellRect(r.Intersect(win.img.Bounds()))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			top, bottom := cellColors(win.img, x, y)
			win.screen.SetContent(x, y, '▀', nil, cellStyle(top, bottom))
		}
	}
	win.screen.Show()
	return nil
}

func (win *Window) ResizeImage(r image.Rectangle) error {
	if r != win.img.Bounds() {
		win.img = image.NewRGBA(r)
	}
	return nil
}

// Terminals keep their own pointer.
func (win *Window) SetCursor(c event.Cursor) {}

//----------

func imageRect(cols, rows int) image.Rectangle {
	return image.Rect(0, 0, cols, rows*2)
}

func pixelPoint(col, row int) image.Point {
	return image.Point{col, row * 2}
}

// Cells covering the pixel rectangle.
func cellRect(r image.Rectangle) image.Rectangle {
	r.Min.Y = r.Min.Y / 2
	r.Max.Y = (r.Max.Y + 1) / 2
	return r
}

func cellColors(img *image.RGBA, col, row int) (color.RGBA, color.RGBA) {
	return img.RGBAAt(col, row*2), img.RGBAAt(col, row*2+1)
}

func cellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(top)).
		Background(tcellColor(bottom))
}

func tcellColor(c color.Color) tcell.Color {
	u := imageutil.RgbaColor(c)
	return tcell.NewRGBColor(int32(u.R), int32(u.G), int32(u.B))
}

//----------

var buttonPairs = []struct {
	a tcell.ButtonMask
	b event.MouseButton
}{
	{tcell.Button1, event.ButtonLeft},
	{tcell.Button2, event.ButtonRight},
	{tcell.Button3, event.ButtonMiddle},
}

var wheelPairs = []struct {
	a tcell.ButtonMask
	b event.MouseButton
}{
	{tcell.WheelUp, event.ButtonWheelUp},
	{tcell.WheelDown, event.ButtonWheelDown},
	{tcell.WheelLeft, event.ButtonWheelLeft},
	{tcell.WheelRight, event.ButtonWheelRight},
}

// Terminals report the current button state only. Downs and ups come from diffing with the previous state. Wheel bits produce a single down each.
func mouseEvents(prev, cur tcell.ButtonMask, p image.Point, mods event.KeyModifiers) (tcell.ButtonMask, []*event.WindowInput) {
	var evs []*event.WindowInput
	add := func(ev interface{}) {
		evs = append(evs, &event.WindowInput{Point: p, Event: ev})
	}

	next := tcell.ButtonMask(0)
	bs := event.MouseButtons(0)
	for _, u := range buttonPairs {
		if cur&u.a != 0 {
			next |= u.a
			bs |= event.MouseButtons(u.b)
		}
	}

	if prev == next {
		add(&event.MouseMove{Point: p, Buttons: bs, Mods: mods})
	}
	for _, u := range buttonPairs {
		was, is := prev&u.a != 0, next&u.a != 0
		switch {
		case !was && is:
			add(&event.MouseDown{Point: p, Button: u.b, Buttons: bs, Mods: mods})
		case was && !is:
			add(&event.MouseUp{Point: p, Button: u.b, Buttons: bs, Mods: mods})
		}
	}
	for _, u := range wheelPairs {
		if cur&u.a != 0 {
			add(&event.MouseDown{Point: p, Button: u.b, Buttons: bs, Mods: mods})
		}
	}
	return next, evs
}

func translateKey(k tcell.Key) event.KeySym {
	switch k {
	case tcell.KeyEscape:
		return event.KSymEscape
	case tcell.KeyHome:
		return event.KSymHome
	case tcell.KeyEnd:
		return event.KSymEnd
	case tcell.KeyUp:
		return event.KSymUp
	case tcell.KeyDown:
		return event.KSymDown
	case tcell.KeyLeft:
		return event.KSymLeft
	case tcell.KeyRight:
		return event.KSymRight
	case tcell.KeyPgUp:
		return event.KSymPageUp
	case tcell.KeyPgDn:
		return event.KSymPageDown
	}
	return event.KSymNone
}

func translateModifiers(m tcell.ModMask) event.KeyModifiers {
	var w event.KeyModifiers
	if m&tcell.ModShift != 0 {
		w |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		w |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		w |= event.ModAlt
	}
	return w
}
