package event

import (
	"image"
)

//----------

type WindowClose struct{}
type WindowResize struct{ Rect image.Rectangle }
type WindowExpose struct{ Rect image.Rectangle }
type WindowInput struct {
	Point image.Point
	Event interface{}
}

//----------

type Handle bool

const (
	NotHandled Handle = false
	Handled    Handle = true
)

//----------

type MouseEnter struct{}
type MouseLeave struct{}

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

//----------

type KeyDown struct {
	Point  image.Point
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

//----------

type KeyModifiers uint32

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModLock               // caps
	ModCtrl
	Mod1 // ~ alt
	Mod2 // ~ num lock
	Mod3
	Mod4 // ~ windows key
	Mod5 // ~ alt gr
)

const (
	ModAlt   = Mod1
	ModNum   = Mod2
	ModAltGr = Mod5
)

//----------

type KeySym int

const (
	KSymNone KeySym = 0

	// let ascii codes keep their values
	KSym_dummy_ KeySym = 256 + iota

	KSymEscape
	KSymHome
	KSymEnd
	KSymUp
	KSymDown
	KSymLeft
	KSymRight
	KSymPageUp
	KSymPageDown
)

//----------

type Cursor int

const (
	NoneCursor Cursor = iota // none means not set
	DefaultCursor
	NSResizeCursor
	WEResizeCursor
	MoveCursor
	PointerCursor
	GrabCursor
)
