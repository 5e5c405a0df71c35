package xinput

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Constants from /usr/include/X11/keysymdef.h
func translateXKeysymToEventKeySym(xk xproto.Keysym) event.KeySym {
	switch xk {
	case 0xff1b:
		return event.KSymEscape
	case 0xff50, 0xff95: // home, keypad home
		return event.KSymHome
	case 0xff51, 0xff96:
		return event.KSymLeft
	case 0xff52, 0xff97:
		return event.KSymUp
	case 0xff53, 0xff98:
		return event.KSymRight
	case 0xff54, 0xff99:
		return event.KSymDown
	case 0xff55, 0xff9a:
		return event.KSymPageUp
	case 0xff56, 0xff9b:
		return event.KSymPageDown
	case 0xff57, 0xff9c:
		return event.KSymEnd
	}
	return event.KSymNone
}

// Latin-1 keysyms map directly to runes.
func keySymRune(xk xproto.Keysym) rune {
	if xk >= 0x20 && xk <= 0xff {
		return rune(xk)
	}
	return 0
}

//----------

func translateModifiersToEventKeyModifiers(v uint16) event.KeyModifiers {
	type pair struct {
		a uint16
		b event.KeyModifiers
	}
	pairs := []pair{
		{xproto.KeyButMaskShift, event.ModShift},
		{xproto.KeyButMaskControl, event.ModCtrl},
		{xproto.KeyButMaskLock, event.ModLock},
		{xproto.KeyButMaskMod1, event.Mod1},
		{xproto.KeyButMaskMod2, event.Mod2},
		{xproto.KeyButMaskMod3, event.Mod3},
		{xproto.KeyButMaskMod4, event.Mod4},
		{xproto.KeyButMaskMod5, event.Mod5},
	}
	var w event.KeyModifiers
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= p.b
		}
	}
	return w
}

func translateModifiersToEventMouseButtons(v uint16) event.MouseButtons {
	type pair struct {
		a uint16
		b event.MouseButton
	}
	pairs := []pair{
		{xproto.KeyButMaskButton1, event.ButtonLeft},
		{xproto.KeyButMaskButton2, event.ButtonMiddle},
		{xproto.KeyButMaskButton3, event.ButtonRight},
		{xproto.KeyButMaskButton4, event.ButtonWheelUp},
		{xproto.KeyButMaskButton5, event.ButtonWheelDown},
		{xproto.KeyButMaskButton5 << 1, event.ButtonWheelLeft},
		{xproto.KeyButMaskButton5 << 2, event.ButtonWheelRight},
		{xproto.KeyButMaskButton5 << 3, event.ButtonBackward},
	}
	var w event.MouseButtons
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= event.MouseButtons(p.b)
		}
	}
	return w
}

func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	var b event.MouseButton
	switch xb {
	case 1:
		b = event.ButtonLeft
	case 2:
		b = event.ButtonMiddle
	case 3:
		b = event.ButtonRight
	case 4:
		b = event.ButtonWheelUp
	case 5:
		b = event.ButtonWheelDown
	case 6:
		b = event.ButtonWheelLeft
	case 7:
		b = event.ButtonWheelRight
	case 8:
		b = event.ButtonBackward
	case 9:
		b = event.ButtonForward
	}
	return b
}
