package xinput

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/util/uiutil/event"
	"github.com/pkg/errors"
)

type XInput struct {
	conn *xgb.Conn
	kmap *keyMap
}

func NewXInput(conn *xgb.Conn) (*XInput, error) {
	xi := &XInput{conn: conn}
	if err := xi.ReadMapTable(); err != nil {
		return nil, err
	}
	return xi, nil
}

//----------

// Keyboard mapping table. Reread on mapping notify events.
type keyMap struct {
	min    xproto.Keycode
	perKey int
	syms   []xproto.Keysym
}

func (xi *XInput) ReadMapTable() error {
	si := xproto.Setup(xi.conn)
	count := byte(si.MaxKeycode - si.MinKeycode + 1)
	reply, err := xproto.GetKeyboardMapping(xi.conn, si.MinKeycode, count).Reply()
	if err != nil {
		return errors.Wrap(err, "keyboard mapping")
	}
	xi.kmap = &keyMap{
		min:    si.MinKeycode,
		perKey: int(reply.KeysymsPerKeycode),
		syms:   reply.Keysyms,
	}
	return nil
}

// Uses the first two columns of the table (unshifted and shifted).
func (km *keyMap) lookup(kc xproto.Keycode, state uint16) xproto.Keysym {
	i := (int(kc) - int(km.min)) * km.perKey
	if i < 0 || i >= len(km.syms) {
		return 0
	}
	ks := km.syms[i]
	if state&xproto.KeyButMaskShift != 0 && km.perKey > 1 {
		if ks2 := km.syms[i+1]; ks2 != 0 {
			ks = ks2
		}
	}
	return ks
}

//----------

func (xi *XInput) KeyPress(ev *xproto.KeyPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	xks := xi.kmap.lookup(ev.Detail, ev.State)
	ks := translateXKeysymToEventKeySym(xks)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.KeyDown{Point: p, KeySym: ks, Mods: m, Rune: keySymRune(xks)}
	return &event.WindowInput{Point: p, Event: ev2}
}

func (xi *XInput) ButtonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	return buttonPress(ev)
}
func (xi *XInput) ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	return buttonRelease(ev)
}
func (xi *XInput) MotionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	return motionNotify(ev)
}

// Pointer left the window.
func (xi *XInput) LeaveNotify(ev *xproto.LeaveNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	return &event.WindowInput{Point: p, Event: &event.MouseLeave{}}
}

//----------

func buttonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseDown{Point: p, Button: b, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}
func buttonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseUp{Point: p, Button: b, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}
func motionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseMove{Point: p, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}
