package wmprotocols

import (
	"encoding/binary"
	"log"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/driver/xdriver/xutil"
)

// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1

// Window manager protocols: asks to be notified instead of killed when the window is closed.
type WMP struct {
	conn *xgb.Conn
	win  xproto.Window
}

func NewWMP(conn *xgb.Conn, win xproto.Window) (*WMP, error) {
	if err := xutil.LoadAtoms(conn, &atoms); err != nil {
		return nil, err
	}
	wmp := &WMP{conn: conn, win: win}
	if err := wmp.setupWindowProperty(); err != nil {
		return nil, err
	}
	return wmp, nil
}
func (wmp *WMP) setupWindowProperty() error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(atoms.WM_DELETE_WINDOW))
	cookie := xproto.ChangePropertyChecked(
		wmp.conn,
		xproto.PropModeAppend, // mode
		wmp.win,
		atoms.WM_PROTOCOLS, // property
		xproto.AtomAtom,    // type
		32,                 // format: xprop says that it should be 32 bit
		uint32(len(data))/4,
		data)
	return cookie.Check()
}

// Reports if the message is the window manager asking to close the window.
func (wmp *WMP) IsDeleteWindow(ev *xproto.ClientMessageEvent) bool {
	return isDeleteWindow(ev, atoms.WM_PROTOCOLS, atoms.WM_DELETE_WINDOW)
}

func isDeleteWindow(ev *xproto.ClientMessageEvent, protocols, deleteWin xproto.Atom) bool {
	if ev.Type != protocols {
		return false
	}
	if ev.Format != 32 {
		log.Printf("wm protocols: format not 32: %+v", ev)
		return false
	}
	for _, e := range ev.Data.Data32 {
		if xproto.Atom(e) == deleteWin {
			return true
		}
	}
	return false
}

var atoms struct {
	WM_PROTOCOLS     xproto.Atom
	WM_DELETE_WINDOW xproto.Atom
}
