package xutil

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Tags can be used with: `loadAtoms:"atomname"`.
// "st" should be a pointer to a struct with xproto.Atom fields.
func LoadAtoms(conn *xgb.Conn, st any) error {
	val := reflect.Indirect(reflect.ValueOf(st))
	typ := val.Type()

	// request all first, then read the replies
	cookies := make([]xproto.InternAtomCookie, typ.NumField())
	for i := range cookies {
		sf := typ.Field(i)
		name := sf.Name
		if tag := sf.Tag.Get("loadAtoms"); tag != "" {
			name = tag
		}
		cookies[i] = xproto.InternAtom(conn, false, uint16(len(name)), name)
	}
	for i, c := range cookies {
		reply, err := c.Reply()
		if err != nil {
			return err
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}
