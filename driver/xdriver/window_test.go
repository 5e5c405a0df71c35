package xdriver

import (
	"image"
	"runtime"
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

func TestTranslateGeometry(t *testing.T) {
	win := &Window{}

	ev, ok := win.translate(xproto.ConfigureNotifyEvent{X: 30, Y: 40, Width: 120, Height: 80})
	if !ok {
		t.Fatal("configure dropped")
	}
	rs, ok := ev.(*event.WindowResize)
	if !ok || rs.Rect != image.Rect(0, 0, 120, 80) {
		t.Fatalf("%#v", ev)
	}

	ev, ok = win.translate(xproto.ExposeEvent{Width: 10, Height: 20})
	ex, ok2 := ev.(*event.WindowExpose)
	if !ok || !ok2 || ex.Rect != image.Rect(0, 0, 10, 20) {
		t.Fatalf("%#v", ev)
	}

	for _, e := range []xgb.Event{xproto.MapNotifyEvent{}, xproto.ReparentNotifyEvent{}, xproto.FocusInEvent{}} {
		if ev, ok := win.translate(e); ok {
			t.Fatalf("%T: %#v", e, ev)
		}
	}
}

func TestDisplayName(t *testing.T) {
	t.Setenv("DISPLAY", ":3")
	if s := displayName(); s != ":3" {
		t.Fatal(s)
	}
	t.Setenv("DISPLAY", "")
	want := ""
	if runtime.GOOS == "windows" {
		want = "127.0.0.1:0.0"
	}
	if s := displayName(); s != want {
		t.Fatal(s)
	}
}
