package driver

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/jmigpin/scrollview/driver/tcelldriver"
	"github.com/jmigpin/scrollview/driver/xdriver"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type Window interface {
	NextEvent() interface{} // emits events from uiutil/event, or errors

	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error

	SetCursor(event.Cursor)
}

//----------

// Kind is "x11" or "tcell".
func NewWindow(kind string) (Window, error) {
	switch kind {
	case "", "x11":
		w, err := xdriver.NewWindow()
		if err != nil {
			return nil, err
		}
		return w, nil
	case "tcell":
		w, err := tcelldriver.NewWindow()
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown driver: %q", kind)
	}
}
