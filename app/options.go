package app

import (
	"image"
)

type Options struct {
	Driver        string      // "x11" or "tcell"
	ViewSize      image.Point // initial viewport size
	ContentSize   image.Point // generated content size, unused with an image
	ImageFilename string
	Watch         bool // reload the image on change
	WindowName    string
}

func DefaultOptions() *Options {
	return &Options{
		ViewSize:    image.Point{400, 300},
		ContentSize: image.Point{1200, 900},
		WindowName:  "scrollview",
	}
}

// Terminal cells are big pixels.
func (opt *Options) isTerminal() bool {
	return opt.Driver == "tcell"
}
