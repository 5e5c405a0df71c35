package fontutil

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

var defaultFont struct {
	once sync.Once
	font *truetype.Font
}

// Go regular font, parsed once.
func DefaultFont() *truetype.Font {
	defaultFont.once.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultFont.font = f
	})
	return defaultFont.font
}

// Truetype face with a glyph cache. Not safe for concurrent use.
func NewFace(f *truetype.Font, opt *truetype.Options) font.Face {
	face := truetype.NewFace(f, opt)
	return NewFaceCache(face)
}

//----------

func LineHeight(face font.Face) int {
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Draws a single line of text with the top-left corner at p. Returns the advance in pixels.
func DrawString(dst draw.Image, face font.Face, p image.Point, s string, c color.Color) int {
	m := face.Metrics()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(p.X, p.Y+m.Ascent.Ceil()),
	}
	d.DrawString(s)
	return (d.Dot.X - fixed.I(p.X)).Ceil()
}
