package imageutil

import (
	"fmt"
	"image/color"
)

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	} else {
		return convertToRgbaColor(c)
	}
}
func convertToRgbaColor(c color.Color) color.RGBA {
	// slow
	//return color.RGBAModel.Convert(c).(color.RGBA)

	r, g, b, a := c.RGBA()
	return color.RGBA{
		uint8(r >> 8),
		uint8(g >> 8),
		uint8(b >> 8),
		uint8(a >> 8),
	}
}

// Non-premultiplied color, used for blending.
func NrgbaColor(c color.Color) color.NRGBA {
	if u, ok := c.(color.NRGBA); ok {
		return u
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

//----------

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

//----------

// Ex. usage: x11 cursors colors.
func ColorUint16s(c color.Color) (uint16, uint16, uint16, uint16) {
	r, g, b, a := c.RGBA()
	return uint16(r << 8), uint16(g << 8), uint16(b << 8), uint16(a)
}

//----------

func SprintRgb(c color.Color) string {
	rgba := RgbaColor(c)
	return fmt.Sprintf("%x %x %x", rgba.R, rgba.G, rgba.B)
}

//----------

// Turn color lighter by v percent (0.0, 1.0). Alpha is kept.
func Tint(c color.Color, v float64) color.Color {
	c2 := NrgbaColor(c)
	if v < 0 || v > 1 {
		panic("!")
	}
	c2.R += uint8(v * float64((255 - c2.R)))
	c2.G += uint8(v * float64((255 - c2.G)))
	c2.B += uint8(v * float64((255 - c2.B)))
	return c2
}

// Turn color darker by v percent (0.0, 1.0). Alpha is kept.
func Shade(c color.Color, v float64) color.Color {
	c2 := NrgbaColor(c)
	if v < 0 || v > 1 {
		panic("!")
	}
	v = 1.0 - v
	c2.R = uint8(v * float64(c2.R))
	c2.G = uint8(v * float64(c2.G))
	c2.B = uint8(v * float64(c2.B))
	return c2
}
