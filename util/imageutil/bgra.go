package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// Image with the memory layout expected by the x11 window (blue first). The color methods keep rgba semantics.
type BGRA struct {
	image.RGBA
}

func NewBGRA(r *image.Rectangle) *BGRA {
	u := image.NewRGBA(*r)
	return &BGRA{*u}
}

func (img *BGRA) ColorModel() color.Model {
	return color.RGBAModel
}

func (img *BGRA) Set(x, y int, c color.Color) {
	u := RgbaColor(c)
	img.SetRGBA(x, y, u)
}

// Allows fast lane if detected.
func (img *BGRA) SetRGBA(x, y int, c color.RGBA) {
	c.R, c.B = c.B, c.R // flip to keep Bgra
	img.RGBA.SetRGBA(x, y, c)
}
func (img *BGRA) At(x, y int) color.Color {
	c := img.RGBA.RGBAAt(x, y)
	c.R, c.B = c.B, c.R // flip to return Rgba
	return c
}

func (img *BGRA) SetRGBA64(x, y int, c color.RGBA64) {
	c.R, c.B = c.B, c.R
	img.RGBA.SetRGBA64(x, y, c)
}
func (img *BGRA) RGBA64At(x, y int) color.RGBA64 {
	c := img.RGBA.RGBA64At(x, y)
	c.R, c.B = c.B, c.R
	return c
}

func (img *BGRA) SubImage(r image.Rectangle) draw.Image {
	u := img.RGBA.SubImage(r).(*image.RGBA)
	return &BGRA{*u}
}

// Returns the underlying rgba image and the color corrected to be drawn directly on it.
func (img *BGRA) RGBAImageWithCorrectedColor(c color.Color) (draw.Image, color.Color) {
	return &img.RGBA, BgraColor(c)
}

//----------

func BgraColor(c color.Color) color.RGBA {
	c2 := RgbaColor(c)
	c2.R, c2.B = c2.B, c2.R // convert to BGR
	return c2
}
