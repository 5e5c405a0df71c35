package imageutil

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

type Pen struct {
	Color color.Color
	Width int
}

// Fills the rectangle r with rounded corners: the pen color covers the whole shape and the brush color is filled inside, inset by the pen width. The radii are the corners ellipse diameters (like a rounded rect in gdi), they are limited to the rectangle size.
func FillRoundedRectangle(dst draw.Image, pen *Pen, brush color.Color, r image.Rectangle, radii image.Point) {
	if r.Empty() {
		return
	}
	if pen != nil && pen.Width > 0 {
		fillRoundedRectangle(dst, pen.Color, r, radii)
		w := pen.Width
		r = r.Inset(w)
		radii = radii.Sub(image.Point{2 * w, 2 * w})
		if r.Empty() {
			return
		}
	}
	fillRoundedRectangle(dst, brush, r, radii)
}

func fillRoundedRectangle(dst draw.Image, c color.Color, r image.Rectangle, radii image.Point) {
	if c == nil {
		return
	}
	mask := RoundedRectangleMask(r.Size(), radii)
	DrawUniformMask(dst, &r, c, mask, image.Point{}, draw.Over)
}

//----------

// Circle approximation constant for cubic bezier curves.
const kappa = 0.5522848

// Alpha mask of a rounded rectangle with the given size, origin at (0,0).
func RoundedRectangleMask(size image.Point, radii image.Point) *image.Alpha {
	mask := image.NewAlpha(image.Rectangle{Max: size})
	if size.X <= 0 || size.Y <= 0 {
		return mask
	}

	w, h := float32(size.X), float32(size.Y)
	rx, ry := cornerRadius(radii.X, size.X), cornerRadius(radii.Y, size.Y)
	kx, ky := rx*kappa, ry*kappa

	z := vector.NewRasterizer(size.X, size.Y)
	z.MoveTo(rx, 0)
	z.LineTo(w-rx, 0)
	z.CubeTo(w-rx+kx, 0, w, ry-ky, w, ry)
	z.LineTo(w, h-ry)
	z.CubeTo(w, h-ry+ky, w-rx+kx, h, w-rx, h)
	z.LineTo(rx, h)
	z.CubeTo(rx-kx, h, 0, h-ry+ky, 0, h-ry)
	z.LineTo(0, ry)
	z.CubeTo(0, ry-ky, rx-kx, 0, rx, 0)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func cornerRadius(diameter, side int) float32 {
	if diameter > side {
		diameter = side
	}
	if diameter < 0 {
		diameter = 0
	}
	return float32(diameter) / 2
}
