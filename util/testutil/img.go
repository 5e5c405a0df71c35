package testutil

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/colornames"
)

func ClearImg(img draw.Image) {
	ClearImg2(img, colornames.Lightgray)
}
func ClearImg2(img draw.Image, c color.Color) {
	r := img.Bounds()
	src := image.NewUniform(c)
	draw.DrawMask(img, r, src, image.Point{}, nil, image.Point{}, draw.Src)
}

func GenerateImg(r image.Rectangle, seed int) *image.RGBA {
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := byte(255 - seed*x*y)
			c := color.RGBA{v, v, 0, 255}
			img.Set(x, y, c)
		}
	}
	return img
}

//----------

// Compares img1 at r with img2 starting at sp.
func CompareImgsAt(img1 image.Image, r image.Rectangle, img2 image.Image, sp image.Point) error {
	nFails := 0
	firstFail := image.Point{}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			x2, y2 := x-r.Min.X+sp.X, y-r.Min.Y+sp.Y
			c1 := color.RGBAModel.Convert(img1.At(x, y))
			c2 := color.RGBAModel.Convert(img2.At(x2, y2))
			if c1 != c2 {
				nFails++
				if nFails == 1 {
					firstFail = image.Point{x, y}
				}
			}
		}
	}
	if nFails > 0 {
		x, y := firstFail.X, firstFail.Y
		x2, y2 := x-r.Min.X+sp.X, y-r.Min.Y+sp.Y
		c1 := color.RGBAModel.Convert(img1.At(x, y))
		c2 := color.RGBAModel.Convert(img2.At(x2, y2))
		return fmt.Errorf("colors: xy=(%v,%v): %v %v (nfails: %v)", x, y, c1, c2, nFails)
	}
	return nil
}

func CompareImgs(img1, img2 image.Image) error {
	if img1.Bounds() != img2.Bounds() {
		return fmt.Errorf("bounds: %v %v", img1.Bounds(), img2.Bounds())
	}
	return CompareImgsAt(img1, img1.Bounds(), img2, img2.Bounds().Min)
}

//----------

func DrawPoint(img draw.Image, p image.Point, size int, c color.Color) {
	r := image.Rect(p.X, p.Y, p.X+size, p.Y+size)
	r2 := r.Intersect(img.Bounds())
	src := image.NewUniform(c)
	draw.Draw(img, r2, src, image.Point{}, draw.Src)
}
