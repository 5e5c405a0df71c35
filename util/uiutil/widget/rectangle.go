package widget

import (
	"image"
	"image/draw"

	"github.com/jmigpin/scrollview/util/imageutil"
)

// Fills its bounds with a palette color.
type Rectangle struct {
	ENode
	ColorName string
}

func NewRectangle(colorName string) *Rectangle {
	r := &Rectangle{ColorName: colorName}
	r.SetWrapperForRoot(r)
	return r
}

func (r *Rectangle) Paint(dst draw.Image) {
	c := r.TreeThemePaletteColor(r.ColorName)
	imageutil.FillRectangle(dst, &r.Bounds, c)
}

//----------

// Draws an image at its bounds min. The bounds follow the image size.
type ImageBox struct {
	ENode
	img image.Image
}

func NewImageBox(img image.Image) *ImageBox {
	ib := &ImageBox{}
	ib.SetImage(img)
	return ib
}

func (ib *ImageBox) Image() image.Image {
	return ib.img
}

func (ib *ImageBox) SetImage(img image.Image) {
	ib.img = img
	size := img.Bounds().Size()
	ib.Bounds = image.Rectangle{ib.Bounds.Min, ib.Bounds.Min.Add(size)}
	ib.MarkNeedsPaint()
}

func (ib *ImageBox) Paint(dst draw.Image) {
	imageutil.DrawImage(dst, ib.Bounds, ib.img, ib.img.Bounds().Min)
}
