package imageutil

import (
	"image"
	"image/color"
	"testing"
)

func TestRoundedRectangleMask1(t *testing.T) {
	mask := RoundedRectangleMask(image.Point{20, 10}, image.Point{10, 10})

	// center is fully covered
	if a := mask.AlphaAt(10, 5).A; a != 0xff {
		t.Fatal(a)
	}
	// corners are cut
	if a := mask.AlphaAt(0, 0).A; a == 0xff {
		t.Fatal(a)
	}
	if a := mask.AlphaAt(19, 9).A; a == 0xff {
		t.Fatal(a)
	}
}

func TestRoundedRectangleMask2(t *testing.T) {
	// no radius: plain rectangle
	mask := RoundedRectangleMask(image.Point{8, 8}, image.Point{})
	if a := mask.AlphaAt(0, 0).A; a != 0xff {
		t.Fatal(a)
	}
	if a := mask.AlphaAt(7, 7).A; a != 0xff {
		t.Fatal(a)
	}
}

func TestFillRoundedRectangle1(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	line := color.RGBA{255, 0, 0, 255}
	bg := color.RGBA{0, 0, 255, 255}
	pen := &Pen{Color: line, Width: 1}
	r := image.Rect(5, 5, 25, 25)
	FillRoundedRectangle(img, pen, bg, r, image.Point{4, 4})

	if c := img.RGBAAt(15, 5); c != line {
		t.Fatalf("border: %v", c)
	}
	if c := img.RGBAAt(15, 15); c != bg {
		t.Fatalf("inside: %v", c)
	}
	if c := img.RGBAAt(2, 2); c != (color.RGBA{}) {
		t.Fatalf("outside: %v", c)
	}
}

func TestFillRoundedRectangleBGRA(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	img := NewBGRA(&r)
	bg := color.RGBA{10, 20, 30, 255}
	FillRoundedRectangle(img, nil, bg, r, image.Point{})
	if c := img.At(5, 5); c != bg {
		t.Fatalf("%v", c)
	}
	// memory layout is blue first
	if b := img.Pix[img.PixOffset(5, 5)]; b != 30 {
		t.Fatal(b)
	}
}

func TestCropImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	c := color.RGBA{1, 2, 3, 255}
	src.SetRGBA(6, 7, c)
	img := CropImage(src, image.Rect(5, 5, 10, 10))
	if img.Bounds() != image.Rect(0, 0, 5, 5) {
		t.Fatal(img.Bounds())
	}
	if u := img.RGBAAt(1, 2); u != c {
		t.Fatal(u)
	}
}
