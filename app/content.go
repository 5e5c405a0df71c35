package app

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/jmigpin/scrollview/util/fontutil"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
)

const cellSize = 100

// Grid of colored cells, each labeled with its content coordinates.
func GenerateContent(size image.Point, face font.Face, fg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	cols := (size.X + cellSize - 1) / cellSize
	rows := (size.Y + cellSize - 1) / cellSize
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r := image.Rect(x*cellSize, y*cellSize, (x+1)*cellSize, (y+1)*cellSize)
			r = r.Intersect(img.Bounds())
			imageutil.FillRectangle(img, &r, cellColor(x, y, cols, rows))
			imageutil.BorderRectangle(img, &r, fg, 1)
			if face != nil {
				p := r.Min.Add(image.Point{4, 4})
				s := fmt.Sprintf("%d,%d", r.Min.X, r.Min.Y)
				fontutil.DrawString(img, face, p, s, fg)
			}
		}
	}
	return img
}

// Hue follows the column, lightness the row.
func cellColor(x, y, cols, rows int) color.Color {
	h := 360 * float64(x) / float64(cols)
	l := 0.25 + 0.5*float64(y)/float64(rows)
	return colorful.Hsl(h, 0.4, l).Clamped()
}

//----------

func LoadImage(filename string) (*image.RGBA, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %s: %w", filename, err)
	}
	// content at origin
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}
