package app

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/scrollview/util/testutil"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

func testOptions() *Options {
	opt := DefaultOptions()
	opt.ContentSize = image.Point{500, 400}
	opt.ViewSize = image.Point{100, 100}
	return opt
}

func writePng(t *testing.T, filename string, img image.Image) {
	t.Helper()
	f, err := os.Create(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

//----------

func TestAppLayout(t *testing.T) {
	a, err := NewApp(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	if a.Viewport.ContentSize() != (image.Point{500, 400}) {
		t.Fatal(a.Viewport.ContentSize())
	}

	r := image.Rect(0, 0, 300, 200)
	a.Root.SetBounds(r)
	a.Layout(r)
	if a.Viewport.Bounds != image.Rect(10, 10, 279, 179) {
		t.Fatal(a.Viewport.Bounds)
	}
	if a.Viewport.VTrack.Bounds != image.Rect(279, 10, 290, 179) {
		t.Fatal(a.Viewport.VTrack.Bounds)
	}
	if a.Viewport.HTrack.Bounds != image.Rect(10, 179, 279, 190) {
		t.Fatal(a.Viewport.HTrack.Bounds)
	}

	// too small window
	a.Layout(image.Rect(0, 0, 5, 5))
	if a.Viewport.Bounds.Size() != (image.Point{1, 1}) {
		t.Fatal(a.Viewport.Bounds)
	}
}

func TestAppPaint(t *testing.T) {
	a, err := NewApp(testOptions())
	if err != nil {
		t.Fatal(err)
	}
	r := image.Rect(0, 0, 300, 200)
	a.Root.SetBounds(r)
	a.Layout(r)

	dst := image.NewRGBA(r)
	widget.PaintTree(a.Root, dst)
	vp := a.Viewport
	content := a.Content.Image()
	if err := testutil.CompareImgsAt(dst, vp.Bounds, content, vp.ViewRect().Min); err != nil {
		t.Fatal(err)
	}

	vp.SetViewRect(vp.ViewRect().Add(image.Point{120, 130}))
	if vp.ViewRect().Min != (image.Point{120, 130}) {
		t.Fatal(spew.Sdump(vp.ViewRect()))
	}
	widget.PaintMarked(a.Root, dst)
	if err := testutil.CompareImgsAt(dst, vp.Bounds, content, vp.ViewRect().Min); err != nil {
		t.Fatal(err)
	}
}

func TestAppReload(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "content.png")
	writePng(t, filename, testutil.GenerateImg(image.Rect(0, 0, 50, 40), 1))

	opt := testOptions()
	opt.ImageFilename = filename
	a, err := NewApp(opt)
	if err != nil {
		t.Fatal(err)
	}
	if a.Viewport.ContentSize() != (image.Point{50, 40}) {
		t.Fatal(a.Viewport.ContentSize())
	}

	img2 := testutil.GenerateImg(image.Rect(0, 0, 80, 60), 2)
	writePng(t, filename, img2)
	if err := a.Reload(); err != nil {
		t.Fatal(err)
	}
	if a.Viewport.ContentSize() != (image.Point{80, 60}) {
		t.Fatal(a.Viewport.ContentSize())
	}
	if err := testutil.CompareImgs(a.Content.Image(), img2); err != nil {
		t.Fatal(err)
	}

	// bad file keeps the content
	if err := os.WriteFile(filename, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := a.Reload(); err == nil {
		t.Fatal("expecting error")
	}
	if a.Viewport.ContentSize() != (image.Point{80, 60}) {
		t.Fatal(a.Viewport.ContentSize())
	}
}

func TestNewAppMissingImage(t *testing.T) {
	opt := testOptions()
	opt.ImageFilename = filepath.Join(t.TempDir(), "missing.png")
	if _, err := NewApp(opt); err == nil {
		t.Fatal("expecting error")
	}
}

func TestGenerateContent(t *testing.T) {
	img := GenerateContent(image.Point{250, 120}, nil, image.Black)
	if img.Bounds() != image.Rect(0, 0, 250, 120) {
		t.Fatal(img.Bounds())
	}
	// borders
	if c := img.RGBAAt(100, 50); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatal(c)
	}
	// different cells, different colors
	if img.RGBAAt(50, 50) == img.RGBAAt(150, 50) {
		t.Fatal("same color")
	}
	if img.RGBAAt(50, 50).A != 255 {
		t.Fatal(img.RGBAAt(50, 50))
	}
}
