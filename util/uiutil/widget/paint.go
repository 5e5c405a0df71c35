package widget

import (
	"image"
	"image/draw"

	"github.com/jmigpin/scrollview/util/imageutil"
)

// Nodes that paint themselves and their childs into their own canvas. The painter asks for the canvas, paints the subtree into it, and composites the edited result at the node bounds.
type CanvasEditor interface {
	Canvas() draw.Image
	EditCanvas(canvas draw.Image) image.Image
}

//----------

// Paints only the marked parts of the tree. Returns the union of the painted bounds.
func PaintMarked(node Node, dst draw.Image) image.Rectangle {
	en := node.Embed()
	_, isCE := node.(CanvasEditor)
	u := image.Rectangle{}
	if en.HasAnyMarks(MarkNeedsPaint) || (isCE && en.HasAnyMarks(MarkChildNeedsPaint)) {
		PaintTree(node, dst)
		u = u.Union(en.Bounds)
	} else if en.HasAnyMarks(MarkChildNeedsPaint) {
		en.marks.Remove(MarkChildNeedsPaint)
		en.IterateWrappers2(func(c Node) {
			r := PaintMarked(c, dst)
			u = u.Union(r)
		})
	}
	return u
}

func PaintTree(node Node, dst draw.Image) {
	en := node.Embed()
	en.marks.Remove(MarkNeedsPaint | MarkChildNeedsPaint)

	if ce, ok := node.(CanvasEditor); ok {
		canvas := ce.Canvas()
		paintNodeTree(node, canvas)
		img := ce.EditCanvas(canvas)
		imageutil.DrawImage(dst, en.Bounds, img, img.Bounds().Min)
		return
	}
	paintNodeTree(node, dst)
}

func paintNodeTree(node Node, dst draw.Image) {
	node.Paint(dst)
	node.Embed().IterateWrappers2(func(c Node) {
		PaintTree(c, dst)
	})
}

//----------

// Returns true if something was painted.
func PaintIfNeeded(node Node, dst draw.Image, painted func(image.Rectangle)) bool {
	if !node.Embed().TreeNeedsPaint() {
		return false
	}
	r := PaintMarked(node, dst)
	if !r.Empty() {
		painted(r)
	}
	return true
}

//----------

// Advances the animations of all nodes. Returns true if any node is still animating.
func TickTree(node Node) bool {
	animating := node.OnFrame()
	node.Embed().IterateWrappers2(func(c Node) {
		if TickTree(c) {
			animating = true
		}
	})
	return animating
}
