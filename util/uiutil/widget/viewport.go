package widget

import (
	"image"
	"image/draw"
	"math"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Shows a window of a larger content. The childs are painted in content coordinates into a full size canvas that gets cropped to the window.
type Viewport struct {
	ENode
	VTrack *ScrollTrack
	HTrack *ScrollTrack

	ViewRectChanged ValueSignal[image.Rectangle]

	ctx     *Context
	parent  Node
	content image.Point     // content size
	window  image.Rectangle // visible rect in content coordinates
	canvas  *image.RGBA
	cropped *image.RGBA
}

// Appends the viewport and its two tracks to parent. The tracks are siblings of the viewport so they are not cropped.
func NewViewport(ctx *Context, parent Node, contentSize, viewSize image.Point) *Viewport {
	vp := &Viewport{ctx: ctx, parent: parent, content: contentSize}
	parent.Append(vp)

	vp.VTrack = NewScrollTrack(ctx, parent, Vertical)
	vp.HTrack = NewScrollTrack(ctx, parent, Horizontal)
	vp.VTrack.ScrollPercentChanged.Connect(func(p float64) {
		vp.scrollPercent(Vertical, p)
	})
	vp.HTrack.ScrollPercentChanged.Connect(func(p float64) {
		vp.scrollPercent(Horizontal, p)
	})

	vp.Resize(viewSize)
	return vp
}

//----------

func (vp *Viewport) ContentSize() image.Point {
	return vp.content
}

func (vp *Viewport) ViewRect() image.Rectangle {
	return vp.window
}

//----------

// Moves the viewport and lays the tracks along its right and bottom edges.
func (vp *Viewport) Move(p image.Point) {
	vp.SetBounds(vp.Bounds.Add(p.Sub(vp.Bounds.Min)))
	vp.layoutTracks()
}

func (vp *Viewport) Resize(viewSize image.Point) {
	vp.SetBounds(image.Rectangle{vp.Bounds.Min, vp.Bounds.Min.Add(viewSize)})
	vp.window = vp.clampWindow(image.Rectangle{vp.window.Min, vp.window.Min.Add(viewSize)})

	vp.VTrack.Resize(image.Point{0, viewSize.Y})
	vp.HTrack.Resize(image.Point{viewSize.X, 0})
	vp.VTrack.SetExtents(viewSize.Y, vp.content.Y)
	vp.HTrack.SetExtents(viewSize.X, vp.content.X)
	vp.layoutTracks()
	vp.syncTracks()
	vp.MarkNeedsPaint()
}

func (vp *Viewport) SetContentSize(size image.Point) {
	if size == vp.content {
		return
	}
	vp.content = size
	vp.canvas = nil
	vp.window = vp.windowAt(vp.window.Min)
	vp.VTrack.SetContentExtent(size.Y)
	vp.HTrack.SetContentExtent(size.X)
	vp.syncTracks()
	vp.MarkNeedsPaint()
	vp.ViewRectChanged.Emit(vp.window)
}

// Sets the visible window origin, clamped to the content. Only r.Min is used, the size is the viewport size. The tracks follow without emitting.
func (vp *Viewport) SetViewRect(r image.Rectangle) {
	r = vp.windowAt(r.Min)
	if r == vp.window {
		return
	}
	vp.window = r
	vp.syncTracks()
	vp.MarkNeedsPaint()
	vp.ViewRectChanged.Emit(vp.window)
}

//----------

func (vp *Viewport) layoutTracks() {
	b := vp.Bounds
	vp.VTrack.Move(image.Point{b.Max.X, b.Min.Y})
	vp.HTrack.Move(image.Point{b.Min.X, b.Max.Y})
}

// Places the handles at the percent of the current window.
func (vp *Viewport) syncTracks() {
	for _, o := range []Orientation{Vertical, Horizontal} {
		st := vp.track(o)
		d := o.Along(vp.content) - o.Along(vp.window.Size())
		p := 0.0
		if d > 0 {
			p = float64(o.Along(vp.window.Min)) / float64(d)
		}
		st.placePercent(p)
	}
}

func (vp *Viewport) track(o Orientation) *ScrollTrack {
	if o == Horizontal {
		return vp.HTrack
	}
	return vp.VTrack
}

// Viewport sized window at origin p, clamped to the content.
func (vp *Viewport) windowAt(p image.Point) image.Rectangle {
	return vp.clampWindow(image.Rectangle{p, p.Add(vp.Bounds.Size())})
}

// Translates the rectangle to be inside the content, shrinking only if bigger.
func (vp *Viewport) clampWindow(r image.Rectangle) image.Rectangle {
	size := imageutil.MinPoint(r.Size(), vp.content)
	size = imageutil.MaxPoint(size, image.Point{})
	min := r.Min
	min.X = mathutil.LimitInt(min.X, 0, vp.content.X-size.X)
	min.Y = mathutil.LimitInt(min.Y, 0, vp.content.Y-size.Y)
	return image.Rectangle{min, min.Add(size)}
}

//----------

// Window origin along the axis = (content - view) * percent.
func (vp *Viewport) scrollPercent(o Orientation, percent float64) {
	d := mathutil.Biggest(o.Along(vp.content)-o.Along(vp.window.Size()), 0)
	v := int(math.Round(float64(d) * percent))
	v = mathutil.LimitInt(v, 0, d)

	min := vp.window.Min
	*o.AlongPtr(&min) = v
	if min == vp.window.Min {
		return
	}
	vp.window = vp.window.Add(min.Sub(vp.window.Min))
	vp.MarkNeedsPaint()
	vp.ViewRectChanged.Emit(vp.window)
}

//----------

func (vp *Viewport) Canvas() draw.Image {
	r := image.Rectangle{Max: vp.content}
	if vp.canvas == nil || vp.canvas.Bounds() != r {
		vp.canvas = image.NewRGBA(r)
	}
	return vp.canvas
}

// Returns a viewport sized image with the visible part of the canvas. Content smaller than the viewport leaves the background around it. The canvas stays full size.
func (vp *Viewport) EditCanvas(canvas draw.Image) image.Image {
	r := image.Rectangle{Max: vp.Bounds.Size()}
	if vp.cropped == nil || vp.cropped.Bounds() != r {
		vp.cropped = image.NewRGBA(r)
	}
	imageutil.FillRectangle(vp.cropped, &r, vp.TreeThemePaletteColor("viewport_bg"))
	w := vp.window.Intersect(canvas.Bounds())
	imageutil.DrawImage(vp.cropped, image.Rectangle{Max: w.Size()}, canvas, w.Min)
	return vp.cropped
}

func (vp *Viewport) Paint(dst draw.Image) {
	b := dst.Bounds()
	imageutil.FillRectangle(dst, &b, vp.TreeThemePaletteColor("viewport_bg"))
}

//----------

// Maps a point inside the viewport to content coordinates.
func (vp *Viewport) ChildPoint(p image.Point) image.Point {
	return p.Sub(vp.Bounds.Min).Add(vp.window.Min)
}

//----------

func (vp *Viewport) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseDown:
		switch evt.Button {
		case event.ButtonWheelUp:
			vp.VTrack.scrollJump(true)
			return event.Handled
		case event.ButtonWheelDown:
			vp.VTrack.scrollJump(false)
			return event.Handled
		case event.ButtonWheelLeft:
			vp.HTrack.scrollJump(true)
			return event.Handled
		case event.ButtonWheelRight:
			vp.HTrack.scrollJump(false)
			return event.Handled
		}
	case *event.KeyDown:
		switch evt.KeySym {
		case event.KSymPageUp:
			vp.VTrack.scrollPage(true)
			return event.Handled
		case event.KSymPageDown:
			vp.VTrack.scrollPage(false)
			return event.Handled
		case event.KSymUp:
			vp.VTrack.scrollJump(true)
			return event.Handled
		case event.KSymDown:
			vp.VTrack.scrollJump(false)
			return event.Handled
		case event.KSymLeft:
			vp.HTrack.scrollJump(true)
			return event.Handled
		case event.KSymRight:
			vp.HTrack.scrollJump(false)
			return event.Handled
		case event.KSymHome:
			vp.VTrack.SetPercent(0)
			return event.Handled
		case event.KSymEnd:
			vp.VTrack.SetPercent(1)
			return event.Handled
		}
	}
	return event.NotHandled
}

//----------

// Removes the viewport and its tracks from the parent. Releases the focus lock if a track handle holds it.
func (vp *Viewport) Close() {
	if vp.Parent == nil {
		return // already closed
	}
	for _, st := range []*ScrollTrack{vp.VTrack, vp.HTrack} {
		st.Handle.CancelDrag()
		vp.ctx.FocusLock.Unlock(st.Handle.ID())
		vp.parent.Remove(st)
	}
	vp.parent.Remove(vp)
}
