package widget

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/jmigpin/scrollview/util/uiutil/anim"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Minimum handle length, or the track length if smaller.
const MinHandleLength = 4

// Track with a draggable handle. Emits the normalized handle position.
type ScrollTrack struct {
	ENode
	Handle      *DragHandle
	Orientation Orientation

	ScrollPercentChanged ValueSignal[float64]

	ctx      *Context
	theme    ScrollTrackTheme
	bg, line *anim.ColorInterpolator

	thickness *anim.Interpolator // handle cross axis size
	offset    *anim.Interpolator // handle cross axis offset from the track

	viewExtent    int
	contentExtent int

	pressed bool // track body press, not on the handle
}

// Appends the track to parent. Panics if no scroll track theme is found in the ancestors.
func NewScrollTrack(ctx *Context, parent Node, o Orientation) *ScrollTrack {
	st := &ScrollTrack{ctx: ctx, Orientation: o}
	parent.Append(st)

	th, ok := TreeScrollTrackTheme(st.Embed())
	if !ok {
		panic("scrolltrack: no scroll track theme found in the ancestors")
	}
	th.CurrentBackground = th.Background
	th.CurrentLine = th.Line
	st.theme = th

	st.bg = ctx.newColorInterpolator()
	st.bg.Set(th.Background)
	st.line = ctx.newColorInterpolator()
	st.line.Set(th.Line)

	st.thickness = ctx.newInterpolator(GrowAnimDuration)
	st.thickness.Set(float64(th.IdleThickness))
	st.offset = ctx.newInterpolator(GrowAnimDuration)
	st.offset.Set(st.idleOffset())

	st.Handle = NewDragHandle(ctx, st)
	if o == Vertical {
		st.Handle.RadiusMode = WidthMode
	} else {
		st.Handle.RadiusMode = HeightMode
	}

	st.Handle.HoverEntered.Connect(st.grow)
	st.Handle.HoverLeft.Connect(st.shrink)
	st.Handle.DragStarted.Connect(st.onDragStarted)
	st.Handle.DragEnded.Connect(st.onDragEnded)
	st.Handle.Dragged.Connect(st.onDragged)

	st.layoutHandle(0)
	return st
}

//----------

func (st *ScrollTrack) TrackTheme() ScrollTrackTheme {
	return st.theme
}

func (st *ScrollTrack) TrackLength() int {
	return st.Orientation.Along(st.Bounds.Size())
}

func (st *ScrollTrack) HandleLength() int {
	return st.Orientation.Along(st.Handle.Bounds.Size())
}

// Handle start relative to the track origin.
func (st *ScrollTrack) HandlePos() int {
	return st.Orientation.Along(st.Handle.Bounds.Min.Sub(st.Bounds.Min))
}

func (st *ScrollTrack) ViewExtent() int {
	return st.viewExtent
}
func (st *ScrollTrack) ContentExtent() int {
	return st.contentExtent
}

//----------

// Handle length for a track over a content: trackLength²/contentLength, clamped.
func HandleLength(trackLength, contentLength int) int {
	if trackLength <= 0 {
		return 0
	}
	if contentLength <= 0 {
		return trackLength
	}
	l := int(float64(trackLength) * float64(trackLength) / float64(contentLength))
	min := mathutil.Smallest(MinHandleLength, trackLength)
	return mathutil.LimitInt(l, min, trackLength)
}

// Handle position as a value in [0,1]. Zero if the handle fills the track.
func (st *ScrollTrack) Percent() float64 {
	d := st.TrackLength() - st.HandleLength()
	if d <= 0 {
		return 0
	}
	return mathutil.LimitFloat64(float64(st.HandlePos())/float64(d), 0, 1)
}

//----------

// Only the length along the orientation is used, the cross axis size is the theme thickness. The handle goes back to the track origin.
func (st *ScrollTrack) Resize(size image.Point) {
	*st.Orientation.CrossPtr(&size) = st.theme.Thickness
	st.SetBounds(image.Rectangle{st.Bounds.Min, st.Bounds.Min.Add(size)})
	st.layoutHandle(0)
}

// Moves the track, keeping the handle relative position.
func (st *ScrollTrack) Move(p image.Point) {
	d := p.Sub(st.Bounds.Min)
	if d == (image.Point{}) {
		return
	}
	st.SetBounds(st.Bounds.Add(d))
	st.Handle.Move(st.Handle.Bounds.Min.Add(d))
}

func (st *ScrollTrack) SetViewExtent(v int) {
	st.viewExtent = v
	st.layoutHandle(st.HandlePos())
}

func (st *ScrollTrack) SetContentExtent(v int) {
	st.contentExtent = v
	st.layoutHandle(st.HandlePos())
}

func (st *ScrollTrack) SetExtents(view, content int) {
	st.viewExtent = view
	st.contentExtent = content
	st.layoutHandle(st.HandlePos())
}

//----------

// Relocates the handle and emits the percent.
func (st *ScrollTrack) SetPercent(p float64) {
	st.placePercent(p)
	st.emitPercent()
}

// Relocates the handle without emitting.
func (st *ScrollTrack) placePercent(p float64) {
	p = mathutil.LimitFloat64(p, 0, 1)
	d := st.TrackLength() - st.HandleLength()
	st.layoutHandle(int(math.Round(p * float64(d))))
}

// Moves the handle by delta pixels along the track and emits the percent.
func (st *ScrollTrack) ScrollBy(delta int) {
	st.layoutHandle(st.HandlePos() + delta)
	st.emitPercent()
}

func (st *ScrollTrack) scrollPage(up bool) {
	st.scrollAmount(st.HandleLength(), up)
}

func (st *ScrollTrack) scrollJump(up bool) {
	// deal with small spaces
	const j = 4
	v := mathutil.Biggest(st.HandleLength()/j, 1)
	st.scrollAmount(v, up)
}

func (st *ScrollTrack) scrollAmount(v int, up bool) {
	if up {
		v = -v
	}
	st.ScrollBy(v)
}

func (st *ScrollTrack) emitPercent() {
	st.ScrollPercentChanged.Emit(st.Percent())
}

//----------

// Sets the handle bounds: along axis from pos (clamped) and the law length, cross axis from the grow/shrink values.
func (st *ScrollTrack) layoutHandle(pos int) {
	o := st.Orientation
	tl := st.TrackLength()
	hl := HandleLength(tl, st.contentExtent)
	pos = mathutil.LimitInt(pos, 0, mathutil.Biggest(tl-hl, 0))

	min := st.Bounds.Min
	*o.AlongPtr(&min) += pos
	*o.CrossPtr(&min) += int(math.Round(st.offset.Value()))

	var size image.Point
	*o.AlongPtr(&size) = hl
	*o.CrossPtr(&size) = int(math.Round(st.thickness.Value()))

	st.Handle.SetBounds(image.Rectangle{min, min.Add(size)})
}

//----------

func (st *ScrollTrack) idleOffset() float64 {
	return float64(st.theme.Thickness-st.theme.IdleThickness) / 2
}

func (st *ScrollTrack) grow() {
	st.thickness.Start(st.thickness.Value(), float64(st.theme.Thickness))
	st.offset.Start(st.offset.Value(), 0)
}

func (st *ScrollTrack) shrink() {
	st.thickness.Start(st.thickness.Value(), float64(st.theme.IdleThickness))
	st.offset.Start(st.offset.Value(), st.idleOffset())
}

func (st *ScrollTrack) onDragStarted() {
	st.grow()
	st.startColors(st.theme.DragBackground, st.theme.DragLine)
}

func (st *ScrollTrack) onDragEnded() {
	st.shrink()
	st.startColors(st.theme.Background, st.theme.Line)
}

func (st *ScrollTrack) onDragged(p image.Point) {
	pos := st.Orientation.Along(p.Sub(st.Handle.GrabOffset()).Sub(st.Bounds.Min))
	st.layoutHandle(pos)
	st.emitPercent()
}

func (st *ScrollTrack) startColors(bg, line color.Color) {
	st.bg.Start(st.theme.CurrentBackground, bg)
	st.line.Start(st.theme.CurrentLine, line)
}

//----------

func (st *ScrollTrack) OnFrame() bool {
	animating := false
	if !st.bg.IsSettled() || !st.line.IsSettled() {
		st.theme.CurrentBackground = st.bg.Advance()
		st.theme.CurrentLine = st.line.Advance()
		st.MarkNeedsPaint()
		animating = !st.bg.IsSettled() || !st.line.IsSettled()
	}

	// grow/shrink run independently
	resized := false
	if !st.thickness.IsSettled() {
		st.thickness.Advance()
		resized = true
	}
	if !st.offset.IsSettled() {
		st.offset.Advance()
		resized = true
	}
	if resized {
		st.layoutHandle(st.HandlePos())
		if !st.thickness.IsSettled() || !st.offset.IsSettled() {
			animating = true
		}
	}
	return animating
}

//----------

func (st *ScrollTrack) OnChildMarked(child Node, newMarks Marks) {
	// paint the track background if the handle is getting painted
	if child == st.Handle {
		if newMarks.HasAny(MarkNeedsPaint) {
			st.MarkNeedsPaint()
		}
	}
}

func (st *ScrollTrack) Paint(dst draw.Image) {
	// clear what a thicker handle could have left
	imageutil.FillRectangle(dst, &st.Bounds, st.TreeThemePaletteColor("scrolltrack_bg"))

	radius := st.theme.Thickness
	pen := &imageutil.Pen{Color: st.theme.CurrentLine, Width: st.theme.PenWidth}
	imageutil.FillRoundedRectangle(dst, pen, st.theme.CurrentBackground, st.Bounds, image.Point{radius, radius})
}

//----------

func (st *ScrollTrack) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseDown:
		switch evt.Button {
		case event.ButtonLeft:
			st.pressed = true
			st.startColors(st.theme.DragBackground, st.theme.DragLine)
			st.layoutHandle(st.Orientation.Along(p.Sub(st.Bounds.Min)))
			st.emitPercent()
			return event.Handled
		case event.ButtonWheelUp, event.ButtonWheelLeft:
			st.scrollPage(true)
			return event.Handled
		case event.ButtonWheelDown, event.ButtonWheelRight:
			st.scrollPage(false)
			return event.Handled
		}
	case *event.MouseUp:
		if evt.Button == event.ButtonLeft && st.pressed {
			st.release()
			return event.Handled
		}
	case *event.MouseLeave:
		if st.pressed {
			st.release()
		}
	}
	return event.NotHandled
}

func (st *ScrollTrack) release() {
	st.pressed = false
	st.startColors(st.theme.Background, st.theme.Line)
}
