package widget

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/uiutil/anim"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Which side of the bounds is the basis of the corner radius.
type RadiusMode int

const (
	HeightMode RadiusMode = iota
	WidthMode
)

type HandleState int

const (
	HandleIdle HandleState = iota
	HandleHovered
	HandleDragging
)

func (s HandleState) String() string {
	switch s {
	case HandleHovered:
		return "hovered"
	case HandleDragging:
		return "dragging"
	default:
		return "idle"
	}
}

//----------

// Draggable control. Used by ScrollTrack.
type DragHandle struct {
	ENode
	RadiusMode RadiusMode

	HoverEntered Signal
	HoverLeft    Signal
	DragStarted  Signal
	DragEnded    Signal
	Dragged      ValueSignal[image.Point]

	ctx      *Context
	theme    ScrollHandleTheme
	bg, line *anim.ColorInterpolator

	inDrag  bool
	inHover bool
	grab    image.Point // press point relative to the bounds min
}

// Appends the handle to parent. Panics if no scroll handle theme is found in the ancestors.
func NewDragHandle(ctx *Context, parent Node) *DragHandle {
	dh := &DragHandle{ctx: ctx}
	parent.Append(dh)

	th, ok := TreeScrollHandleTheme(dh.Embed())
	if !ok {
		panic("draghandle: no scroll handle theme found in the ancestors")
	}
	th.CurrentBackground = th.Background
	th.CurrentLine = th.Line
	dh.theme = th

	dh.bg = ctx.newColorInterpolator()
	dh.bg.Set(th.Background)
	dh.line = ctx.newColorInterpolator()
	dh.line.Set(th.Line)

	dh.Cursor = event.PointerCursor
	return dh
}

//----------

func (dh *DragHandle) State() HandleState {
	if dh.inDrag {
		return HandleDragging
	}
	if dh.inHover {
		return HandleHovered
	}
	return HandleIdle
}

func (dh *DragHandle) InDrag() bool {
	return dh.inDrag
}
func (dh *DragHandle) InHover() bool {
	return dh.inHover
}

// Press point relative to the handle origin, valid while dragging.
func (dh *DragHandle) GrabOffset() image.Point {
	return dh.grab
}

func (dh *DragHandle) HandleTheme() ScrollHandleTheme {
	return dh.theme
}

//----------

func (dh *DragHandle) Move(p image.Point) {
	dh.SetBounds(dh.Bounds.Add(p.Sub(dh.Bounds.Min)))
}

func (dh *DragHandle) Resize(size image.Point) {
	dh.SetBounds(image.Rectangle{dh.Bounds.Min, dh.Bounds.Min.Add(size)})
}

//----------

func (dh *DragHandle) pointerEntered() {
	dh.inHover = true
	if dh.inDrag {
		return
	}
	logger.Debug("draghandle: hover", "id", dh.ID())
	dh.startColors(dh.theme.HoverBackground, dh.theme.HoverLine)
	dh.HoverEntered.Emit()
}

func (dh *DragHandle) pointerLeft() {
	wasHover := dh.inHover
	dh.inHover = false
	if dh.inDrag || !wasHover {
		return
	}
	logger.Debug("draghandle: hover end", "id", dh.ID())
	dh.startColors(dh.theme.Background, dh.theme.Line)
	dh.HoverLeft.Emit()
}

func (dh *DragHandle) primaryDown(p image.Point) {
	if dh.inDrag {
		return
	}
	if !dh.ctx.FocusLock.LockCancel(dh.ID(), dh.CancelDrag) {
		holder, _ := dh.ctx.FocusLock.Holder()
		logger.Debug("draghandle: press ignored, lock held", "id", dh.ID(), "holder", holder)
		return
	}
	logger.Debug("draghandle: drag start", "id", dh.ID())
	dh.inDrag = true
	dh.grab = p.Sub(dh.Bounds.Min)
	dh.startColors(dh.theme.DragBackground, dh.theme.DragLine)
	dh.DragStarted.Emit()
}

func (dh *DragHandle) primaryUp() {
	if !dh.inDrag {
		return
	}
	if !dh.inHover {
		logger.Debug("draghandle: release without hover, recovering lost capture", "id", dh.ID())
	}
	dh.endDrag()
}

func (dh *DragHandle) endDrag() {
	logger.Debug("draghandle: drag end", "id", dh.ID())
	dh.inDrag = false
	dh.inHover = false
	dh.startColors(dh.theme.Background, dh.theme.Line)
	dh.DragEnded.Emit()
	dh.ctx.FocusLock.Unlock(dh.ID())
}

// Ends an ongoing drag, if any. Used when the handle is going away.
func (dh *DragHandle) CancelDrag() {
	if dh.inDrag {
		dh.endDrag()
	}
}

//----------

func (dh *DragHandle) startColors(bg, line color.Color) {
	dh.bg.Start(dh.theme.CurrentBackground, bg)
	dh.line.Start(dh.theme.CurrentLine, line)
}

func (dh *DragHandle) OnFrame() bool {
	if dh.bg.IsSettled() && dh.line.IsSettled() {
		return false
	}
	dh.theme.CurrentBackground = dh.bg.Advance()
	dh.theme.CurrentLine = dh.line.Advance()
	dh.MarkNeedsPaint()
	return !dh.bg.IsSettled() || !dh.line.IsSettled()
}

//----------

func (dh *DragHandle) Paint(dst draw.Image) {
	r := dh.Bounds
	radius := r.Dy()
	if dh.RadiusMode == WidthMode {
		radius = r.Dx()
	}
	pen := &imageutil.Pen{Color: dh.theme.CurrentLine, Width: dh.theme.PenWidth}
	imageutil.FillRoundedRectangle(dst, pen, dh.theme.CurrentBackground, r, image.Point{radius, radius})
}

//----------

func (dh *DragHandle) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	switch evt := ev.(type) {
	case *event.MouseEnter:
		dh.pointerEntered()
	case *event.MouseLeave:
		dh.pointerLeft()
	case *event.MouseDown:
		if evt.Button == event.ButtonLeft {
			dh.primaryDown(p)
			return event.Handled
		}
	case *event.MouseMove:
		if dh.inDrag {
			dh.Dragged.Emit(p)
			return event.Handled
		}
	case *event.MouseUp:
		if evt.Button == event.ButtonLeft {
			if dh.inDrag {
				dh.primaryUp()
				return event.Handled
			}
		}
	}
	return event.NotHandled
}
