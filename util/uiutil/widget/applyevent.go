package widget

import (
	"image"

	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// Nodes whose childs live in another coordinate space (ex: viewport content).
type ChildPointMapper interface {
	ChildPoint(p image.Point) image.Point
}

//----------

type ApplyEvent struct {
	ctx  *Context
	cctx CursorContext
}

func NewApplyEvent(ctx *Context, cctx CursorContext) *ApplyEvent {
	ae := &ApplyEvent{ctx: ctx, cctx: cctx}
	return ae
}

//----------

func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) {
	switch ev.(type) {
	case nil, *event.MouseMove, *event.MouseDown, *event.MouseUp:
		// also while the focus lock is held: the holder needs to know about leaving to clear its hover state
		ae.mouseEnterLeave(node, p)
	}

	switch evt := ev.(type) {
	case nil: // allow running the rest of the function without an event
	case *event.MouseMove:
		ae.lockHolderOrDepthFirstEv(node, evt, p)
	case *event.MouseUp:
		ae.lockHolderOrDepthFirstEv(node, evt, p)
	case *event.MouseLeave:
		// pointer left the window
		ae.mouseLeaveAll(node)
	default:
		// ex: event.MouseDown, event.KeyDown
		ae.depthFirstEv(node, evt, p)
	}

	ae.setCursor(node, p)
}

//----------

// Move/up messages go to the focus lock holder regardless of hit testing.
func (ae *ApplyEvent) lockHolderOrDepthFirstEv(node Node, ev interface{}, p image.Point) {
	if id, ok := ae.ctx.FocusLock.Holder(); ok {
		if hn, hp, ok := findNode(node, id, p); ok {
			ae.runEv(hn, ev, hp)
			return
		}
		// holder is not in the tree anymore
		ae.ctx.FocusLock.Break()
	}
	ae.depthFirstEv(node, ev, p)
}

func findNode(node Node, id NodeID, p image.Point) (Node, image.Point, bool) {
	ne := node.Embed()
	if ne.ID() == id {
		return node, p, true
	}
	cp := childPoint(node, p)
	var rn Node
	var rp image.Point
	ne.IterateWrappers(func(c Node) bool {
		n, q, ok := findNode(c, id, cp)
		if ok {
			rn, rp = n, q
		}
		return !ok // continue while not found
	})
	return rn, rp, rn != nil
}

func childPoint(node Node, p image.Point) image.Point {
	if m, ok := node.(ChildPointMapper); ok {
		return m.ChildPoint(p)
	}
	return p
}

//----------

func (ae *ApplyEvent) setCursor(node Node, p image.Point) {
	if ae.cctx == nil {
		return
	}
	var c event.Cursor
	if id, ok := ae.ctx.FocusLock.Holder(); ok {
		if hn, _, ok := findNode(node, id, p); ok {
			c = hn.Embed().Cursor
		}
	}
	if c == event.NoneCursor {
		c = ae.treeCursor(node, p)
	}
	ae.cctx.SetCursor(c)
}

func (ae *ApplyEvent) treeCursor(node Node, p image.Point) event.Cursor {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return event.NoneCursor
	}
	cp := childPoint(node, p)
	var c event.Cursor
	ne.IterateWrappersReverse(func(child Node) bool {
		c = ae.treeCursor(child, cp)
		return c == event.NoneCursor // continue while no cursor was set
	})
	if c == event.NoneCursor {
		c = ne.Cursor
	}
	return c
}

//----------

func (ae *ApplyEvent) mouseEnterLeave(node Node, p image.Point) {
	ae.mouseLeave(node, p) // run leave first
	ae.mouseEnter(node, p)
}

//----------

func (ae *ApplyEvent) mouseEnter(node Node, p image.Point) event.Handle {
	ne := node.Embed()

	if !p.In(ne.Bounds) {
		return event.NotHandled
	}

	// execute on childs
	h := event.NotHandled
	cp := childPoint(node, p)
	// later childs are drawn over previous ones, run loop backwards
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseEnter(c, cp)
		return h == event.NotHandled // continue while not handled
	})

	// execute on node
	if !h {
		if !ne.HasAnyMarks(MarkPointerInside) {
			ne.AddMarks(MarkPointerInside)
			ev2 := &event.MouseEnter{}
			h = ae.runEv(node, ev2, p)
		}
	}

	return h
}

//----------

func (ae *ApplyEvent) mouseLeave(node Node, p image.Point) event.Handle {
	ne := node.Embed()

	// execute on childs
	h := event.NotHandled
	cp := childPoint(node, p)
	// later childs are drawn over previous ones, run loop backwards
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseLeave(c, cp)
		return h == event.NotHandled // continue while not handled
	})

	// execute on node
	if !h {
		if ne.HasAnyMarks(MarkPointerInside) && !p.In(ne.Bounds) {
			ne.RemoveMarks(MarkPointerInside)
			ev2 := &event.MouseLeave{}
			h = ae.runEv(node, ev2, p)
		}
	}

	return h
}

func (ae *ApplyEvent) mouseLeaveAll(node Node) {
	ne := node.Embed()
	ne.IterateWrappersReverse(func(c Node) bool {
		ae.mouseLeaveAll(c)
		return true
	})
	if ne.HasAnyMarks(MarkPointerInside) {
		ne.RemoveMarks(MarkPointerInside)
		ae.runEv(node, &event.MouseLeave{}, image.Point{})
	}
}

//----------

func (ae *ApplyEvent) depthFirstEv(node Node, ev interface{}, p image.Point) event.Handle {
	if !p.In(node.Embed().Bounds) {
		return event.NotHandled
	}

	// execute on childs
	h := event.NotHandled
	cp := childPoint(node, p)
	// later childs are drawn over previous ones, run loop backwards
	node.Embed().IterateWrappersReverse(func(c Node) bool {
		h = ae.depthFirstEv(c, ev, cp)
		return h == event.NotHandled // continue while not handled
	})

	// execute on node
	if !h {
		h = ae.runEv(node, ev, p)
	}

	return h
}

//----------

func (ae *ApplyEvent) runEv(node Node, ev interface{}, p image.Point) event.Handle {
	return node.OnInputEvent(ev, p)
}
