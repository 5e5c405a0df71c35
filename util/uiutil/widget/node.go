package widget

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"
	"sync/atomic"

	"github.com/jmigpin/scrollview/util/uiutil/event"
)

// A widget in the retained tree. Implementations embed ENode and override what they need.
type Node interface {
	fullNode() // only ENode implements it, EmbedNode alone is not a Node

	Embed() *EmbedNode

	InsertBefore(n Node, mark *EmbedNode)
	Append(n ...Node)
	Remove(child Node)

	Paint(dst draw.Image)
	OnFrame() (animating bool)

	OnChildMarked(child Node, newMarks Marks)
	OnInputEvent(ev interface{}, p image.Point) event.Handle
}

// Base for every widget.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

// Unique in the process. Zero is no node.
type NodeID uint64

var lastNodeID atomic.Uint64

func newNodeID() NodeID {
	return NodeID(lastNodeID.Add(1))
}

//----------

// Tree links, bounds and paint marks shared by all nodes.
type EmbedNode struct {
	Bounds  image.Rectangle
	Cursor  event.Cursor
	Wrapper Node // the full node embedding this one
	Parent  *EmbedNode

	id     NodeID
	marks  Marks
	childs []*EmbedNode // paint order, last on top
	theme  *Theme
}

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

// Childs get their wrapper when inserted. The root has no parent so it sets its own.
func (en *EmbedNode) SetWrapperForRoot(n Node) {
	en.Wrapper = n
}

// Allocated on first use.
func (en *EmbedNode) ID() NodeID {
	if en.id == 0 {
		en.id = newNodeID()
	}
	return en.id
}

//----------

// Goes through the wrapper so a node overriding InsertBefore sees the append.
func (en *EmbedNode) Append(nodes ...Node) {
	insert := en.InsertBefore
	if en.Wrapper != nil {
		insert = en.Wrapper.InsertBefore
	}
	for _, n := range nodes {
		insert(n, nil)
	}
}

// Inserts child before next, or at the end if next is nil.
func (en *EmbedNode) InsertBefore(child Node, next *EmbedNode) {
	ce := child.Embed()
	switch {
	case ce == en:
		panic("node inserted into itself")
	case ce.Parent != nil:
		panic("node already has a parent")
	}

	i := len(en.childs)
	if next != nil {
		i = en.childIndex(next)
		if i < 0 {
			panic("next is not a child of this node")
		}
	}
	en.childs = slices.Insert(en.childs, i, ce)
	ce.Parent = en
	ce.Wrapper = child
	en.MarkNeedsPaint()
}

func (en *EmbedNode) Remove(child Node) {
	ce := child.Embed()
	i := en.childIndex(ce)
	if i < 0 {
		panic("not a child of this node")
	}
	en.childs = slices.Delete(en.childs, i, i+1)
	ce.Parent = nil
	en.MarkNeedsPaint()
}

func (en *EmbedNode) childIndex(ce *EmbedNode) int {
	if ce.Parent != en {
		return -1
	}
	return slices.Index(en.childs, ce)
}

func (en *EmbedNode) ChildsLen() int {
	return len(en.childs)
}

//----------

// Paint order. Stops when f returns false.
func (en *EmbedNode) IterateWrappers(f func(Node) bool) {
	for _, c := range en.childs {
		if !f(c.Wrapper) {
			return
		}
	}
}

// Topmost first, the order for hit testing.
func (en *EmbedNode) IterateWrappersReverse(f func(Node) bool) {
	for i := len(en.childs) - 1; i >= 0; i-- {
		if !f(en.childs[i].Wrapper) {
			return
		}
	}
}

func (en *EmbedNode) IterateWrappers2(f func(Node)) {
	en.IterateWrappers(func(n Node) bool {
		f(n)
		return true
	})
}

//----------

func (en *EmbedNode) HasAnyMarks(m Marks) bool {
	return en.marks.HasAny(m)
}

func (en *EmbedNode) AddMarks(m Marks) {
	en.propagateMarks(m, nil, 0)
}

// Paint marks are only cleared by painting.
func (en *EmbedNode) RemoveMarks(m Marks) {
	if paint := MarkNeedsPaint | MarkChildNeedsPaint; m.HasAny(paint) {
		panic(fmt.Sprintf("paint marks are not removable: %v", m))
	}
	en.marks.Remove(m)
}

// Adds m and walks up while something changes. A parent learns about its marked child through OnChildMarked.
func (en *EmbedNode) propagateMarks(m Marks, child Node, childNew Marks) {
	old := en.marks
	en.marks.Add(m)
	added := en.marks &^ old

	if child != nil && childNew != 0 && en.Wrapper != nil {
		en.Wrapper.OnChildMarked(child, childNew)
	}
	if added == 0 || en.Parent == nil {
		return
	}
	up := Marks(0)
	if added.HasAny(MarkNeedsPaint | MarkChildNeedsPaint) {
		up = MarkChildNeedsPaint
	}
	en.Parent.propagateMarks(up, en.Wrapper, added)
}

func (en *EmbedNode) OnChildMarked(child Node, newMarks Marks) {}

func (en *EmbedNode) MarkNeedsPaint() {
	en.AddMarks(MarkNeedsPaint)
}

// True if this node or any descendant needs paint.
func (en *EmbedNode) TreeNeedsPaint() bool {
	return en.HasAnyMarks(MarkNeedsPaint | MarkChildNeedsPaint)
}

// Marks needs paint only on change.
func (en *EmbedNode) SetBounds(r image.Rectangle) {
	if en.Bounds == r {
		return
	}
	en.Bounds = r
	en.MarkNeedsPaint()
}

//----------

func (en *EmbedNode) Paint(dst draw.Image) {}

func (en *EmbedNode) OnFrame() bool { return false }

func (en *EmbedNode) OnInputEvent(ev interface{}, p image.Point) event.Handle {
	return event.NotHandled
}

//----------

// The palette applies to the whole subtree unless a descendant sets its own.
func (en *EmbedNode) SetTheme(t *Theme) {
	en.theme = t
	en.MarkNeedsPaint()
}

func (en *EmbedNode) Theme() *Theme {
	return en.theme
}

func (en *EmbedNode) TreeThemePaletteColor(name string) color.Color {
	return TreeThemePaletteColor(name, en)
}

//----------

type Marks uint16

const (
	MarkNeedsPaint Marks = 1 << iota
	MarkChildNeedsPaint
	MarkPointerInside // sent MouseEnter, owes a MouseLeave
)

func (m *Marks) Add(u Marks)        { *m |= u }
func (m *Marks) Remove(u Marks)     { *m &^= u }
func (m Marks) HasAny(u Marks) bool { return m&u != 0 }
