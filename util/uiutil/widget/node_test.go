package widget

import (
	"image"
	"testing"
)

type testMarkedNode struct {
	ENode
	marked []Marks
}

func (n *testMarkedNode) OnChildMarked(child Node, newMarks Marks) {
	n.marked = append(n.marked, newMarks)
}

func childIDs(en *EmbedNode) []NodeID {
	var u []NodeID
	en.IterateWrappers2(func(c Node) {
		u = append(u, c.Embed().ID())
	})
	return u
}

func TestNodeInsertRemove(t *testing.T) {
	root := NewRectangle("bg")
	a, b, c := NewRectangle("a"), NewRectangle("b"), NewRectangle("c")
	root.Append(a, c)
	root.InsertBefore(b, &c.EmbedNode)

	got := childIDs(&root.EmbedNode)
	want := []NodeID{a.ID(), b.ID(), c.ID()}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatal(got, want)
	}

	var rev []NodeID
	root.IterateWrappersReverse(func(n Node) bool {
		rev = append(rev, n.Embed().ID())
		return len(rev) < 2
	})
	if len(rev) != 2 || rev[0] != c.ID() || rev[1] != b.ID() {
		t.Fatal(rev)
	}

	root.Remove(b)
	if root.ChildsLen() != 2 || b.Parent != nil {
		t.Fatal(root.ChildsLen(), b.Parent)
	}
	// can be inserted again
	root.Append(b)
	if got := childIDs(&root.EmbedNode); got[2] != b.ID() {
		t.Fatal(got)
	}
}

func TestNodeInsertPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%v: no panic", name)
			}
		}()
		fn()
	}
	root := NewRectangle("bg")
	a := NewRectangle("a")
	other := NewRectangle("o")
	root.Append(a)

	mustPanic("twice", func() { root.Append(a) })
	mustPanic("itself", func() { root.Append(root) })
	mustPanic("next", func() { root.InsertBefore(NewRectangle("x"), &other.EmbedNode) })
	mustPanic("remove", func() { root.Remove(other) })
	mustPanic("paint mark", func() { a.RemoveMarks(MarkNeedsPaint) })
}

func TestNodeMarksPropagate(t *testing.T) {
	root := NewRectangle("bg")
	mid := &testMarkedNode{}
	leaf := NewRectangle("leaf")
	root.Append(mid)
	mid.Append(leaf)

	// clear paint marks
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	PaintTree(root, dst)
	if root.TreeNeedsPaint() {
		t.Fatal("still marked")
	}
	mid.marked = nil

	leaf.MarkNeedsPaint()
	if !root.HasAnyMarks(MarkChildNeedsPaint) || root.HasAnyMarks(MarkNeedsPaint) {
		t.Fatal(root.marks)
	}
	if len(mid.marked) != 1 || mid.marked[0] != MarkNeedsPaint {
		t.Fatal(mid.marked)
	}

	// already marked, parents are not notified again
	leaf.MarkNeedsPaint()
	if len(mid.marked) != 1 {
		t.Fatal(mid.marked)
	}

	// non paint marks notify the parent without marking it
	leaf.AddMarks(MarkPointerInside)
	if len(mid.marked) != 2 || mid.marked[1] != MarkPointerInside {
		t.Fatal(mid.marked)
	}
	if mid.HasAnyMarks(MarkPointerInside) {
		t.Fatal("pointer mark went up")
	}
	leaf.RemoveMarks(MarkPointerInside)
	if leaf.HasAnyMarks(MarkPointerInside) {
		t.Fatal("not removed")
	}
}
