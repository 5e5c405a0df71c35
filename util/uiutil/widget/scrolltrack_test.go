package widget

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time {
	return c.t
}
func (c *testClock) add(d time.Duration) {
	c.t = c.t.Add(d)
}

//----------

type testTree struct {
	clock *testClock
	ctx   *Context
	root  *Rectangle
	ae    *ApplyEvent
}

func newTestTree() *testTree {
	tt := &testTree{}
	tt.clock = &testClock{t: time.Unix(1000, 0)}
	tt.ctx = NewContext()
	tt.ctx.Now = tt.clock.now
	tt.root = NewRectangle("bg")
	tt.root.Bounds = image.Rect(0, 0, 300, 300)
	tt.root.SetTheme(DefaultTheme())
	tt.ae = NewApplyEvent(tt.ctx, nil)
	return tt
}

// Vertical track at p, with length 100 and content 200.
func (tt *testTree) newTrack(p image.Point) *ScrollTrack {
	st := NewScrollTrack(tt.ctx, tt.root, Vertical)
	st.Move(p)
	st.Resize(image.Point{0, 100})
	st.SetExtents(50, 200)
	return st
}

func (tt *testTree) move(p image.Point) {
	tt.ae.Apply(tt.root, &event.MouseMove{Point: p}, p)
}
func (tt *testTree) down(p image.Point) {
	tt.ae.Apply(tt.root, &event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
}
func (tt *testTree) up(p image.Point) {
	tt.ae.Apply(tt.root, &event.MouseUp{Point: p, Button: event.ButtonLeft}, p)
}
func (tt *testTree) tick(d time.Duration) bool {
	tt.clock.add(d)
	return TickTree(tt.root)
}

//----------

func TestHandleLength1(t *testing.T) {
	type in struct{ track, content, want int }
	tests := []in{
		{100, 200, 50},
		{100, 100, 100},
		{100, 50, 100},
		{100, 0, 100},
		{100, -10, 100},
		{100, 100000, MinHandleLength},
		{3, 100000, 3},
		{0, 200, 0},
		{40, 160, 10},
	}
	for _, u := range tests {
		l := HandleLength(u.track, u.content)
		if l != u.want {
			t.Fatalf("%v: got %v", spew.Sdump(u), l)
		}
	}
}

func TestHandleLengthResizes(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	sizes := []int{100, 7, 250, 1, 0, 33, 180}
	contents := []int{200, 1, 90, 5000, 0, 33}
	for _, c := range contents {
		st.SetContentExtent(c)
		for _, s := range sizes {
			st.Resize(image.Point{0, s})
			want := HandleLength(s, c)
			if st.HandleLength() != want {
				t.Fatalf("track %v content %v: got %v, want %v", s, c, st.HandleLength(), want)
			}
			if st.HandleLength() > st.TrackLength() {
				t.Fatal("handle bigger than track")
			}
			if st.Bounds.Dx() != st.TrackTheme().Thickness {
				t.Fatalf("thickness not forced: %v", st.Bounds)
			}
		}
	}
}

//----------

func TestScrollTrackScenario(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	if st.HandleLength() != 50 {
		t.Fatalf("handle length: %v", st.HandleLength())
	}

	vp := NewViewport(tt.ctx, tt.root, image.Point{200, 200}, image.Point{50, 50})
	st.ScrollPercentChanged.Connect(func(p float64) {
		vp.scrollPercent(Vertical, p)
	})

	var got []float64
	st.ScrollPercentChanged.Connect(func(p float64) {
		got = append(got, p)
	})

	st.ScrollBy(25)
	if st.HandlePos() != 25 {
		t.Fatalf("handle pos: %v", st.HandlePos())
	}
	if st.Percent() != 0.5 {
		t.Fatalf("percent: %v", st.Percent())
	}
	if len(got) != 1 || got[0] != 0.5 {
		t.Fatalf("emitted: %v", got)
	}
	if vp.ViewRect().Min.Y != 75 {
		t.Fatalf("view rect: %v", vp.ViewRect())
	}
}

func TestScrollTrackDegenerate(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	st.SetContentExtent(100) // handle fills the track
	st.SetPercent(0.7)
	if st.HandleLength() != st.TrackLength() {
		t.Fatal(st.HandleLength())
	}
	if st.Percent() != 0 {
		t.Fatalf("percent: %v", st.Percent())
	}

	st.Resize(image.Point{0, 0})
	if st.Percent() != 0 || st.HandleLength() != 0 {
		t.Fatal(st.Percent(), st.HandleLength())
	}
}

func TestScrollTrackMove(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	st.ScrollBy(10)
	st.Move(image.Point{40, 30})
	if st.HandlePos() != 10 {
		t.Fatal(st.HandlePos())
	}
	if !st.Handle.Bounds.In(st.Bounds) {
		t.Fatal(st.Handle.Bounds, st.Bounds)
	}
}

//----------

func TestDragOutOfBounds(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})

	var percents []float64
	st.ScrollPercentChanged.Connect(func(p float64) {
		percents = append(percents, p)
	})

	hp := st.Handle.Bounds.Min.Add(image.Point{1, 10})
	tt.move(hp)
	if st.Handle.State() != HandleHovered {
		t.Fatal(st.Handle.State())
	}
	tt.down(hp)
	if st.Handle.State() != HandleDragging {
		t.Fatal(st.Handle.State())
	}

	points := []image.Point{
		{5, -500}, {5, 5000}, {-300, 40}, {1000, -1000}, {5, 30}, {5, 1 << 20},
	}
	for _, p := range points {
		tt.move(p)
		pc := st.Percent()
		if pc < 0 || pc > 1 {
			t.Fatalf("percent out of range: %v at %v", pc, p)
		}
	}
	if len(percents) != len(points) {
		t.Fatalf("dragged emits: %v", percents)
	}
	if percents[0] != 0 || percents[1] != 1 {
		t.Fatal(percents)
	}
	if percents[4] != 0.4 { // 30-10=20, 20/50
		t.Fatal(percents[4])
	}

	tt.up(image.Point{5, 1 << 20})
	if st.Handle.State() != HandleIdle {
		t.Fatal(st.Handle.State())
	}
	if _, ok := tt.ctx.FocusLock.Holder(); ok {
		t.Fatal("lock still held")
	}
}

func TestTrackBodyClick(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	p := image.Point{5, 80}
	tt.move(p)
	tt.down(p)
	if st.Percent() != 1 {
		t.Fatal(st.Percent())
	}
	if !st.pressed {
		t.Fatal("not pressed")
	}
	if st.Handle.InDrag() {
		t.Fatal("handle in drag")
	}
	tt.up(p)
	if st.pressed {
		t.Fatal("still pressed")
	}
}

func TestWheelOnTrack(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	p := image.Point{5, 80}
	tt.ae.Apply(tt.root, &event.MouseDown{Point: p, Button: event.ButtonWheelDown}, p)
	if st.HandlePos() != 50 {
		t.Fatal(st.HandlePos())
	}
	tt.ae.Apply(tt.root, &event.MouseDown{Point: p, Button: event.ButtonWheelUp}, p)
	if st.HandlePos() != 0 {
		t.Fatal(st.HandlePos())
	}
}

//----------

func TestLostCapture(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})

	ended := 0
	st.Handle.DragEnded.Connect(func() { ended++ })

	hp := st.Handle.Bounds.Min.Add(image.Point{1, 1})
	tt.move(hp)
	tt.down(hp)
	tt.move(image.Point{200, 200}) // leaves the handle
	if st.Handle.InHover() || !st.Handle.InDrag() {
		t.Fatal(st.Handle.State())
	}

	tt.up(image.Point{200, 200})
	if st.Handle.State() != HandleIdle {
		t.Fatal(st.Handle.State())
	}
	if _, ok := tt.ctx.FocusLock.Holder(); ok {
		t.Fatal("lock still held")
	}
	if ended != 1 {
		t.Fatal(ended)
	}
}

func TestSingleLockHolder(t *testing.T) {
	tt := newTestTree()
	st1 := tt.newTrack(image.Point{})
	st2 := tt.newTrack(image.Point{50, 0})

	p1 := st1.Handle.Bounds.Min.Add(image.Point{1, 1})
	p2 := st2.Handle.Bounds.Min.Add(image.Point{1, 1})
	tt.move(p1)
	tt.down(p1)
	tt.down(p2)
	if !st1.Handle.InDrag() || st2.Handle.InDrag() {
		t.Fatal(st1.Handle.State(), st2.Handle.State())
	}
	if !tt.ctx.FocusLock.IsHeldBy(st1.Handle.ID()) {
		t.Fatal("wrong holder")
	}

	tt.up(p2) // goes to the holder
	if st1.Handle.InDrag() {
		t.Fatal("still dragging")
	}

	tt.move(p2)
	tt.down(p2)
	if !st2.Handle.InDrag() || !tt.ctx.FocusLock.IsHeldBy(st2.Handle.ID()) {
		t.Fatal("second handle did not get the lock")
	}
}

func TestLockHolderRemovedWhileDragging(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	ended := 0
	st.Handle.DragEnded.Connect(func() { ended++ })

	hp := st.Handle.Bounds.Min.Add(image.Point{1, 1})
	tt.move(hp)
	tt.down(hp)
	if !st.Handle.InDrag() {
		t.Fatal("not dragging")
	}

	tt.root.Remove(st)
	tt.move(image.Point{5, 5})
	if _, ok := tt.ctx.FocusLock.Holder(); ok {
		t.Fatal("lock still held")
	}
	if st.Handle.InDrag() || st.Handle.State() != HandleIdle {
		t.Fatal(st.Handle.State())
	}
	if ended != 1 {
		t.Fatal(ended)
	}

	// lock is free for others
	st2 := tt.newTrack(image.Point{50, 0})
	p2 := st2.Handle.Bounds.Min.Add(image.Point{1, 1})
	tt.move(p2)
	tt.down(p2)
	if !tt.ctx.FocusLock.IsHeldBy(st2.Handle.ID()) {
		t.Fatal("second handle did not get the lock")
	}
}

//----------

func TestHandleColorAnimation(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	th := st.Handle.HandleTheme()

	tt.move(st.Handle.Bounds.Min)
	if !tt.tick(ColorAnimDuration / 2) {
		t.Fatal("not animating")
	}
	a := imageutil.RgbaColor(th.Background)
	b := imageutil.RgbaColor(th.HoverBackground)
	c := imageutil.RgbaColor(st.Handle.HandleTheme().CurrentBackground)
	between := func(x, lo, hi uint8) bool {
		if lo > hi {
			lo, hi = hi, lo
		}
		return x > lo && x < hi
	}
	if !between(c.R, a.R, b.R) || !between(c.G, a.G, b.G) || !between(c.B, a.B, b.B) {
		t.Fatalf("not between: %v %v %v", a, c, b)
	}

	if tt.tick(ColorAnimDuration) {
		t.Fatal("still animating")
	}
	c = imageutil.RgbaColor(st.Handle.HandleTheme().CurrentBackground)
	if c != b {
		t.Fatalf("not settled on target: %v %v", c, b)
	}

	// no more work once settled
	PaintTree(tt.root, image.NewRGBA(tt.root.Bounds))
	if tt.tick(time.Second) || tt.root.TreeNeedsPaint() {
		t.Fatal("settled tree requested work")
	}
}

func TestGrowShrink(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	th := st.TrackTheme()
	if st.Handle.Bounds.Dx() != th.IdleThickness {
		t.Fatal(st.Handle.Bounds)
	}

	tt.move(st.Handle.Bounds.Min.Add(image.Point{1, 1}))
	tt.tick(GrowAnimDuration)
	if st.Handle.Bounds.Dx() != th.Thickness || st.Handle.Bounds.Min.X != st.Bounds.Min.X {
		t.Fatalf("not grown: %v", st.Handle.Bounds)
	}
	pos := st.HandlePos()

	tt.move(image.Point{200, 200})
	tt.tick(GrowAnimDuration)
	if st.Handle.Bounds.Dx() != th.IdleThickness {
		t.Fatalf("not shrunk: %v", st.Handle.Bounds)
	}
	if st.HandlePos() != pos {
		t.Fatal("along axis position changed")
	}
}

func TestTrackColorsOnDrag(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	th := st.TrackTheme()

	hp := st.Handle.Bounds.Min.Add(image.Point{1, 1})
	tt.move(hp)
	tt.down(hp)
	tt.tick(ColorAnimDuration)
	if imageutil.NrgbaColor(st.TrackTheme().CurrentBackground) != imageutil.NrgbaColor(th.DragBackground) {
		t.Fatal(st.TrackTheme().CurrentBackground)
	}
	tt.up(hp)
	tt.tick(ColorAnimDuration)
	if imageutil.NrgbaColor(st.TrackTheme().CurrentBackground) != imageutil.NrgbaColor(th.Background) {
		t.Fatal(st.TrackTheme().CurrentBackground)
	}
}

//----------

func TestMissingThemePanics(t *testing.T) {
	type in struct {
		name  string
		theme *Theme
	}
	tests := []in{
		{"no theme", nil},
		{"no handle theme", &Theme{ScrollTrack: DefaultTheme().ScrollTrack}},
		{"no track theme", &Theme{ScrollHandle: DefaultTheme().ScrollHandle}},
	}
	for _, u := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%v: expecting panic", u.name)
				}
			}()
			root := NewRectangle("bg")
			if u.theme != nil {
				root.SetTheme(u.theme)
			}
			NewScrollTrack(NewContext(), root, Horizontal)
		}()
	}
}

func TestThemeCopy(t *testing.T) {
	tt := newTestTree()
	st := tt.newTrack(image.Point{})
	// changing the tree theme doesn't change the control copy
	tt.root.Theme().ScrollTrack.Thickness = 30
	tt.root.Theme().ScrollHandle.Background = color.RGBA{1, 2, 3, 255}
	if st.TrackTheme().Thickness != 11 {
		t.Fatal(st.TrackTheme().Thickness)
	}
	if imageutil.RgbaColor(st.Handle.HandleTheme().Background) == (color.RGBA{1, 2, 3, 255}) {
		t.Fatal("handle theme shared")
	}
}
