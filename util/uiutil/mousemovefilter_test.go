package uiutil

import (
	"image"
	"testing"

	"github.com/jmigpin/scrollview/util/uiutil/event"
)

func moveEv(x int) *event.WindowInput {
	p := image.Point{x, 0}
	return &event.WindowInput{Point: p, Event: &event.MouseMove{Point: p}}
}

func TestMouseMoveFilter(t *testing.T) {
	in := make(chan interface{}, 8)
	out := make(chan interface{}, 8)
	fps := 1 // long frame, keeps the moves

	in <- moveEv(1) // sent right away
	in <- moveEv(2) // kept
	in <- moveEv(3) // replaces the kept one
	in <- &event.WindowExpose{}
	close(in)
	MouseMoveFilterLoop(in, out, &fps)
	close(out)

	var got []interface{}
	for ev := range out {
		got = append(got, ev)
	}
	if len(got) != 3 {
		t.Fatal(got)
	}
	if got[0].(*event.WindowInput).Point.X != 1 {
		t.Fatal(got[0])
	}
	if got[1].(*event.WindowInput).Point.X != 3 {
		t.Fatal(got[1])
	}
	if _, ok := got[2].(*event.WindowExpose); !ok {
		t.Fatal(got[2])
	}
}
