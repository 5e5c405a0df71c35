package widget

import "image"

// Allows calculations to be done along an axis, and have them translated to the X or Y coordinate.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Coordinate along the orientation.
func (o Orientation) Along(p image.Point) int {
	return *o.AlongPtr(&p)
}
func (o Orientation) AlongPtr(p *image.Point) *int {
	if o == Horizontal {
		return &p.X
	}
	return &p.Y
}

// Coordinate across the orientation.
func (o Orientation) Cross(p image.Point) int {
	return *o.CrossPtr(&p)
}
func (o Orientation) CrossPtr(p *image.Point) *int {
	if o == Horizontal {
		return &p.Y
	}
	return &p.X
}
