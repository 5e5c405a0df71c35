package anim

import (
	"github.com/tanema/gween/ease"
)

// Easing curve. Maps the elapsed fraction t in [0,1] to a progress fraction in [0,1]. All curves are monotone with f(0)=0 and f(1)=1.
type Curve int

const (
	Linear               Curve = iota
	Accelerate                 // in quad
	Decelerate                 // out quad
	AccelerateDecelerate       // in-out sine
)

func (c Curve) TweenFunc() ease.TweenFunc {
	switch c {
	case Accelerate:
		return ease.InQuad
	case Decelerate:
		return ease.OutQuad
	case AccelerateDecelerate:
		return ease.InOutSine
	default:
		return ease.Linear
	}
}

func (c Curve) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	// begin 0, change 1, duration 1
	return float64(c.TweenFunc()(float32(t), 0, 1, 1))
}

func (c Curve) String() string {
	switch c {
	case Linear:
		return "linear"
	case Accelerate:
		return "accelerate"
	case Decelerate:
		return "decelerate"
	case AccelerateDecelerate:
		return "acceleratedecelerate"
	}
	return "unknown"
}
