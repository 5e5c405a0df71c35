package anim

import (
	"image/color"
	"time"

	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/mathutil"
	"github.com/lucasb-eyer/go-colorful"
)

// Color interpolator. Blends the straight (non-premultiplied) rgb components and the alpha separately. Values are color.NRGBA.
type ColorInterpolator struct {
	progress
	from, to color.NRGBA
	value    color.NRGBA
}

func NewColorInterpolator(dur time.Duration, curve Curve) *ColorInterpolator {
	ci := &ColorInterpolator{}
	ci.Duration = dur
	ci.Curve = curve
	ci.settled = true
	return ci
}

func (ci *ColorInterpolator) Start(from, to color.Color) {
	ci.from = imageutil.NrgbaColor(from)
	ci.to = imageutil.NrgbaColor(to)
	ci.value = ci.from
	ci.restart()
}

// Sets the value directly, settled.
func (ci *ColorInterpolator) Set(c color.Color) {
	ci.value = imageutil.NrgbaColor(c)
	ci.from, ci.to = ci.value, ci.value
	ci.settled = true
}

// Should be called once per frame.
func (ci *ColorInterpolator) Advance() color.Color {
	if ci.settled {
		return ci.value
	}
	f := ci.advance()
	if ci.settled {
		ci.value = ci.to
	} else {
		ci.value = blend(ci.from, ci.to, f)
	}
	return ci.value
}

func (ci *ColorInterpolator) IsSettled() bool {
	return ci.settled
}

func (ci *ColorInterpolator) Value() color.Color {
	return ci.value
}

//----------

func blend(a, b color.NRGBA, t float64) color.NRGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	al := mathutil.Lerp(float64(a.A), float64(b.A), t)
	return color.NRGBA{r, g, bl, uint8(al + 0.5)}
}
