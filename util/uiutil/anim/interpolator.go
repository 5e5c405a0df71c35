package anim

import (
	"time"

	"github.com/jmigpin/scrollview/util/mathutil"
)

// Time based progress shared by all interpolators.
type progress struct {
	Duration time.Duration
	Curve    Curve
	Now      func() time.Time // nil uses time.Now

	start   time.Time
	settled bool
}

func (pr *progress) now() time.Time {
	if pr.Now != nil {
		return pr.Now()
	}
	return time.Now()
}

func (pr *progress) restart() {
	pr.start = pr.now()
	pr.settled = false
}

// Returns the eased fraction for the current elapsed time. Settles once the elapsed time reaches the duration.
func (pr *progress) advance() float64 {
	if pr.settled {
		return 1
	}
	elapsed := pr.now().Sub(pr.start)
	if elapsed >= pr.Duration {
		pr.settled = true
		return 1
	}
	t := float64(elapsed) / float64(pr.Duration)
	return pr.Curve.Ease(t)
}

//----------

// Float64 interpolator. Not started is settled, with zero value.
type Interpolator struct {
	progress
	from, to float64
	value    float64
}

func NewInterpolator(dur time.Duration, curve Curve) *Interpolator {
	ip := &Interpolator{}
	ip.Duration = dur
	ip.Curve = curve
	ip.settled = true
	return ip
}

func (ip *Interpolator) Start(from, to float64) {
	ip.from, ip.to = from, to
	ip.value = from
	ip.restart()
}

// Sets the value directly, settled.
func (ip *Interpolator) Set(v float64) {
	ip.from, ip.to, ip.value = v, v, v
	ip.settled = true
}

// Should be called once per frame.
func (ip *Interpolator) Advance() float64 {
	if ip.settled {
		return ip.value
	}
	f := ip.advance()
	if ip.settled {
		ip.value = ip.to
	} else {
		ip.value = mathutil.Lerp(ip.from, ip.to, f)
	}
	return ip.value
}

func (ip *Interpolator) IsSettled() bool {
	return ip.settled
}

func (ip *Interpolator) Value() float64 {
	return ip.value
}

func (ip *Interpolator) Target() float64 {
	return ip.to
}
