package widget

import (
	"image/draw"
	"time"

	"github.com/jmigpin/scrollview/util/uiutil/anim"
	"github.com/jmigpin/scrollview/util/uiutil/event"
)

type ImageContext interface {
	Image() draw.Image
}
type CursorContext interface {
	SetCursor(event.Cursor)
}

//----------

// Shared by all the controls of one tree. Passed at construction.
type Context struct {
	FocusLock FocusLock

	// Clock for the animations, nil uses time.Now.
	Now func() time.Time
}

func NewContext() *Context {
	return &Context{}
}

//----------

const (
	ColorAnimDuration = 100 * time.Millisecond
	GrowAnimDuration  = 100 * time.Millisecond
)

func (ctx *Context) newColorInterpolator() *anim.ColorInterpolator {
	ci := anim.NewColorInterpolator(ColorAnimDuration, anim.Accelerate)
	ci.Now = ctx.Now
	return ci
}

func (ctx *Context) newInterpolator(dur time.Duration) *anim.Interpolator {
	ip := anim.NewInterpolator(dur, anim.Accelerate)
	ip.Now = ctx.Now
	return ip
}
