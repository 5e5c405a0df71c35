package wimage

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/pkg/errors"
)

type Options struct {
	Conn       *xgb.Conn
	Window     xproto.Window
	ScreenInfo *xproto.ScreenInfo
	GCtx       xproto.Gcontext
}

//----------

// Window image backed by a server pixmap. Put image sends the rectangle to the pixmap and copies it to the window.
type WImage struct {
	opt        *Options
	pixId      xproto.Pixmap
	pixCreated bool
	img        *imageutil.BGRA
}

func NewWImage(opt *Options) (*WImage, error) {
	wi := &WImage{opt: opt}

	pixId, err := xproto.NewPixmapId(opt.Conn)
	if err != nil {
		return nil, errors.Wrap(err, "pixmap id")
	}
	wi.pixId = pixId

	// initial image
	r := image.Rect(0, 0, 1, 1)
	if err := wi.Resize(r); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *WImage) Close() error {
	wi.img = &imageutil.BGRA{}
	return wi.freePixmap()
}

func (wi *WImage) freePixmap() error {
	if !wi.pixCreated {
		return nil
	}
	wi.pixCreated = false
	err := xproto.FreePixmapChecked(wi.opt.Conn, wi.pixId).Check()
	return errors.Wrap(err, "free pixmap")
}

//----------

func (wi *WImage) Resize(r image.Rectangle) error {
	if err := wi.freePixmap(); err != nil {
		return err
	}
	err := xproto.CreatePixmapChecked(
		wi.opt.Conn,
		wi.opt.ScreenInfo.RootDepth,
		wi.pixId,
		xproto.Drawable(wi.opt.Window),
		uint16(r.Dx()),
		uint16(r.Dy())).Check()
	if err != nil {
		return errors.Wrap(err, "create pixmap")
	}
	wi.pixCreated = true
	wi.img = imageutil.NewBGRA(&r)
	return nil
}

//----------

func (wi *WImage) Image() draw.Image {
	return wi.img
}

func (wi *WImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}

	// X max data length = (2^16) * 4 = 262144, need to send it in chunks
	putImgReqSize := 28
	maxReqSize := (1 << 16) * 4
	maxSize := (maxReqSize - putImgReqSize) / 4
	if r.Dx() > maxSize {
		return fmt.Errorf("wimage: dx>max, %v>%v", r.Dx(), maxSize)
	}
	chunk := image.Point{r.Dx(), maxSize / r.Dx()}

	for minY := r.Min.Y; minY < r.Max.Y; minY += chunk.Y {
		h := chunk.Y
		if h2 := r.Max.Y - minY; h2 < h {
			h = h2
		}
		data := make([]uint8, chunk.X*h*4)
		for y := 0; y < h; y++ {
			i := y * chunk.X * 4
			j := wi.img.PixOffset(r.Min.X, minY+y)
			copy(data[i:i+chunk.X*4], wi.img.Pix[j:])
		}
		_ = xproto.PutImage( // unchecked, errors arrive in the event loop
			wi.opt.Conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(wi.pixId),
			wi.opt.GCtx,
			uint16(chunk.X), uint16(h), // width/height
			int16(r.Min.X), int16(minY), // dst X/Y
			0, // left pad, must be 0 for ZPixmap format
			wi.opt.ScreenInfo.RootDepth,
			data)
	}

	return wi.CopyToWindow(r)
}

// Copies the pixmap area to the window. Also used on expose.
func (wi *WImage) CopyToWindow(r image.Rectangle) error {
	err := xproto.CopyAreaChecked(
		wi.opt.Conn,
		xproto.Drawable(wi.pixId),
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		int16(r.Min.X), int16(r.Min.Y),
		int16(r.Min.X), int16(r.Min.Y),
		uint16(r.Dx()), uint16(r.Dy())).Check()
	return errors.Wrap(err, "copy area")
}
