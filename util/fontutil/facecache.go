package fontutil

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Caches the glyph masks and advances of a face.
type FaceCache struct {
	font.Face
	gc  map[rune]*glyphCache
	gac map[rune]*glyphAdvanceCache
}

func NewFaceCache(face font.Face) *FaceCache {
	fc := &FaceCache{Face: face}
	fc.gc = make(map[rune]*glyphCache)
	fc.gac = make(map[rune]*glyphAdvanceCache)
	return fc
}

func (fc *FaceCache) Glyph(dot fixed.Point26_6, ru rune) (
	dr image.Rectangle,
	mask image.Image,
	maskp image.Point,
	advance fixed.Int26_6,
	ok bool,
) {
	gc, ok := fc.gc[ru]
	if !ok {
		gc = newGlyphCache(fc.Face, ru)
		fc.gc[ru] = gc
	}
	p := image.Point{dot.X.Floor(), dot.Y.Floor()}
	dr2 := gc.dr.Add(p)
	return dr2, gc.mask, gc.maskp, gc.advance, gc.ok
}

func (fc *FaceCache) GlyphAdvance(ru rune) (advance fixed.Int26_6, ok bool) {
	gac, ok := fc.gac[ru]
	if !ok {
		adv, ok2 := fc.Face.GlyphAdvance(ru)
		gac = &glyphAdvanceCache{adv, ok2}
		fc.gac[ru] = gac
	}
	return gac.advance, gac.ok
}

//----------

type glyphCache struct {
	dr      image.Rectangle
	mask    image.Image
	maskp   image.Point
	advance fixed.Int26_6
	ok      bool
}

func newGlyphCache(face font.Face, ru rune) *glyphCache {
	var zeroDot fixed.Point26_6 // always use zero
	dr, mask, maskp, adv, ok := face.Glyph(zeroDot, ru)

	// the truetype face reuses its mask buffer
	if ok {
		mask = copyMask(mask)
	}

	return &glyphCache{dr, mask, maskp, adv, ok}
}

type glyphAdvanceCache struct {
	advance fixed.Int26_6
	ok      bool
}

//----------

func copyMask(mask image.Image) image.Image {
	alpha, ok := mask.(*image.Alpha)
	if !ok {
		return mask
	}
	u := *alpha // copy structure
	pix := make([]uint8, len(u.Pix))
	copy(pix, u.Pix)
	u.Pix = pix
	return &u
}
