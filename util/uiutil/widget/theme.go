package widget

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/jmigpin/scrollview/util/fontutil"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
)

var (
	White color.Color = color.RGBA{255, 255, 255, 255}
	Black color.Color = color.RGBA{0, 0, 0, 255}

	// used if a color name is not found
	defaultThemeColor color.Color = color.RGBA{255, 255, 0, 255} // yellow
)

//----------

// nil is a valid receiver.
type Theme struct {
	Font         ThemeFont
	Palette      Palette // Note: EmbedNode.ThemePalette() checks if theme is nil
	ScrollHandle *ScrollHandleTheme
	ScrollTrack  *ScrollTrackTheme
}

func (t *Theme) Copy() *Theme {
	if t == nil {
		return &Theme{Palette: MakePalette()}
	}
	u := *t
	u.Palette = t.Palette.Copy()
	if t.ScrollHandle != nil {
		h := *t.ScrollHandle
		u.ScrollHandle = &h
	}
	if t.ScrollTrack != nil {
		tr := *t.ScrollTrack
		u.ScrollTrack = &tr
	}
	return &u
}

//----------

// nil is a valid receiver.
type Palette map[string]color.Color

func MakePalette() Palette {
	return make(Palette)
}

func (pal Palette) Empty() bool {
	return pal == nil || len(pal) == 0
}

func (pal Palette) Copy() Palette {
	pal2 := MakePalette()
	for k, v := range pal {
		pal2[k] = v
	}
	return pal2
}

//----------

var defaultPalette = Palette{
	"fg":             Black,
	"bg":             White,
	"viewport_bg":    colornames.Whitesmoke,
	"scrolltrack_bg": White,
}

//----------

// Colors of a drag handle per state. The Current* fields hold the animated values and are owned by the handle copy.
type ScrollHandleTheme struct {
	Background      color.Color
	Line            color.Color
	HoverBackground color.Color
	HoverLine       color.Color
	DragBackground  color.Color
	DragLine        color.Color

	CurrentBackground color.Color
	CurrentLine       color.Color

	PenWidth int
}

type ScrollTrackTheme struct {
	Background     color.Color
	Line           color.Color
	DragBackground color.Color
	DragLine       color.Color

	CurrentBackground color.Color
	CurrentLine       color.Color

	PenWidth      int
	Thickness     int // track cross axis size, also the hovered handle size
	IdleThickness int // handle cross axis size when not hovered
}

//----------

func DefaultTheme() *Theme {
	bg := color.RGBA{41, 42, 43, 255}
	t := &Theme{
		Palette: Palette{
			"fg":             color.RGBA{200, 200, 200, 255},
			"bg":             bg,
			"viewport_bg":    colornames.Whitesmoke,
			"scrolltrack_bg": bg,
		},
		ScrollHandle: &ScrollHandleTheme{
			Background:      color.RGBA{90, 90, 90, 255},
			Line:            color.RGBA{53, 53, 53, 255},
			HoverBackground: color.RGBA{126, 126, 126, 255},
			HoverLine:       color.RGBA{56, 56, 56, 255},
			DragBackground:  color.RGBA{98, 100, 167, 255},
			DragLine:        color.RGBA{98, 100, 167, 255},
			PenWidth:        1,
		},
		ScrollTrack: &ScrollTrackTheme{
			Background:     color.NRGBA{41, 42, 43, 0},
			Line:           color.NRGBA{53, 53, 53, 0},
			DragBackground: color.RGBA{56, 56, 56, 255},
			DragLine:       color.RGBA{53, 53, 53, 255},
			PenWidth:       1,
			Thickness:      11,
			IdleThickness:  4,
		},
	}
	return t
}

//----------

func TreeThemePaletteColor(name string, en *EmbedNode) color.Color {
	for n := en; n != nil; n = n.Parent {
		if n.theme != nil && n.theme.Palette != nil {
			if c, ok := n.theme.Palette[name]; ok {
				return c
			}
		}
	}
	if c, ok := defaultPalette[name]; ok {
		return c
	}
	return defaultThemeColor
}

func TreeThemeFont(en *EmbedNode) ThemeFont {
	for n := en; n != nil; n = n.Parent {
		if n.theme != nil && n.theme.Font != nil {
			return n.theme.Font
		}
	}
	return defaultThemeFont()
}

// Returns a copy of the first scroll handle theme found in the ancestors (node included).
func TreeScrollHandleTheme(en *EmbedNode) (ScrollHandleTheme, bool) {
	for n := en; n != nil; n = n.Parent {
		if n.theme != nil && n.theme.ScrollHandle != nil {
			return *n.theme.ScrollHandle, true
		}
	}
	return ScrollHandleTheme{}, false
}

// Returns a copy of the first scroll track theme found in the ancestors (node included).
func TreeScrollTrackTheme(en *EmbedNode) (ScrollTrackTheme, bool) {
	for n := en; n != nil; n = n.Parent {
		if n.theme != nil && n.theme.ScrollTrack != nil {
			return *n.theme.ScrollTrack, true
		}
	}
	return ScrollTrackTheme{}, false
}

//----------

type ThemeFont interface {
	Face() font.Face
}

//----------

// Truetype theme font.
type TTThemeFont struct {
	opt    *truetype.Options
	ttfont *truetype.Font
	face   font.Face
}

func NewTTThemeFont(ttf []byte, opt *truetype.Options) (*TTThemeFont, error) {
	ttfont, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	tf := &TTThemeFont{opt: opt, ttfont: ttfont}
	return tf, nil
}

func (tf *TTThemeFont) Face() font.Face {
	if tf.face == nil {
		tf.face = fontutil.NewFace(tf.ttfont, tf.opt)
	}
	return tf.face
}

//----------

var _dft ThemeFont

func defaultThemeFont() ThemeFont {
	if _dft == nil {
		_dft = &TTThemeFont{opt: &truetype.Options{}, ttfont: fontutil.DefaultFont()}
	}
	return _dft
}
