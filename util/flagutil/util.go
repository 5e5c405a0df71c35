package flagutil

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

type StringFuncFlag func(string) error

func (v StringFuncFlag) String() string     { return "" }
func (v StringFuncFlag) Set(s string) error { return v(s) }

//----------

type BoolFuncFlag func(string) error

func (v BoolFuncFlag) String() string     { return "" }
func (v BoolFuncFlag) Set(s string) error { return v(s) }
func (v BoolFuncFlag) IsBoolFlag() bool   { return true }

//----------

// Parses "WxH" (ex: "640x480"). Both values must be positive.
func ParseSize(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("size: missing 'x': %q", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return image.Point{}, fmt.Errorf("size: width: %w", err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return image.Point{}, fmt.Errorf("size: height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("size: not positive: %q", s)
	}
	return image.Point{w, h}, nil
}

// Flag that sets a size with ParseSize.
func SizeFlag(p *image.Point) StringFuncFlag {
	return func(s string) error {
		u, err := ParseSize(s)
		if err != nil {
			return err
		}
		*p = u
		return nil
	}
}
