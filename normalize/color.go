/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package normalize turns raw token values into canonical Kotlin-ready values.
package normalize

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/composetokens/schema"
)

// ARGB is a 4-byte color, alpha first.
type ARGB [4]byte

// Alpha returns the alpha byte.
func (c ARGB) Alpha() byte { return c[0] }

// Hex returns the 8 uppercase hex digits, e.g. "FF3A693B".
func (c ARGB) Hex() string {
	return strings.ToUpper(hex.EncodeToString(c[:]))
}

// String returns the Kotlin literal form, e.g. "0xFF3A693B".
func (c ARGB) String() string {
	return "0x" + c.Hex()
}

// Colorful returns the color channels as a go-colorful color and the alpha in [0, 1].
func (c ARGB) Colorful() (colorful.Color, float64) {
	return colorful.Color{
		R: float64(c[1]) / 255,
		G: float64(c[2]) / 255,
		B: float64(c[3]) / 255,
	}, float64(c[0]) / 255
}

// Color parses a hex color. A leading "#" is optional. Six digits are
// treated as opaque RRGGBB; eight digits are taken as AARRGGBB.
func Color(raw string) (ARGB, error) {
	var c ARGB
	digits := strings.TrimPrefix(raw, "#")

	switch len(digits) {
	case 6:
		digits = "FF" + digits
	case 8:
	default:
		return c, fmt.Errorf("%w: %q must have 6 or 8 hex digits", schema.ErrInvalidColor, raw)
	}

	if _, err := hex.Decode(c[:], []byte(digits)); err != nil {
		return ARGB{}, fmt.Errorf("%w: %q: %v", schema.ErrInvalidColor, raw, err)
	}
	return c, nil
}

// ColorWithCSSFallback tries Color first, then any CSS color notation
// (rgb(), hsl(), named colors, short hex). CSS eight-digit hex is RRGGBBAA,
// but eight-digit input never reaches the fallback.
func ColorWithCSSFallback(raw string) (ARGB, error) {
	c, err := Color(raw)
	if err == nil {
		return c, nil
	}

	parsed, cssErr := csscolorparser.Parse(strings.TrimSpace(raw))
	if cssErr != nil {
		return ARGB{}, fmt.Errorf("%w: %q is neither hex nor a CSS color", schema.ErrInvalidColor, raw)
	}
	r, g, b, a := parsed.RGBA255()
	return ARGB{a, r, g, b}, nil
}
