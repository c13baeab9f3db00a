/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the classified design token types.
package token

import (
	"bennypowers.dev/composetokens/normalize"
)

// Category is the kind of generated declaration a token becomes.
type Category int

const (
	// CategoryColor tokens become androidx.compose.ui.graphics.Color values.
	CategoryColor Category = iota

	// CategoryTypography tokens become TextStyle values.
	CategoryTypography

	// CategorySpacing tokens become Dp values.
	CategorySpacing
)

// Categories lists every category in artifact order.
var Categories = []Category{CategoryColor, CategoryTypography, CategorySpacing}

// String returns the token type name for the category.
func (c Category) String() string {
	switch c {
	case CategoryColor:
		return "color"
	case CategoryTypography:
		return "typography"
	case CategorySpacing:
		return "spacing"
	default:
		return "unknown"
	}
}

// Source locates a token in the input document.
type Source struct {
	// Key is the token's key in its set, e.g. "body large".
	Key string `json:"key"`

	// Line is the 1-based line of the key, or 0 if unknown.
	Line int `json:"line,omitempty"`
}

// Token is a classified token. It is implemented only by Color, Typography
// and Spacing, so a type switch over those three is exhaustive.
type Token interface {
	// Category reports which artifact the token belongs to.
	Category() Category

	// Name returns the derived identifier.
	Name() string

	// Origin returns where the token was defined.
	Origin() Source

	isToken()
}

// Color is a color token.
type Color struct {
	Source
	Identifier string
	ARGB       normalize.ARGB
}

// Typography is a text style token. Sizes are in pixels, emitted as sp.
type Typography struct {
	Source
	Identifier    string
	FontSize      float64
	LineHeight    float64
	LetterSpacing float64
}

// Spacing is a spacing token. Magnitude is in pixels, emitted as dp.
type Spacing struct {
	Source
	Identifier string
	Magnitude  float64
}

func (Color) Category() Category      { return CategoryColor }
func (Typography) Category() Category { return CategoryTypography }
func (Spacing) Category() Category    { return CategorySpacing }

func (t Color) Name() string      { return t.Identifier }
func (t Typography) Name() string { return t.Identifier }
func (t Spacing) Name() string    { return t.Identifier }

func (t Color) Origin() Source      { return t.Source }
func (t Typography) Origin() Source { return t.Source }
func (t Spacing) Origin() Source    { return t.Source }

func (Color) isToken()      {}
func (Typography) isToken() {}
func (Spacing) isToken()    {}
