/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package schema describes the token-sync document shape and its errors.
package schema

// DefaultTokenSet is the only token set consumed unless configured otherwise.
const DefaultTokenSet = "global"

// Field names, in lookup priority order.
var (
	TypeKeys  = []string{"$type", "type"}
	ValueKeys = []string{"$value", "value"}
)

// Token types.
const (
	TypeColor      = "color"
	TypeTypography = "typography"
	TypeSpacing    = "spacing"
)

// Typography value fields and their defaults, in pixels.
const (
	FieldFontSize      = "fontSize"
	FieldLineHeight    = "lineHeight"
	FieldLetterSpacing = "letterSpacing"

	DefaultFontSize      = 14.0
	DefaultLineHeight    = 20.0
	DefaultLetterSpacing = 0.0
	DefaultSpacing       = 0.0
)

// PixelSuffix is stripped from dimension values before parsing.
const PixelSuffix = "px"
