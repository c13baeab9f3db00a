/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package classify turns token set entries into typed tokens.
package classify

import (
	"fmt"

	"bennypowers.dev/composetokens/identifier"
	"bennypowers.dev/composetokens/normalize"
	"bennypowers.dev/composetokens/parser"
	"bennypowers.dev/composetokens/schema"
	"bennypowers.dev/composetokens/token"
)

// Kind is the outcome of classifying one entry.
type Kind int

const (
	// Classified means the entry produced a token.
	Classified Kind = iota

	// Metadata means the entry is not an object and was skipped silently.
	Metadata

	// Unrecognized means the entry was skipped with a warning.
	Unrecognized
)

// Outcome is the result of classifying one entry. Token is set for
// Classified, Warning for Unrecognized.
type Outcome struct {
	Kind    Kind
	Token   token.Token
	Warning token.Warning
}

// Options configures classification.
type Options struct {
	// CSSColorFallback accepts CSS color notations that are not 6 or 8 hex digits.
	CSSColorFallback bool
}

// Classifier classifies token set entries.
type Classifier struct {
	opts Options
}

// New creates a classifier.
func New(opts Options) *Classifier {
	return &Classifier{opts: opts}
}

// Classify inspects one entry. It never fails: problems are reported as an
// Unrecognized outcome so that the remaining entries are still processed.
func (c *Classifier) Classify(entry parser.Entry) Outcome {
	src := token.Source{Key: entry.Key, Line: entry.Line}

	rec, ok := entry.Record()
	if !ok {
		return Outcome{Kind: Metadata}
	}

	typeName, ok := rec.TypeName()
	if !ok {
		return unrecognized(src, schema.ErrMissingType)
	}
	if !rec.HasValue() {
		return unrecognized(src, schema.ErrMissingValue)
	}

	var (
		tok token.Token
		err error
	)
	switch typeName {
	case schema.TypeColor:
		tok, err = c.color(src, rec)
	case schema.TypeTypography:
		tok, err = typography(src, rec)
	case schema.TypeSpacing:
		tok, err = spacing(src, rec)
	default:
		err = fmt.Errorf("%w %q", schema.ErrUnsupportedType, typeName)
	}
	if err != nil {
		return unrecognized(src, err)
	}

	if _, err := identifier.Kotlin(tok.Name()); err != nil {
		return unrecognized(src, err)
	}
	return Outcome{Kind: Classified, Token: tok}
}

func unrecognized(src token.Source, err error) Outcome {
	return Outcome{
		Kind:    Unrecognized,
		Warning: token.Warning{Source: src, Err: err},
	}
}

func (c *Classifier) color(src token.Source, rec parser.Record) (token.Token, error) {
	raw, ok := parser.String(rec.Value)
	if !ok {
		return nil, fmt.Errorf("%w: color value must be a string", schema.ErrWrongValueShape)
	}

	normalizeColor := normalize.Color
	if c.opts.CSSColorFallback {
		normalizeColor = normalize.ColorWithCSSFallback
	}
	argb, err := normalizeColor(raw)
	if err != nil {
		return nil, err
	}

	return token.Color{
		Source:     src,
		Identifier: identifier.SingleWord(src.Key),
		ARGB:       argb,
	}, nil
}

func typography(src token.Source, rec parser.Record) (token.Token, error) {
	fields, ok := parser.Object(rec.Value)
	if !ok {
		return nil, fmt.Errorf("%w: typography value must be an object", schema.ErrWrongValueShape)
	}

	return token.Typography{
		Source:        src,
		Identifier:    identifier.MultiWord(src.Key),
		FontSize:      dimension(fields[schema.FieldFontSize], schema.DefaultFontSize),
		LineHeight:    dimension(fields[schema.FieldLineHeight], schema.DefaultLineHeight),
		LetterSpacing: signedDimension(fields[schema.FieldLetterSpacing], schema.DefaultLetterSpacing),
	}, nil
}

func spacing(src token.Source, rec parser.Record) (token.Token, error) {
	raw, ok := parser.Scalar(rec.Value)
	if !ok {
		return nil, fmt.Errorf("%w: spacing value must be a string", schema.ErrWrongValueShape)
	}

	return token.Spacing{
		Source:     src,
		Identifier: identifier.SingleWord(src.Key),
		Magnitude:  normalize.Magnitude(raw, schema.PixelSuffix, schema.DefaultSpacing),
	}, nil
}

// dimension reads an optional pixel field. Absent, non-scalar or negative
// fields use def.
func dimension(raw []byte, def float64) float64 {
	s, ok := parser.Scalar(raw)
	if !ok {
		return def
	}
	return normalize.Magnitude(s, schema.PixelSuffix, def)
}

// signedDimension is dimension for fields that may be negative.
func signedDimension(raw []byte, def float64) float64 {
	s, ok := parser.Scalar(raw)
	if !ok {
		return def
	}
	return normalize.SignedMagnitude(s, schema.PixelSuffix, def)
}
