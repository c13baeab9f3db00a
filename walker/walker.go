/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package walker visits a token set and sorts its tokens into categories.
package walker

import (
	"fmt"

	"bennypowers.dev/composetokens/classify"
	"bennypowers.dev/composetokens/parser"
	"bennypowers.dev/composetokens/schema"
	"bennypowers.dev/composetokens/token"
)

// Options configures a walk.
type Options struct {
	// TokenSet is the set to consume. Defaults to schema.DefaultTokenSet.
	TokenSet string

	// Classify configures token classification.
	Classify classify.Options
}

// Result holds the tokens of each category in visitation order, plus the
// warnings recorded along the way.
type Result struct {
	Colors     []token.Color
	Typography []token.Typography
	Spacing    []token.Spacing
	Warnings   []token.Warning
}

// Counts returns the number of tokens per category.
func (r *Result) Counts() map[token.Category]int {
	return map[token.Category]int{
		token.CategoryColor:      len(r.Colors),
		token.CategoryTypography: len(r.Typography),
		token.CategorySpacing:    len(r.Spacing),
	}
}

// Total returns the number of tokens across all categories.
func (r *Result) Total() int {
	return len(r.Colors) + len(r.Typography) + len(r.Spacing)
}

// Summary renders the counts, e.g. "6 colors, 3 typography, 3 spacing".
func (r *Result) Summary() string {
	return fmt.Sprintf("%d colors, %d typography, %d spacing", len(r.Colors), len(r.Typography), len(r.Spacing))
}

// Tokens returns every token, colors first, then typography, then spacing.
func (r *Result) Tokens() []token.Token {
	tokens := make([]token.Token, 0, r.Total())
	for _, t := range r.Colors {
		tokens = append(tokens, t)
	}
	for _, t := range r.Typography {
		tokens = append(tokens, t)
	}
	for _, t := range r.Spacing {
		tokens = append(tokens, t)
	}
	return tokens
}

// Walk classifies every entry of the configured token set in document order.
// A missing set is the only failure; bad tokens become warnings.
func Walk(doc *parser.Document, opts Options) (*Result, error) {
	name := opts.TokenSet
	if name == "" {
		name = schema.DefaultTokenSet
	}

	set, err := doc.Set(name)
	if err != nil {
		return nil, err
	}

	c := classify.New(opts.Classify)
	r := &result{}
	for _, entry := range set.Entries {
		out := c.Classify(entry)
		switch out.Kind {
		case classify.Classified:
			r.add(out.Token)
		case classify.Unrecognized:
			r.Warnings = append(r.Warnings, out.Warning)
		}
	}
	return &r.Result, nil
}

// result accumulates tokens and remembers where each identifier landed.
// Every artifact shares one Kotlin package, so identifiers are unique
// across categories as well as within them.
type result struct {
	Result
	colors     index
	typography index
	spacing    index
	declared   map[string]token.Token
}

// index maps an identifier to its position in a category slice.
type index map[string]int

func (r *result) add(tok token.Token) {
	if r.declared == nil {
		r.declared = make(map[string]token.Token)
	}
	if prev, ok := r.declared[tok.Name()]; ok && prev.Category() != tok.Category() {
		r.Warnings = append(r.Warnings, token.Warning{
			Source: tok.Origin(),
			Err: fmt.Errorf("%w %s: already declared by %s %q, skipped",
				schema.ErrDuplicateIdentifier, tok.Name(), prev.Category(), prev.Origin().Key),
		})
		return
	}
	r.declared[tok.Name()] = tok

	switch t := tok.(type) {
	case token.Color:
		r.Colors = place(r, &r.colors, r.Colors, t)
	case token.Typography:
		r.Typography = place(r, &r.typography, r.Typography, t)
	case token.Spacing:
		r.Spacing = place(r, &r.spacing, r.Spacing, t)
	}
}

// place appends tok, or overwrites the earlier token with the same
// identifier in its original position and records a warning.
func place[T token.Token](r *result, idx *index, list []T, tok T) []T {
	if *idx == nil {
		*idx = make(index)
	}
	if i, ok := (*idx)[tok.Name()]; ok {
		prev := list[i].Origin()
		r.Warnings = append(r.Warnings, token.Warning{
			Source: tok.Origin(),
			Err:    fmt.Errorf("%w %s: replaces %q", schema.ErrDuplicateIdentifier, tok.Name(), prev.Key),
		})
		list[i] = tok
		return list
	}
	(*idx)[tok.Name()] = len(list)
	return append(list, tok)
}
