/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"errors"
	"fmt"
	"testing"
)

func TestCategory_String(t *testing.T) {
	want := []string{"color", "typography", "spacing"}
	for i, c := range Categories {
		if c.String() != want[i] {
			t.Errorf("Categories[%d].String() = %q, want %q", i, c.String(), want[i])
		}
	}
	if got := Category(42).String(); got != "unknown" {
		t.Errorf("expected unknown, got %q", got)
	}
}

func TestTokens(t *testing.T) {
	tokens := []Token{
		Color{Source: Source{Key: "primary", Line: 3}, Identifier: "Primary"},
		Typography{Source: Source{Key: "body large"}, Identifier: "BodyLarge"},
		Spacing{Source: Source{Key: "one"}, Identifier: "One"},
	}
	for i, tok := range tokens {
		if tok.Category() != Categories[i] {
			t.Errorf("tokens[%d].Category() = %v", i, tok.Category())
		}
	}
	if tokens[1].Name() != "BodyLarge" || tokens[1].Origin().Key != "body large" {
		t.Errorf("unexpected typography token %+v", tokens[1])
	}
}

func TestWarning(t *testing.T) {
	errBad := errors.New("bad value")

	t.Run("with line", func(t *testing.T) {
		w := Warning{Source: Source{Key: "broken", Line: 27}, Err: fmt.Errorf("%w: nope", errBad)}
		if got := w.Error(); got != "broken (line 27): bad value: nope" {
			t.Errorf("unexpected message %q", got)
		}
		if !errors.Is(w, errBad) {
			t.Error("expected warning to unwrap to its cause")
		}
	})

	t.Run("without line", func(t *testing.T) {
		w := Warning{Source: Source{Key: "broken"}, Err: errBad}
		if got := w.Error(); got != "broken: bad value" {
			t.Errorf("unexpected message %q", got)
		}
	})
}
