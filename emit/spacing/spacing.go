/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package spacing emits Compose Dp constants.
package spacing

import (
	"fmt"

	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/identifier"
	"bennypowers.dev/composetokens/token"
)

// FileName is the generated file's name.
const FileName = "Spacing.kt"

// Emit renders one `public val Name: Dp = N.dp` per token, in order.
func Emit(tokens []token.Spacing, opts emit.Options) (emit.Artifact, error) {
	w := emit.NewWriter(opts, "androidx.compose.ui.unit.Dp", "androidx.compose.ui.unit.dp")
	for _, tok := range tokens {
		name, err := identifier.Kotlin(tok.Identifier)
		if err != nil {
			return emit.Artifact{}, fmt.Errorf("spacing %q: %w", tok.Key, err)
		}
		w.Declaration("public val %s: Dp = %s.dp", name, emit.Float(tok.Magnitude))
	}
	return w.Artifact(token.CategorySpacing, FileName), nil
}
