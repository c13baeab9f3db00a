/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package color emits Compose Color constants.
package color

import (
	"fmt"

	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/identifier"
	"bennypowers.dev/composetokens/token"
)

// FileName is the generated file's name.
const FileName = "Color.kt"

// Emit renders one `public val Name: Color = Color(0xAARRGGBB)` per token, in order.
func Emit(tokens []token.Color, opts emit.Options) (emit.Artifact, error) {
	w := emit.NewWriter(opts, "androidx.compose.ui.graphics.Color")
	for _, tok := range tokens {
		name, err := identifier.Kotlin(tok.Identifier)
		if err != nil {
			return emit.Artifact{}, fmt.Errorf("color %q: %w", tok.Key, err)
		}
		w.Declaration("public val %s: Color = Color(%s)", name, tok.ARGB)
	}
	return w.Artifact(token.CategoryColor, FileName), nil
}
