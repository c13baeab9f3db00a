/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typography emits Compose TextStyle constants.
package typography

import (
	"fmt"

	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/identifier"
	"bennypowers.dev/composetokens/token"
)

// FileName is the generated file's name.
const FileName = "Type.kt"

var imports = []string{
	"androidx.compose.ui.text.TextStyle",
	"androidx.compose.ui.text.font.FontFamily",
	"androidx.compose.ui.unit.sp",
}

const declaration = `public val %s: TextStyle = TextStyle(
    fontFamily = FontFamily.Default,
    fontSize = %s.sp,
    lineHeight = %s.sp,
    letterSpacing = %s.sp,
)`

// Emit renders one TextStyle per token, in order. Pixel sizes become sp.
func Emit(tokens []token.Typography, opts emit.Options) (emit.Artifact, error) {
	w := emit.NewWriter(opts, imports...)
	for _, tok := range tokens {
		name, err := identifier.Kotlin(tok.Identifier)
		if err != nil {
			return emit.Artifact{}, fmt.Errorf("typography %q: %w", tok.Key, err)
		}
		w.Declaration(declaration, name,
			emit.Float(tok.FontSize),
			emit.Float(tok.LineHeight),
			emit.Float(tok.LetterSpacing))
	}
	return w.Artifact(token.CategoryTypography, FileName), nil
}
