/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package color_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/emit/color"
	"bennypowers.dev/composetokens/normalize"
	"bennypowers.dev/composetokens/parser"
	"bennypowers.dev/composetokens/schema"
	"bennypowers.dev/composetokens/testutil"
	"bennypowers.dev/composetokens/token"
	"bennypowers.dev/composetokens/walker"
)

const goldenPath = "golden/figma-export/Color.kt"

func TestEmit_Golden(t *testing.T) {
	doc, err := parser.Parse(testutil.LoadFixtureFile(t, "fixtures/figma-export/tokens.json"))
	require.NoError(t, err)
	result, err := walker.Walk(doc, walker.Options{})
	require.NoError(t, err)

	artifact, err := color.Emit(result.Colors, emit.Options{Package: "com.adriano.designsystem.ui.theme"})
	require.NoError(t, err)

	testutil.AssertGolden(t, goldenPath, artifact.Content)
	assert.Equal(t, token.CategoryColor, artifact.Category)
	assert.Equal(t, "Color.kt", artifact.FileName)
}

func TestEmit_Empty(t *testing.T) {
	artifact, err := color.Emit(nil, emit.Options{})
	require.NoError(t, err)
	assert.Equal(t, "package com.adriano.designsystem.ui.theme\n\nimport androidx.compose.ui.graphics.Color\n", string(artifact.Content))
}

func TestEmit_OrderAndQuoting(t *testing.T) {
	tokens := []token.Color{
		{Source: token.Source{Key: "zeta"}, Identifier: "Zeta", ARGB: normalize.ARGB{0xFF, 0, 0, 0}},
		{Source: token.Source{Key: "alpha"}, Identifier: "Alpha", ARGB: normalize.ARGB{0x80, 0xFF, 0xFF, 0xFF}},
		{Source: token.Source{Key: "brand-blue"}, Identifier: "Brand-blue", ARGB: normalize.ARGB{0xFF, 0, 0, 0xFF}},
	}

	artifact, err := color.Emit(tokens, emit.Options{Header: "Generated from tokens.json. Do not edit."})
	require.NoError(t, err)

	content := string(artifact.Content)
	assert.True(t, strings.HasPrefix(content, "// Generated from tokens.json. Do not edit.\n\npackage "))
	zeta := strings.Index(content, "public val Zeta: Color = Color(0xFF000000)")
	alpha := strings.Index(content, "public val Alpha: Color = Color(0x80FFFFFF)")
	brand := strings.Index(content, "public val `Brand-blue`: Color = Color(0xFF0000FF)")
	require.True(t, zeta >= 0 && alpha >= 0 && brand >= 0, content)
	assert.Less(t, zeta, alpha)
	assert.Less(t, alpha, brand)
}

func TestEmit_InvalidIdentifier(t *testing.T) {
	_, err := color.Emit([]token.Color{{Source: token.Source{Key: ""}}}, emit.Options{})
	assert.ErrorIs(t, err, schema.ErrInvalidIdentifier)
}
