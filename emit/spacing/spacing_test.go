/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package spacing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/emit/spacing"
	"bennypowers.dev/composetokens/parser"
	"bennypowers.dev/composetokens/testutil"
	"bennypowers.dev/composetokens/token"
	"bennypowers.dev/composetokens/walker"
)

const goldenPath = "golden/figma-export/Spacing.kt"

func TestEmit_Golden(t *testing.T) {
	doc, err := parser.Parse(testutil.LoadFixtureFile(t, "fixtures/figma-export/tokens.json"))
	require.NoError(t, err)
	result, err := walker.Walk(doc, walker.Options{})
	require.NoError(t, err)

	artifact, err := spacing.Emit(result.Spacing, emit.Options{Package: "com.adriano.designsystem.ui.theme"})
	require.NoError(t, err)

	testutil.AssertGolden(t, goldenPath, artifact.Content)
	assert.Equal(t, token.CategorySpacing, artifact.Category)
	assert.Equal(t, "Spacing.kt", artifact.FileName)
}

func TestEmit_Declarations(t *testing.T) {
	tokens := []token.Spacing{
		{Source: token.Source{Key: "none"}, Identifier: "None", Magnitude: 0},
		{Source: token.Source{Key: "half"}, Identifier: "Half", Magnitude: 0.5},
		{Source: token.Source{Key: "1x"}, Identifier: "1x", Magnitude: 8},
	}

	artifact, err := spacing.Emit(tokens, emit.Options{})
	require.NoError(t, err)

	content := string(artifact.Content)
	assert.Contains(t, content, "public val None: Dp = 0.0.dp\n")
	assert.Contains(t, content, "public val Half: Dp = 0.5.dp\n")
	assert.Contains(t, content, "public val `1x`: Dp = 8.0.dp\n")
}
