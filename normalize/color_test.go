/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/composetokens/normalize"
	"bennypowers.dev/composetokens/schema"
)

func TestColor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"#3A693B", "FF3A693B"},
		{"3A693B", "FF3A693B"},
		{"#3a693b", "FF3A693B"},
		{"#000000", "FF000000"},
		{"#80FFFFFF", "80FFFFFF"},
		{"00112233", "00112233"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := normalize.Color(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Hex())
			assert.Equal(t, "0x"+tt.expected, c.String())
		})
	}
}

func TestColor_Invalid(t *testing.T) {
	for _, input := range []string{"#ABC", "#1234567", "", "#", "##3A693B", "#GGGGGG", "red"} {
		t.Run(input, func(t *testing.T) {
			_, err := normalize.Color(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, schema.ErrInvalidColor)
		})
	}
}

func TestColor_SixDigitsAlwaysOpaque(t *testing.T) {
	for i := 0; i < 0xFFFFFF; i += 0x0F0F1 {
		v := fmt.Sprintf("%06x", i)
		c, err := normalize.Color("#" + v)
		require.NoError(t, err, v)
		assert.Len(t, c.Hex(), 8)
		assert.Equal(t, byte(0xFF), c.Alpha())
		assert.Equal(t, "FF"+strings.ToUpper(v), c.Hex())
	}
}

func TestColor_EightDigitsIdentity(t *testing.T) {
	for _, v := range []string{"00000000", "FFFFFFFF", "12345678", "DEADBEEF", "7F3A693B"} {
		c, err := normalize.Color("#" + v)
		require.NoError(t, err)
		assert.Equal(t, v, c.Hex())
	}
}

func TestColorWithCSSFallback(t *testing.T) {
	t.Run("hex takes precedence", func(t *testing.T) {
		c, err := normalize.ColorWithCSSFallback("#80FFFFFF")
		require.NoError(t, err)
		assert.Equal(t, "80FFFFFF", c.Hex())
	})

	t.Run("rgba", func(t *testing.T) {
		c, err := normalize.ColorWithCSSFallback("rgba(255, 0, 0, 0)")
		require.NoError(t, err)
		assert.Equal(t, "00FF0000", c.Hex())
	})

	t.Run("named", func(t *testing.T) {
		c, err := normalize.ColorWithCSSFallback("white")
		require.NoError(t, err)
		assert.Equal(t, "FFFFFFFF", c.Hex())
	})

	t.Run("short hex", func(t *testing.T) {
		c, err := normalize.ColorWithCSSFallback("#ABC")
		require.NoError(t, err)
		assert.Equal(t, "FFAABBCC", c.Hex())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := normalize.ColorWithCSSFallback("not a color")
		assert.ErrorIs(t, err, schema.ErrInvalidColor)
	})
}

func TestARGB_Colorful(t *testing.T) {
	c, err := normalize.Color("#80FF0000")
	require.NoError(t, err)

	rgb, alpha := c.Colorful()
	r, g, b := rgb.RGB255()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), g)
	assert.Equal(t, uint8(0), b)
	assert.InDelta(t, 128.0/255, alpha, 1e-9)
}
