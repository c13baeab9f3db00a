/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package emit_test

import (
	"strings"
	"testing"

	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/token"
)

func TestFormatHeader_Empty(t *testing.T) {
	result := emit.FormatHeader("")
	if result != "" {
		t.Errorf("expected empty string for empty header, got %q", result)
	}
}

func TestFormatHeader_SingleLine(t *testing.T) {
	result := emit.FormatHeader("Copyright 2026")
	expected := "// Copyright 2026\n\n"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestFormatHeader_MultiLine(t *testing.T) {
	result := emit.FormatHeader("Copyright 2026\n\nMIT License")
	if !strings.HasPrefix(result, "/*\n") {
		t.Error("expected block comment start")
	}
	if !strings.Contains(result, " * Copyright 2026\n *\n * MIT License\n") {
		t.Errorf("expected lines with asterisk prefix, got %q", result)
	}
	if !strings.HasSuffix(result, " */\n\n") {
		t.Error("expected block comment end")
	}
}

func TestFormatHeader_TrailingNewlines(t *testing.T) {
	result := emit.FormatHeader("Copyright 2026\n\n\n")
	expected := "// Copyright 2026\n\n"
	if result != expected {
		t.Errorf("expected trailing newlines to be trimmed, got %q", result)
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{16, "16.0"},
		{0, "0.0"},
		{0.5, "0.5"},
		{0.25, "0.25"},
		{-0.4, "-0.4"},
		{1.125, "1.125"},
		{100, "100.0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := emit.Float(tt.input); got != tt.expected {
				t.Errorf("Float(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWriter(t *testing.T) {
	w := emit.NewWriter(emit.Options{Package: "com.acme.theme"}, "a.B", "c.D")
	w.Declaration("val X = %d", 1)
	w.Declaration("val Y = %d", 2)
	a := w.Artifact(token.CategorySpacing, "Spacing.kt")

	expected := "package com.acme.theme\n\nimport a.B\nimport c.D\n\nval X = 1\n\nval Y = 2\n"
	if string(a.Content) != expected {
		t.Errorf("expected %q, got %q", expected, a.Content)
	}
	if a.Category != token.CategorySpacing || a.FileName != "Spacing.kt" {
		t.Errorf("unexpected artifact metadata: %+v", a)
	}
}

func TestArtifact_Path(t *testing.T) {
	a := emit.Artifact{FileName: "Color.kt"}
	if got := a.Path("com.acme.ui.theme"); got != "com/acme/ui/theme/Color.kt" {
		t.Errorf("unexpected path %q", got)
	}
}

func TestOptions_PackageName(t *testing.T) {
	if got := (emit.Options{}).PackageName(); got != emit.DefaultPackage {
		t.Errorf("expected default package, got %q", got)
	}
}
