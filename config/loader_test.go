/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"testing"

	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/internal/mapfs"
	"bennypowers.dev/composetokens/schema"
	"bennypowers.dev/composetokens/testutil"
)

func TestLoad_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/yaml", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg == nil {
		t.Fatal("expected config, got nil")
	}

	if len(cfg.Input) != 1 || cfg.Input[0] != "design/tokens.json" {
		t.Errorf("expected input [design/tokens.json], got %v", cfg.Input)
	}

	if cfg.OutputDir != "android/app/src/main/kotlin" {
		t.Errorf("expected outputDir from file, got %q", cfg.OutputDir)
	}

	if cfg.Package != "com.acme.ui.theme" {
		t.Errorf("expected package 'com.acme.ui.theme', got %q", cfg.Package)
	}

	if cfg.TokenSet != schema.DefaultTokenSet {
		t.Errorf("expected default token set, got %q", cfg.TokenSet)
	}

	if cfg.Header != "Generated by composetokens.\nDo not edit.\n" {
		t.Errorf("unexpected header %q", cfg.Header)
	}

	if !cfg.Colors.CSSFallback {
		t.Error("expected colors.cssFallback to be true")
	}

	if !cfg.WalkerOptions().Classify.CSSColorFallback {
		t.Error("expected walker options to carry the CSS fallback")
	}

	if got := cfg.EmitOptions(); got.Package != "com.acme.ui.theme" || got.Header != cfg.Header {
		t.Errorf("unexpected emit options %+v", got)
	}
}

func TestLoad_JSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/json", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cfg.Input) != 2 || cfg.Input[1] != "figma/*.json" {
		t.Errorf("expected two inputs, got %v", cfg.Input)
	}

	if cfg.TokenSet != "brand" {
		t.Errorf("expected token set 'brand', got %q", cfg.TokenSet)
	}

	if cfg.WalkerOptions().TokenSet != "brand" {
		t.Errorf("expected walker token set 'brand', got %q", cfg.WalkerOptions().TokenSet)
	}

	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("expected default outputDir, got %q", cfg.OutputDir)
	}

	if cfg.Package != emit.DefaultPackage {
		t.Errorf("expected default package, got %q", cfg.Package)
	}
}

func TestLoad_NotFound(t *testing.T) {
	mfs := mapfs.New()

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestLoad_Malformed(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/.config/compose-tokens.yaml", "input: [unclosed", 0644)

	if _, err := Load(mfs, "/project"); err == nil {
		t.Fatal("expected error for malformed YAML")
	}

	cfg := LoadOrDefault(mfs, "/project")
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("expected defaults on malformed config, got %+v", cfg)
	}
}

func TestResolveInput_Defaults(t *testing.T) {
	t.Run("current directory", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("/project/tokens.json", "{}", 0644)
		mfs.AddFile("/tokens.json", "{}", 0644)

		path, err := Default().ResolveInput(mfs, "/project")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/project/tokens.json" {
			t.Errorf("expected /project/tokens.json, got %q", path)
		}
	})

	t.Run("parent directory", func(t *testing.T) {
		mfs := mapfs.New()
		mfs.AddFile("/project/tokens.json", "{}", 0644)

		path, err := Default().ResolveInput(mfs, "/project/app")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/project/tokens.json" {
			t.Errorf("expected /project/tokens.json, got %q", path)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mfs := mapfs.New()

		_, err := Default().ResolveInput(mfs, "/project")
		if !errors.Is(err, schema.ErrInputNotFound) {
			t.Errorf("expected ErrInputNotFound, got %v", err)
		}
	})
}

func TestResolveInput_Glob(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/globs", "/project")

	cfg, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := cfg.ResolveInput(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/project/design/exports/a.tokens.json" {
		t.Errorf("expected first lexical glob match, got %q", path)
	}
}
