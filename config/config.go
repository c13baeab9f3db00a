/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for Compose token generation.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/composetokens/classify"
	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/schema"
	"bennypowers.dev/composetokens/walker"
)

// DefaultInputs are the token document candidates tried in order.
var DefaultInputs = []string{"tokens.json", "../tokens.json"}

// DefaultOutputDir is the Kotlin source root generated files are written under.
const DefaultOutputDir = "app/src/main/java"

// Config represents the token generation configuration.
type Config struct {
	// Input lists token document candidates (paths or doublestar globs).
	// The first that exists is used.
	Input Inputs `yaml:"input" json:"input"`

	// OutputDir is the Kotlin source root, e.g. "app/src/main/java".
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// Package is the Kotlin package of the generated files.
	Package string `yaml:"package" json:"package"`

	// TokenSet is the token set to consume.
	TokenSet string `yaml:"tokenSet" json:"tokenSet"`

	// Header is an optional comment placed at the top of every generated file.
	Header string `yaml:"header" json:"header"`

	// Colors configures color handling.
	Colors ColorConfig `yaml:"colors" json:"colors"`
}

// ColorConfig configures color token handling.
type ColorConfig struct {
	// CSSFallback accepts CSS color notations besides 6/8-digit hex.
	CSSFallback bool `yaml:"cssFallback" json:"cssFallback"`
}

// Inputs is a list of input candidates. It can be written as a single
// string or as a list.
type Inputs []string

// UnmarshalYAML handles both string and list forms for Inputs.
func (in *Inputs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*in = Inputs{node.Value}
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*in = list
	return nil
}

// UnmarshalJSON handles both string and list forms for Inputs.
func (in *Inputs) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*in = Inputs{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*in = list
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Input:     append(Inputs(nil), DefaultInputs...),
		OutputDir: DefaultOutputDir,
		Package:   emit.DefaultPackage,
		TokenSet:  schema.DefaultTokenSet,
	}
}

// applyDefaults fills fields left empty by a config file.
func (c *Config) applyDefaults() {
	d := Default()
	if len(c.Input) == 0 {
		c.Input = d.Input
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.Package == "" {
		c.Package = d.Package
	}
	if c.TokenSet == "" {
		c.TokenSet = d.TokenSet
	}
}

// WalkerOptions returns the walker options described by the config.
func (c *Config) WalkerOptions() walker.Options {
	return walker.Options{
		TokenSet: c.TokenSet,
		Classify: classify.Options{CSSColorFallback: c.Colors.CSSFallback},
	}
}

// EmitOptions returns the emitter options described by the config.
func (c *Config) EmitOptions() emit.Options {
	return emit.Options{
		Package: c.Package,
		Header:  c.Header,
	}
}
