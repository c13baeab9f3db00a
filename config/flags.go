/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	ctfs "bennypowers.dev/composetokens/fs"
)

// EnvPrefix prefixes environment overrides, e.g. COMPOSETOKENS_PACKAGE.
const EnvPrefix = "COMPOSETOKENS"

// Keys shared by flags and environment variables.
const (
	KeyConfig    = "config"
	KeyOut       = "out"
	KeyPackage   = "package"
	KeyTokenSet  = "set"
	KeyHeader    = "header"
	KeyCSSColors = "css-colors"
)

// Resolve loads the config file and applies environment and flag overrides.
// Precedence is flag, then COMPOSETOKENS_* environment, then config file,
// then defaults. An explicit --config path must exist.
func Resolve(cmd *cobra.Command, filesystem ctfs.FileSystem, rootDir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	var cfg *Config
	if path := v.GetString(KeyConfig); path != "" {
		loaded, err := LoadFile(filesystem, path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		loaded, err := Load(filesystem, rootDir)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cfg == nil {
		cfg = Default()
	}

	if v.IsSet(KeyOut) {
		cfg.OutputDir = v.GetString(KeyOut)
	}
	if v.IsSet(KeyPackage) {
		cfg.Package = v.GetString(KeyPackage)
	}
	if v.IsSet(KeyTokenSet) {
		cfg.TokenSet = v.GetString(KeyTokenSet)
	}
	if v.IsSet(KeyHeader) {
		cfg.Header = v.GetString(KeyHeader)
	}
	if v.IsSet(KeyCSSColors) {
		cfg.Colors.CSSFallback = v.GetBool(KeyCSSColors)
	}

	return cfg, nil
}
