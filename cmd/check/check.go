/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for composetokens.
package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/composetokens/config"
	"bennypowers.dev/composetokens/fs"
	"bennypowers.dev/composetokens/generate"
	"bennypowers.dev/composetokens/internal/logger"
)

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a design tokens file without generating code",
	Long:  `Parse and classify a design tokens file, reporting every token that would be skipped.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	addFlags(Cmd)
}

func addFlags(cmd *cobra.Command) {
	cmd.Flags().String(config.KeyTokenSet, "", "Token set to read (default global)")
	cmd.Flags().Bool(config.KeyCSSColors, false, "Accept CSS color syntax (rgb(), hsl(), named colors)")
	cmd.Flags().Bool("strict", false, "Fail on warnings")
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Resolve(cmd, filesystem, ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	opts := generate.Options{Root: ".", Config: cfg}
	if len(args) == 1 {
		opts.Input = args[0]
	}

	input, err := generate.ResolveInput(filesystem, opts)
	if err != nil {
		return err
	}

	logger.Info("Checking %s...", input)
	report, err := generate.Analyze(filesystem, input, opts)
	if err != nil {
		return err
	}

	for _, warning := range report.Result.Warnings {
		logger.Warn("%v", warning)
	}
	logger.Info("  %s", report.Result.Summary())

	if n := len(report.Result.Warnings); n > 0 {
		if strict {
			return fmt.Errorf("check failed: %d warnings", n)
		}
		logger.Info("%d tokens skipped.", n)
		return nil
	}

	logger.Info("All tokens valid.")
	return nil
}
