/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for composetokens.
package generate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/composetokens/config"
	"bennypowers.dev/composetokens/fs"
	pipeline "bennypowers.dev/composetokens/generate"
	"bennypowers.dev/composetokens/internal/logger"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate Color.kt, Type.kt and Spacing.kt",
	Long: `Generate Kotlin declarations for Jetpack Compose from a design tokens file.

The input defaults to tokens.json, then ../tokens.json, unless the config file
lists other candidates. Output goes to <out>/<package path>/.

Examples:
  # Use tokens.json in the current directory
  composetokens generate

  # Explicit input, package and output root
  composetokens generate design/tokens.json -p com.acme.ui.theme -o app/src/main/java

  # Regenerate on every save
  composetokens generate --watch`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	addFlags(Cmd)
}

func addFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP(config.KeyOut, "o", "", "Source root to write into (default "+config.DefaultOutputDir+")")
	flags.StringP(config.KeyPackage, "p", "", "Kotlin package of the generated files")
	flags.String(config.KeyTokenSet, "", "Token set to read (default global)")
	flags.String(config.KeyHeader, "", "Comment placed at the top of each generated file")
	flags.Bool(config.KeyCSSColors, false, "Accept CSS color syntax (rgb(), hsl(), named colors)")
	flags.Bool("dry-run", false, "Render without writing files")
	flags.Bool("strict", false, "Fail when any token produced a warning")
	flags.BoolP("watch", "w", false, "Regenerate when the input file changes")
}

func run(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	strict, _ := cmd.Flags().GetBool("strict")
	watch, _ := cmd.Flags().GetBool("watch")

	filesystem := fs.NewOSFileSystem()
	cfg, err := config.Resolve(cmd, filesystem, ".")
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	opts := pipeline.Options{Root: ".", Config: cfg, DryRun: dryRun}
	if len(args) == 1 {
		opts.Input = args[0]
	}

	if watch {
		return pipeline.Watch(cmd.Context(), filesystem, pipeline.WatchOptions{Options: opts}, func(report *pipeline.Report, err error) {
			if err != nil {
				logger.Warn("%v", err)
				return
			}
			printReport(cmd.OutOrStdout(), report, dryRun)
		})
	}

	report, err := pipeline.Run(cmd.Context(), filesystem, opts)
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), report, dryRun)

	if strict && len(report.Result.Warnings) > 0 {
		return fmt.Errorf("%d warnings in strict mode", len(report.Result.Warnings))
	}
	return nil
}

// printReport logs warnings, then the files and summary. Dry runs print the
// rendered files to w instead.
func printReport(w io.Writer, report *pipeline.Report, dryRun bool) {
	for _, warning := range report.Result.Warnings {
		logger.Warn("%v", warning)
	}
	if dryRun {
		for i, artifact := range report.Artifacts {
			fmt.Fprintf(w, "// %s\n%s\n", report.Paths[i], artifact.Content)
		}
	}
	for _, path := range report.Written {
		logger.Info("Wrote %s", path)
	}
	logger.Info("%s", report.Result.Summary())
}
