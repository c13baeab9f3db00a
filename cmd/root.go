/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for composetokens.
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"bennypowers.dev/composetokens/cmd/check"
	"bennypowers.dev/composetokens/cmd/generate"
	"bennypowers.dev/composetokens/cmd/list"
	"bennypowers.dev/composetokens/cmd/version"
	"bennypowers.dev/composetokens/config"
	"bennypowers.dev/composetokens/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "composetokens",
	Short: "Generate Jetpack Compose theme code from design tokens",
	Long: `composetokens reads a design tokens export (such as the Figma Tokens plugin's
tokens.json) and generates Kotlin declarations for Jetpack Compose:
Color.kt, Type.kt and Spacing.kt.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if quiet {
			logger.SetOutput(io.Discard)
		}
		logger.SetVerbose(verbose && !quiet)
	},
}

// Execute runs the root command. Interrupts cancel the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String(config.KeyConfig, "", "Config file (default .config/compose-tokens.{yaml,yml,json})")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Only output errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug messages")

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
