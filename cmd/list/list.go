/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for composetokens.
package list

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"bennypowers.dev/composetokens/config"
	"bennypowers.dev/composetokens/emit"
	"bennypowers.dev/composetokens/fs"
	"bennypowers.dev/composetokens/generate"
	"bennypowers.dev/composetokens/internal/logger"
	"bennypowers.dev/composetokens/token"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List the tokens that would be generated",
	Long:  `List every classified token with its Kotlin name and normalized value.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type: color, typography, spacing")
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().String(config.KeyTokenSet, "", "Token set to read (default global)")
	Cmd.Flags().Bool(config.KeyCSSColors, false, "Accept CSS color syntax (rgb(), hsl(), named colors)")
}

// Row holds the display values for a single token.
type Row struct {
	Key   string `json:"key"`
	Line  int    `json:"line,omitempty"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`

	color *normalizedColor
}

type normalizedColor struct {
	rgb   colorful.Color
	alpha float64
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	format, _ := cmd.Flags().GetString("format")

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
	report, err := generate.Analyze(filesystem, input, opts)
	if err != nil {
		return err
	}
	for _, warning := range report.Result.Warnings {
		logger.Debug("skipped %v", warning)
	}

	tokens, err := filterTokens(report.Result.Tokens(), typeFilter)
	if err != nil {
		return err
	}
	rows := computeRows(tokens)

	switch format {
	case "json":
		return outputJSON(cmd.OutOrStdout(), rows)
	case "table":
		return outputTable(cmd.OutOrStdout(), rows)
	default:
		return fmt.Errorf("unknown format %q: expected table or json", format)
	}
}

// filterTokens keeps the tokens of one category. An empty filter keeps all.
func filterTokens(tokens []token.Token, typeFilter string) ([]token.Token, error) {
	if typeFilter == "" {
		return tokens, nil
	}
	var category token.Category
	found := false
	for _, c := range token.Categories {
		if c.String() == typeFilter {
			category, found = c, true
		}
	}
	if !found {
		return nil, fmt.Errorf("unknown type %q: expected color, typography or spacing", typeFilter)
	}

	filtered := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Category() == category {
			filtered = append(filtered, tok)
		}
	}
	return filtered, nil
}

func computeRows(tokens []token.Token) []Row {
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		row := Row{
			Key:  tok.Origin().Key,
			Line: tok.Origin().Line,
			Name: tok.Name(),
			Type: tok.Category().String(),
		}
		switch t := tok.(type) {
		case token.Color:
			row.Value = t.ARGB.String()
			rgb, alpha := t.ARGB.Colorful()
			row.color = &normalizedColor{rgb: rgb, alpha: alpha}
		case token.Typography:
			row.Value = fmt.Sprintf("%ssp / %ssp / %ssp",
				emit.Float(t.FontSize), emit.Float(t.LineHeight), emit.Float(t.LetterSpacing))
		case token.Spacing:
			row.Value = emit.Float(t.Magnitude) + "dp"
		}
		rows = append(rows, row)
	}
	return rows
}

// colorSwatch returns a 24-bit ANSI color block. Translucent colors are
// composited over black.
func colorSwatch(c normalizedColor) string {
	shown := colorful.Color{}.BlendRgb(c.rgb, c.alpha).Clamped()
	r, g, b := shown.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// columnWidths calculates the max width needed for the name and type columns.
func columnWidths(rows []Row) (name, typ int) {
	name, typ = 4, 4
	for _, r := range rows {
		name = max(name, len(r.Name))
		typ = max(typ, len(r.Type))
	}
	return
}

func outputTable(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW := columnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.color != nil {
			swatch = colorSwatch(*r.color)
		}
		key := ""
		if !strings.EqualFold(r.Key, r.Name) {
			key = "  (" + strings.TrimSpace(r.Key) + ")"
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, key); err != nil {
			return err
		}
	}
	return nil
}

func outputJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
