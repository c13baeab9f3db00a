/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package emit provides the artifact type and shared helpers for the Kotlin
// emitters in its subpackages.
package emit

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"bennypowers.dev/composetokens/token"
)

// DefaultPackage is the Kotlin package used when none is configured.
const DefaultPackage = "com.adriano.designsystem.ui.theme"

// Options configures the emitters.
type Options struct {
	// Package is the Kotlin package declared by every artifact.
	Package string

	// Header is an optional comment (e.g. a license) placed above the package line.
	Header string
}

// PackageName returns the configured package or DefaultPackage.
func (o Options) PackageName() string {
	if o.Package == "" {
		return DefaultPackage
	}
	return o.Package
}

// Artifact is one generated Kotlin source file.
type Artifact struct {
	Category token.Category
	FileName string
	Content  []byte
}

// Path returns the artifact's path relative to a source root,
// e.g. "com/adriano/designsystem/ui/theme/Color.kt".
func (a Artifact) Path(pkg string) string {
	return path.Join(strings.ReplaceAll(pkg, ".", "/"), a.FileName)
}

// Writer accumulates the text of one artifact.
type Writer struct {
	sb strings.Builder
}

// NewWriter starts an artifact with the header, package line and imports.
func NewWriter(opts Options, imports ...string) *Writer {
	w := &Writer{}
	w.sb.WriteString(FormatHeader(opts.Header))
	fmt.Fprintf(&w.sb, "package %s\n\n", opts.PackageName())
	for _, imp := range imports {
		fmt.Fprintf(&w.sb, "import %s\n", imp)
	}
	return w
}

// Declaration appends one declaration, separated from the previous by a blank line.
func (w *Writer) Declaration(format string, args ...any) {
	w.sb.WriteString("\n")
	fmt.Fprintf(&w.sb, format, args...)
	w.sb.WriteString("\n")
}

// Artifact finishes the file.
func (w *Writer) Artifact(category token.Category, fileName string) Artifact {
	return Artifact{
		Category: category,
		FileName: fileName,
		Content:  []byte(w.sb.String()),
	}
}

// Float renders v as a Kotlin Double literal: the shortest form that round
// trips, always with a decimal point (16 -> "16.0").
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatHeader renders header as a Kotlin comment followed by a blank line.
// Single lines use //, multiple lines a block comment. Empty headers render
// as nothing.
func FormatHeader(header string) string {
	header = strings.TrimRight(header, "\n")
	if header == "" {
		return ""
	}

	lines := strings.Split(header, "\n")
	if len(lines) == 1 {
		return "// " + lines[0] + "\n\n"
	}

	var sb strings.Builder
	sb.WriteString("/*\n")
	for _, line := range lines {
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}
		sb.WriteString(" * " + line + "\n")
	}
	sb.WriteString(" */\n\n")
	return sb.String()
}
