/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package identifier derives Kotlin declaration names from token keys.
package identifier

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/composetokens/schema"
)

// SingleWord upper-cases the first character of key and leaves the rest untouched.
// Used for color and spacing keys.
func SingleWord(key string) string {
	if key == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(key)
	// cases.Caser is stateful, so each call gets its own.
	upper := cases.Upper(language.Und)
	return upper.String(string(first)) + key[size:]
}

// MultiWord splits key on whitespace and joins the segments with their first
// characters upper-cased, e.g. "body large" becomes "BodyLarge".
// Used for typography keys.
func MultiWord(key string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(key) {
		sb.WriteString(SingleWord(word))
	}
	return sb.String()
}

// forbidden lists characters the JVM rejects in names, even in backticks.
const forbidden = "`.;[]/<>:\\\r\n"

// Kotlin returns name as it must appear in Kotlin source, quoting it in
// backticks when it is not a plain identifier.
func Kotlin(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", schema.ErrInvalidIdentifier)
	}
	if strings.ContainsAny(name, forbidden) {
		return "", fmt.Errorf("%w: %q contains characters not allowed in Kotlin names", schema.ErrInvalidIdentifier, name)
	}
	if isPlain(name) && !slices.Contains(hardKeywords, name) {
		return name, nil
	}
	return "`" + name + "`", nil
}

func isPlain(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// hardKeywords cannot be used as identifiers without backticks.
var hardKeywords = []string{
	"as", "break", "class", "continue", "do", "else", "false", "for", "fun",
	"if", "in", "interface", "is", "null", "object", "package", "return",
	"super", "this", "throw", "true", "try", "typealias", "typeof", "val",
	"var", "when", "while",
}
