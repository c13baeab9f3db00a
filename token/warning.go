/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "fmt"

// Warning records a token that was skipped or overridden. The run continues.
type Warning struct {
	Source

	// Err wraps one of the schema sentinel errors.
	Err error
}

// Error implements error so warnings can be checked with errors.Is.
func (w Warning) Error() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %v", w.Key, w.Line, w.Err)
	}
	return fmt.Sprintf("%s: %v", w.Key, w.Err)
}

// Unwrap returns the underlying error.
func (w Warning) Unwrap() error {
	return w.Err
}
