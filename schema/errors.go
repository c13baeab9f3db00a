/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for token documents.
var (
	// ErrInputNotFound indicates no token document exists at any candidate path.
	ErrInputNotFound = errors.New("token document not found")

	// ErrNotObject indicates the document root is not a JSON object.
	ErrNotObject = errors.New("document root must be a JSON object")

	// ErrMissingGlobalSet indicates the consumed token set is absent.
	ErrMissingGlobalSet = errors.New("token set not found")

	// ErrInvalidTokenSet indicates the consumed token set is not a JSON object.
	ErrInvalidTokenSet = errors.New("token set must be a JSON object")

	// ErrMissingType indicates a token has no usable $type or type field.
	ErrMissingType = errors.New("token missing $type")

	// ErrMissingValue indicates a token has no $value or value field.
	ErrMissingValue = errors.New("token missing $value")

	// ErrUnsupportedType indicates a token type other than color, typography or spacing.
	ErrUnsupportedType = errors.New("unsupported token type")

	// ErrWrongValueShape indicates a value of the wrong JSON kind for its type.
	ErrWrongValueShape = errors.New("wrong value shape for token type")

	// ErrInvalidColor indicates a color that is not 6 or 8 hex digits.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidIdentifier indicates a key that cannot become a Kotlin identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrDuplicateIdentifier indicates two keys derived the same identifier.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)
