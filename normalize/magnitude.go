/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Magnitude strips one trailing unitSuffix from raw and parses the rest as a
// non-negative float. Unparseable, non-finite or negative input yields def.
func Magnitude(raw, unitSuffix string, def float64) float64 {
	v, ok := parse(raw, unitSuffix)
	if !ok || v < 0 {
		return def
	}
	if v == 0 {
		// Drops the sign of -0.
		return 0
	}
	return v
}

// SignedMagnitude is Magnitude for quantities that may be negative, such as
// letter spacing.
func SignedMagnitude(raw, unitSuffix string, def float64) float64 {
	v, ok := parse(raw, unitSuffix)
	if !ok {
		return def
	}
	return v
}

func parse(raw, unitSuffix string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if unitSuffix != "" {
		s = strings.TrimSpace(strings.TrimSuffix(s, unitSuffix))
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
