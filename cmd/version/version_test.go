/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func runVersion(t *testing.T, format string) (string, error) {
	t.Helper()
	cmd := &cobra.Command{RunE: run}
	cmd.Flags().StringP("format", "f", "text", "")
	if err := cmd.Flags().Set("format", format); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	cmd.SetOut(&out)
	err := run(cmd, nil)
	return out.String(), err
}

func TestVersion(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := runVersion(t, "text")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out, "composetokens ") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		out, err := runVersion(t, "json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var info map[string]string
		if err := json.Unmarshal([]byte(out), &info); err != nil {
			t.Fatalf("invalid json %q: %v", out, err)
		}
		if info["version"] == "" {
			t.Errorf("expected a version field, got %v", info)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := runVersion(t, "yaml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
