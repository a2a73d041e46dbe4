// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mkdflags/mkdflags/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got, want := getVersionString(), "dev (built from source)"; got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	ae := issue.NewErrorContext().
		WithOperation("parse legacy mask").
		WithResource("0xZZ").
		WithSuggestion("Use hex").
		Wrap(cause).
		BuildError()

	tests := []struct {
		name    string
		err     error
		verbose bool
		want    []string
		notWant []string
	}{
		{
			name: "plain error",
			err:  cause,
			want: []string{"boom"},
		},
		{
			name:    "actionable error",
			err:     ae,
			want:    []string{"failed to parse legacy mask: 0xZZ: boom", "• Use hex"},
			notWant: []string{"Error chain:"},
		},
		{
			name:    "wrapped actionable error verbose",
			err:     fmt.Errorf("outer: %w", &ExitError{Code: 1, Err: ae}),
			verbose: true,
			want:    []string{"failed to parse legacy mask", "Error chain:", "1. boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := formatErrorForDisplay(tt.err, tt.verbose)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output %q does not contain %q", got, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("output %q unexpectedly contains %q", got, w)
				}
			}
		})
	}
}
