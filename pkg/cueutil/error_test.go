// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	if err := FormatError(nil, "x.cue"); err != nil {
		t.Errorf("FormatError(nil) = %v, want nil", err)
	}

	orig := errors.New("boom")
	err := FormatError(orig, "x.cue")
	if !errors.Is(err, orig) {
		t.Errorf("FormatError did not wrap the plain error: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "x.cue: ") {
		t.Errorf("FormatError(%v) = %q, want file prefix", orig, err)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single", path: []string{"profile"}, want: "profile"},
		{name: "nested", path: []string{"profile", "legacy_mode"}, want: "profile.legacy_mode"},
		{name: "index", path: []string{"profile", "flags", "2"}, want: "profile.flags[2]"},
		{name: "leading number", path: []string{"0", "x"}, want: "0.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 10), 10, "f"); err != nil {
		t.Errorf("CheckFileSize at limit = %v", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "f"); err == nil {
		t.Error("CheckFileSize over limit returned nil")
	}
}
