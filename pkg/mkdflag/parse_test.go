// SPDX-License-Identifier: MPL-2.0

package mkdflag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		list string
		want []ID
	}{
		{name: "empty", list: "", want: []ID{DLDiscount}},
		{name: "enable plain flags", list: "toc, strict", want: []ID{Strict, TOC, DLDiscount}},
		{name: "disable negated feature", list: "-links", want: []ID{NoLinks, DLDiscount}},
		{name: "bang disables", list: "!image", want: []ID{NoImage, DLDiscount}},
		{name: "stored spelling", list: "+nohtml", want: []ID{NoHTML, DLDiscount}},
		{name: "negative stored spelling", list: "-nohtml", want: []ID{DLDiscount}},
		{name: "disable default", list: "-dldiscount", want: nil},
		{name: "left to right", list: "toc -toc fencedcode", want: []ID{DLDiscount, FencedCode}},
		{name: "enable negated feature is a clear", list: "-pants +pants", want: []ID{DLDiscount}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := ParseString(tt.list)
			if err != nil {
				t.Fatalf("ParseString(%q) error: %v", tt.list, err)
			}
			if diff := cmp.Diff(tt.want, s.Enabled()); diff != "" {
				t.Errorf("ParseString(%q) mismatch (-want +got):\n%s", tt.list, diff)
			}
		})
	}
}

func TestParseUnknownLeavesSetUntouched(t *testing.T) {
	t.Parallel()

	s := Blank()
	err := Parse(s, "toc,+wibble")
	if !errors.Is(err, ErrUnknownFlag) {
		t.Fatalf("Parse error = %v, want ErrUnknownFlag", err)
	}
	var ufe *UnknownFlagError
	if !errors.As(err, &ufe) || ufe.Name != "+wibble" {
		t.Errorf("error = %#v, want UnknownFlagError for +wibble", err)
	}
	if s.Any() {
		t.Errorf("set modified on error: %v", s.Enabled())
	}
}
