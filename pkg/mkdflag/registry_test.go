// SPDX-License-Identifier: MPL-2.0

package mkdflag

import "testing"

func TestRegistryCoversEveryID(t *testing.T) {
	t.Parallel()

	entries := Registry()
	if len(entries) != NumFlags {
		t.Fatalf("len(Registry()) = %d, want %d", len(entries), NumFlags)
	}

	seen := make(map[ID]bool)
	names := make(map[string]bool)
	for _, e := range entries {
		if seen[e.ID] {
			t.Errorf("duplicate registry entry for %v", e.ID)
		}
		seen[e.ID] = true
		if names[e.Name] {
			t.Errorf("duplicate registry name %q", e.Name)
		}
		names[e.Name] = true
		if e.Name == "" || e.Name[0] == '!' {
			t.Errorf("entry %d has malformed name %q", e.ID, e.Name)
		}
	}
}

func TestRegistryReturnsCopy(t *testing.T) {
	t.Parallel()

	entries := Registry()
	entries[0].Name = "CHANGED"
	if Name(entries[0].ID) == "CHANGED" {
		t.Error("mutating Registry() result changed the registry")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	e, ok := Lookup(NoStyle)
	if !ok || e.Name != "STYLE" || !e.Negated {
		t.Errorf("Lookup(NoStyle) = %+v, %v", e, ok)
	}
	if _, ok := Lookup(ID(NumFlags)); ok {
		t.Error("Lookup(NumFlags) succeeded")
	}
	if got := Name(ID(250)); got != "" {
		t.Errorf("Name(250) = %q, want empty", got)
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		wantID ID
		wantOK bool
	}{
		{name: "toc", wantID: TOC, wantOK: true},
		{name: " FencedCode ", wantID: FencedCode, wantOK: true},
		{name: "links", wantID: NoLinks, wantOK: true},
		{name: "nolinks", wantID: NoLinks, wantOK: true},
		{name: "NO_HTML", wantID: NoHTML, wantOK: true},
		{name: "notoc", wantOK: false},
		{name: "", wantOK: false},
		{name: "bogus", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ok := ByName(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ByName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && e.ID != tt.wantID {
				t.Errorf("ByName(%q) = %v, want %v", tt.name, e.ID, tt.wantID)
			}
		})
	}
}
