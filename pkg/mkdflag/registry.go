// SPDX-License-Identifier: MPL-2.0

package mkdflag

import (
	"slices"
	"strings"
)

// Entry describes one registered flag.
type Entry struct {
	// ID is the flag this entry names.
	ID ID
	// Name is the human-facing feature name, without any negation marker.
	Name string
	// Negated reports that a set bit means the feature is disabled.
	Negated bool
}

// registry is in registration order, which is also report order.
var registry = [...]Entry{
	{NoLinks, "LINKS", true},
	{NoImage, "IMAGE", true},
	{NoPants, "PANTS", true},
	{NoHTML, "HTML", true},
	{TagText, "TAGTEXT", false},
	{NoExt, "EXT", true},
	{CDATA, "CDATA", false},
	{NoSuperscript, "SUPERSCRIPT", true},
	{Strict, "STRICT", false},
	{NoTables, "TABLES", true},
	{NoStrikethrough, "STRIKETHROUGH", true},
	{TOC, "TOC", false},
	{Compat1, "MKD_1_COMPAT", false},
	{Autolink, "AUTOLINK", false},
	{SafeLink, "SAFELINK", false},
	{NoHeader, "HEADER", true},
	{TabStop, "TABSTOP", false},
	{NoDivQuote, "DIVQUOTE", true},
	{NoAlphaList, "ALPHALIST", true},
	{ExtraFootnote, "FOOTNOTE", false},
	{NoStyle, "STYLE", true},
	{DLDiscount, "DLDISCOUNT", false},
	{DLExtra, "DLEXTRA", false},
	{FencedCode, "FENCEDCODE", false},
	{IDAnchor, "IDANCHOR", false},
	{GitHubTags, "GITHUBTAGS", false},
	{NormalListItem, "NORMAL_LISTITEM", false},
	{URLEncodedAnchor, "URLENCODEDANCHOR", false},
	{LaTeX, "LATEX", false},
	{ExplicitList, "EXPLICITLIST", false},
	{AltAsTitle, "ALT_AS_TITLE", false},
}

// byID indexes registry positions by identifier.
var byID = func() (idx [NumFlags]int) {
	for i := range idx {
		idx[i] = -1
	}
	for i, e := range registry {
		idx[e.ID] = i
	}
	return idx
}()

// Registry returns the registered entries in registration order.
// The returned slice is a copy and may be modified freely.
func Registry() []Entry {
	return slices.Clone(registry[:])
}

// Lookup returns the registry entry for id.
func Lookup(id ID) (Entry, bool) {
	if !id.valid() || byID[id] < 0 {
		return Entry{}, false
	}
	return registry[byID[id]], true
}

// Name returns the display name of id, or "" when id is not registered.
func Name(id ID) string {
	e, _ := Lookup(id)
	return e.Name
}

// ByName finds an entry by display name, ignoring case. The stored spelling of
// a negated entry ("NOLINKS", "NO_LINKS") resolves to the same entry.
func ByName(name string) (Entry, bool) {
	e, _, ok := lookupName(name)
	return e, ok
}

// lookupName is ByName that also reports whether the stored spelling of a
// negated entry was used.
func lookupName(name string) (e Entry, stored bool, ok bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return Entry{}, false, false
	}
	for _, e := range registry {
		if e.Name == name {
			return e, false, true
		}
	}
	for _, prefix := range []string{"NO_", "NO"} {
		rest, found := strings.CutPrefix(name, prefix)
		if !found {
			continue
		}
		for _, e := range registry {
			if e.Negated && e.Name == rest {
				return e, true, true
			}
		}
	}
	return Entry{}, false, false
}
