// SPDX-License-Identifier: MPL-2.0

package mkdflag

import (
	"errors"
	"fmt"
)

// Flag identifiers. Values are part of the public API and are never renumbered;
// new identifiers are only ever appended before NumFlags.
const (
	NoLinks ID = iota
	NoImage
	NoPants
	NoHTML
	TagText
	NoExt
	CDATA
	NoSuperscript
	Strict
	NoTables
	NoStrikethrough
	TOC
	Compat1
	Autolink
	SafeLink
	NoHeader
	TabStop
	NoDivQuote
	NoAlphaList
	ExtraFootnote
	NoStyle
	DLDiscount
	DLExtra
	FencedCode
	IDAnchor
	GitHubTags
	NormalListItem
	URLEncodedAnchor
	LaTeX
	ExplicitList
	AltAsTitle

	// NumFlags is the number of defined identifiers.
	NumFlags int = iota
)

// ErrInvalidID is the sentinel error wrapped by InvalidIDError.
var ErrInvalidID = errors.New("invalid flag id")

type (
	// ID identifies a single compiler flag.
	ID uint8

	// InvalidIDError is returned when an ID is outside the defined enumeration.
	// It wraps ErrInvalidID for errors.Is() compatibility.
	InvalidIDError struct {
		Value ID
	}
)

// Error implements the error interface.
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid flag id %d (must be below %d)", e.Value, NumFlags)
}

// Unwrap returns ErrInvalidID so callers can use errors.Is for programmatic detection.
func (e *InvalidIDError) Unwrap() error { return ErrInvalidID }

// Validate returns an error if the ID is not a defined identifier.
func (id ID) Validate() error {
	if !id.valid() {
		return &InvalidIDError{Value: id}
	}
	return nil
}

func (id ID) valid() bool { return int(id) < NumFlags }

// String returns the identifier's registry name, prefixed with "NO" for
// negated entries so the stored meaning stays readable ("NOLINKS").
func (id ID) String() string {
	e, ok := Lookup(id)
	if !ok {
		return fmt.Sprintf("ID(%d)", uint8(id))
	}
	if e.Negated {
		return "NO" + e.Name
	}
	return e.Name
}
