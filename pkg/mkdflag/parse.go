// SPDX-License-Identifier: MPL-2.0

package mkdflag

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownFlag is the sentinel error wrapped by UnknownFlagError.
var ErrUnknownFlag = errors.New("unknown flag")

// UnknownFlagError is returned when a flag list names no registered flag.
// It wraps ErrUnknownFlag for errors.Is() compatibility.
type UnknownFlagError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag %q", e.Name)
}

// Unwrap returns ErrUnknownFlag so callers can use errors.Is for programmatic detection.
func (e *UnknownFlagError) Unwrap() error { return ErrUnknownFlag }

// Parse applies a flag list to s. Tokens are separated by commas or
// whitespace; "NAME" and "+NAME" enable the feature, "-NAME" and "!NAME"
// disable it. Polarity is resolved through the registry, so "-links" and
// "+nolinks" both set NoLinks. Tokens are applied left to right and s is
// left untouched when any token is unknown.
func Parse(s *Set, list string) error {
	type op struct {
		id     ID
		stored bool
	}

	var ops []op
	for _, tok := range strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}) {
		enable := true
		name := tok
		switch tok[0] {
		case '+':
			name = tok[1:]
		case '-', '!':
			enable = false
			name = tok[1:]
		}
		e, storedSpelling, ok := lookupName(name)
		if !ok {
			return &UnknownFlagError{Name: tok}
		}
		ops = append(ops, op{id: e.ID, stored: enable != (e.Negated != storedSpelling)})
	}

	for _, o := range ops {
		if o.stored {
			s.Set(o.id)
		} else {
			s.Clear(o.id)
		}
	}
	return nil
}

// ParseString returns New() with list applied.
func ParseString(list string) (*Set, error) {
	s := New()
	if err := Parse(s, list); err != nil {
		return nil, err
	}
	return s, nil
}
