// SPDX-License-Identifier: MPL-2.0

package legacy

import (
	"errors"
	"fmt"

	"github.com/mkdflags/mkdflags/pkg/mkdflag"
)

const (
	// ModeV2 reads the integer as a v2 flag word and translates it through the v2 bit table.
	ModeV2 Mode = iota
	// ModeNative reads the integer as a current bitmap where bit i is flag i.
	// Builds without the v2 interface pass integers straight through this way.
	ModeNative
)

// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
var ErrInvalidMode = errors.New("invalid legacy mode")

type (
	// Mode selects how a Translator reads its input.
	Mode uint8

	// InvalidModeError is returned when a Mode value is not recognized.
	// It wraps ErrInvalidMode for errors.Is() compatibility.
	InvalidModeError struct {
		Value Mode
	}

	// Translator converts integer flag words into flag sets. Its mode is fixed
	// at construction; a Translator holds no other state and is safe for
	// concurrent use.
	Translator struct {
		mode Mode
	}

	// Step records what translation did with one set bit.
	Step struct {
		Pos    uint
		Bit    Bit
		Action Action
	}
)

// Error implements the error interface.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid legacy mode %d (valid: v2, native)", e.Value)
}

// Unwrap returns ErrInvalidMode so callers can use errors.Is for programmatic detection.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// Validate returns an error if the Mode is not recognized.
func (m Mode) Validate() error {
	switch m {
	case ModeV2, ModeNative:
		return nil
	default:
		return &InvalidModeError{Value: m}
	}
}

// String returns "v2" or "native".
func (m Mode) String() string {
	switch m {
	case ModeV2:
		return "v2"
	case ModeNative:
		return "native"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses "v2" or "native". The empty string selects ModeV2.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "v2":
		return ModeV2, nil
	case "native":
		return ModeNative, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: v2, native)", ErrInvalidMode, s)
	}
}

// NewTranslator creates a Translator for mode.
func NewTranslator(mode Mode) (*Translator, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	return &Translator{mode: mode}, nil
}

// Mode returns the mode fixed at construction. A nil Translator reads v2
// masks.
func (t *Translator) Mode() Mode {
	if t == nil {
		return ModeV2
	}
	return t.mode
}

// Translate converts mask into a new flag set.
//
// In ModeV2 the result starts from mkdflag.New, so DLDiscount is on unless
// NoDLDiscount is in mask, and every set bit applies its ActionAt action. In
// ModeNative the result starts blank and bit i sets flag i.
func (t *Translator) Translate(mask uint32) *mkdflag.Set {
	if t.Mode() == ModeNative {
		s := mkdflag.Blank()
		s.SetBitmap(uint64(mask))
		return s
	}

	s := mkdflag.New()
	for _, step := range t.Explain(mask) {
		step.Action.Apply(s)
	}
	return s
}

// Explain lists, in bit order, each set bit of mask and the action it maps to.
// Bits without an action are included with OpNone.
func (t *Translator) Explain(mask uint32) []Step {
	var steps []Step
	for pos := uint(0); pos < 32; pos++ {
		bit := BitAt(pos)
		if Bit(mask)&bit == 0 {
			continue
		}
		var a Action
		switch t.Mode() {
		case ModeNative:
			if pos < uint(mkdflag.NumFlags) {
				a = Action{Op: OpSet, Flag: mkdflag.ID(pos)}
			}
		default:
			a = table[pos]
		}
		steps = append(steps, Step{Pos: pos, Bit: bit, Action: a})
	}
	return steps
}

var v2 = &Translator{mode: ModeV2}

// Translate converts a v2 flag word into a flag set.
func Translate(mask uint32) *mkdflag.Set {
	return v2.Translate(mask)
}

// Encode converts s back into a v2 flag word. Set flags that have no v2 bit
// are returned in lost. A clear DLDiscount encodes as NoDLDiscount; aliased
// flags use their lowest bit. Translate(Encode(s)) equals s apart from lost.
func Encode(s *mkdflag.Set) (mask uint32, lost []mkdflag.ID) {
	if s == nil {
		s = mkdflag.Blank()
	}

	var encoded [mkdflag.NumFlags]bool
	for pos := uint(0); pos < 32; pos++ {
		a := table[pos]
		if a.Op == OpNone || encoded[a.Flag] {
			continue
		}
		if (a.Op == OpSet) == s.IsSet(a.Flag) {
			mask |= uint32(BitAt(pos))
		}
		encoded[a.Flag] = true
	}

	for _, id := range s.Enabled() {
		if !encoded[id] {
			lost = append(lost, id)
		}
	}
	return mask, lost
}
