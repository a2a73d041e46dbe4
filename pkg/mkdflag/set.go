// SPDX-License-Identifier: MPL-2.0

package mkdflag

// Set holds one boolean per flag identifier. The zero value has every flag
// clear; use New for a set carrying the documented defaults.
type Set struct {
	bits [NumFlags]bool
}

// New returns a set with every flag clear except DLDiscount, the one flag
// that is on by default.
func New() *Set {
	s := Blank()
	s.Set(DLDiscount)
	return s
}

// Blank returns a set with every flag clear and no defaults applied.
func Blank() *Set {
	return &Set{}
}

// IsSet reports whether id is stored as set. A nil set has no flags set.
func (s *Set) IsSet(id ID) bool {
	if s == nil || !id.valid() {
		return false
	}
	return s.bits[id]
}

// Set stores id as set.
func (s *Set) Set(id ID) {
	if s == nil || !id.valid() {
		return
	}
	s.bits[id] = true
}

// Clear stores id as clear.
func (s *Set) Clear(id ID) {
	if s == nil || !id.valid() {
		return
	}
	s.bits[id] = false
}

// Copy returns an independent duplicate of s. Copying a nil set yields New().
func (s *Set) Copy() *Set {
	if s == nil {
		return New()
	}
	c := *s
	return &c
}

// Merge sets in s every flag that is set in src. Flags already set in s are
// never cleared.
func (s *Set) Merge(src *Set) {
	if s == nil || src == nil {
		return
	}
	for i, v := range src.bits {
		if v {
			s.bits[i] = true
		}
	}
}

// Any reports whether at least one flag is set.
func (s *Set) Any() bool {
	if s == nil {
		return false
	}
	for _, v := range s.bits {
		if v {
			return true
		}
	}
	return false
}

// Equal reports whether s and o store the same value for every identifier.
// A nil set is only equal to another nil set.
func (s *Set) Equal(o *Set) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.bits == o.bits
}

// Enabled returns the identifiers stored as set, in ascending order.
func (s *Set) Enabled() []ID {
	if s == nil {
		return nil
	}
	var ids []ID
	for i, v := range s.bits {
		if v {
			ids = append(ids, ID(i))
		}
	}
	return ids
}

// Feature reports whether the human-facing feature named by id's registry
// entry is enabled, which inverts the stored bit for negated entries.
func (s *Set) Feature(id ID) bool {
	e, ok := Lookup(id)
	if !ok {
		return false
	}
	return s.IsSet(id) != e.Negated
}

// String returns the space-separated list of registry names, with disabled
// features prefixed by "!". It is the plain flagreport output without the
// trailing newline.
func (s *Set) String() string {
	var b []byte
	for i, e := range registry {
		if i > 0 {
			b = append(b, ' ')
		}
		if !s.Feature(e.ID) {
			b = append(b, '!')
		}
		b = append(b, e.Name...)
	}
	return string(b)
}
