// SPDX-License-Identifier: MPL-2.0

package mkdflag

// SetNum sets the flag whose identifier value is n. Out-of-range numbers are ignored.
func (s *Set) SetNum(n uint) {
	if n < uint(NumFlags) {
		s.Set(ID(n))
	}
}

// ClearNum clears the flag whose identifier value is n. Out-of-range numbers are ignored.
func (s *Set) ClearNum(n uint) {
	if n < uint(NumFlags) {
		s.Clear(ID(n))
	}
}

// SetBitmap sets every flag whose identifier value is a set bit position in
// bits. Flags already set stay set.
func (s *Set) SetBitmap(bits uint64) {
	for n := uint(0); n < uint(NumFlags); n++ {
		if bits&(1<<n) != 0 {
			s.SetNum(n)
		}
	}
}

// Bitmap packs s into an integer where bit i holds identifier i.
func (s *Set) Bitmap() uint64 {
	var bits uint64
	for _, id := range s.Enabled() {
		bits |= 1 << uint(id)
	}
	return bits
}
