// SPDX-License-Identifier: MPL-2.0

package legacy

import "fmt"

// v2 flag bits.
const (
	NoLinks          Bit = 1 << 0
	NoImage          Bit = 1 << 1
	NoPants          Bit = 1 << 2
	NoHTML           Bit = 1 << 3
	Strict           Bit = 1 << 4
	TagText          Bit = 1 << 5
	NoExt            Bit = 1 << 6
	CDATA            Bit = 1 << 7
	NoSuperscript    Bit = 1 << 8
	Strict2          Bit = 1 << 9
	NoTables         Bit = 1 << 10
	NoStrikethrough  Bit = 1 << 11
	TOC              Bit = 1 << 12
	Compat1          Bit = 1 << 13
	Autolink         Bit = 1 << 14
	SafeLink         Bit = 1 << 15
	NoHeader         Bit = 1 << 16
	TabStop          Bit = 1 << 17
	NoDivQuote       Bit = 1 << 18
	NoAlphaList      Bit = 1 << 19
	NoDList          Bit = 1 << 20
	ExtraFootnote    Bit = 1 << 21
	NoStyle          Bit = 1 << 22
	NoDLDiscount     Bit = 1 << 23
	DLExtra          Bit = 1 << 24
	FencedCode       Bit = 1 << 25
	IDAnchor         Bit = 1 << 26
	GitHubTags       Bit = 1 << 27
	URLEncodedAnchor Bit = 1 << 28
	LaTeX            Bit = 1 << 30
	ExplicitList     Bit = 1 << 31
)

// Bit is a single v2 flag bit.
type Bit uint32

// names holds the v2 spelling of each bit position; "" marks a position that
// was never assigned.
var names = [32]string{
	0:  "NOLINKS",
	1:  "NOIMAGE",
	2:  "NOPANTS",
	3:  "NOHTML",
	4:  "STRICT",
	5:  "TAGTEXT",
	6:  "NO_EXT",
	7:  "CDATA",
	8:  "NOSUPERSCRIPT",
	9:  "STRICT2",
	10: "NOTABLES",
	11: "NOSTRIKETHROUGH",
	12: "TOC",
	13: "1_COMPAT",
	14: "AUTOLINK",
	15: "SAFELINK",
	16: "NOHEADER",
	17: "TABSTOP",
	18: "NODIVQUOTE",
	19: "NOALPHALIST",
	20: "NODLIST",
	21: "EXTRA_FOOTNOTE",
	22: "NOSTYLE",
	23: "NODLDISCOUNT",
	24: "DLEXTRA",
	25: "FENCEDCODE",
	26: "IDANCHOR",
	27: "GITHUBTAGS",
	28: "URLENCODEDANCHOR",
	30: "LATEX",
	31: "EXPLICITLIST",
}

// BitAt returns the bit at position pos (0-31).
func BitAt(pos uint) Bit { return Bit(1) << (pos & 31) }

// Pos returns the position of a single-bit value.
func (b Bit) Pos() uint {
	for pos := uint(0); pos < 32; pos++ {
		if b == BitAt(pos) {
			return pos
		}
	}
	return 32
}

// String returns the v2 name of b, or its hex value for unnamed or compound bits.
func (b Bit) String() string {
	if pos := b.Pos(); pos < 32 && names[pos] != "" {
		return names[pos]
	}
	return fmt.Sprintf("%#010x", uint32(b))
}
