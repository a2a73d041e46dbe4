// SPDX-License-Identifier: MPL-2.0

package legacy

import (
	"github.com/mkdflags/mkdflags/pkg/mkdflag"
)

const (
	// OpNone ignores the bit.
	OpNone Op = iota
	// OpSet sets the destination flag.
	OpSet
	// OpClear clears the destination flag.
	OpClear
)

type (
	// Op is what translating a set bit does to its destination flag.
	Op uint8

	// Action is the translation of one v2 bit position.
	Action struct {
		Op   Op
		Flag mkdflag.ID
	}
)

func setFlag(id mkdflag.ID) Action { return Action{Op: OpSet, Flag: id} }
func clearFlag(id mkdflag.ID) Action { return Action{Op: OpClear, Flag: id} }

// table maps each v2 bit position to its action. Positions 20 (NODLIST) and
// 29 are retired and translate to nothing.
var table = [32]Action{
	0:  setFlag(mkdflag.NoLinks),
	1:  setFlag(mkdflag.NoImage),
	2:  setFlag(mkdflag.NoPants),
	3:  setFlag(mkdflag.NoHTML),
	4:  setFlag(mkdflag.Strict),
	5:  setFlag(mkdflag.TagText),
	6:  setFlag(mkdflag.NoExt),
	7:  setFlag(mkdflag.CDATA),
	8:  setFlag(mkdflag.NoSuperscript),
	9:  setFlag(mkdflag.Strict),
	10: setFlag(mkdflag.NoTables),
	11: setFlag(mkdflag.NoStrikethrough),
	12: setFlag(mkdflag.TOC),
	13: setFlag(mkdflag.Compat1),
	14: setFlag(mkdflag.Autolink),
	15: setFlag(mkdflag.SafeLink),
	16: setFlag(mkdflag.NoHeader),
	17: setFlag(mkdflag.TabStop),
	18: setFlag(mkdflag.NoDivQuote),
	19: setFlag(mkdflag.NoAlphaList),
	21: setFlag(mkdflag.ExtraFootnote),
	22: setFlag(mkdflag.NoStyle),
	23: clearFlag(mkdflag.DLDiscount),
	24: setFlag(mkdflag.DLExtra),
	25: setFlag(mkdflag.FencedCode),
	26: setFlag(mkdflag.IDAnchor),
	27: setFlag(mkdflag.GitHubTags),
	28: setFlag(mkdflag.URLEncodedAnchor),
	30: setFlag(mkdflag.LaTeX),
	31: setFlag(mkdflag.ExplicitList),
}

// Table returns a copy of the v2 bit table, indexed by bit position.
func Table() [32]Action { return table }

// ActionAt returns the action for bit position pos, or OpNone past bit 31.
func ActionAt(pos uint) Action {
	if pos >= uint(len(table)) {
		return Action{}
	}
	return table[pos]
}

// Apply performs a on s.
func (a Action) Apply(s *mkdflag.Set) {
	switch a.Op {
	case OpSet:
		s.Set(a.Flag)
	case OpClear:
		s.Clear(a.Flag)
	}
}

// String describes the action, e.g. "set TOC" or "ignore".
func (a Action) String() string {
	switch a.Op {
	case OpSet:
		return "set " + a.Flag.String()
	case OpClear:
		return "clear " + a.Flag.String()
	default:
		return "ignore"
	}
}
