// SPDX-License-Identifier: MPL-2.0

package flagreport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mkdflags/mkdflags/pkg/mkdflag"
)

const (
	// ModePlain writes one line of space-separated names.
	ModePlain Mode = iota
	// ModeHTML writes an HTML table with two entries per row.
	ModeHTML
	// ModeMarkdown writes a GitHub-flavored Markdown table with two entries per row.
	ModeMarkdown
)

// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
var ErrInvalidMode = errors.New("invalid report mode")

// Default reports against the built-in registry.
var Default = New(mkdflag.Registry())

type (
	// Mode selects the output format.
	Mode uint8

	// InvalidModeError is returned when a report mode is not recognized.
	// It wraps ErrInvalidMode for errors.Is() compatibility.
	InvalidModeError struct {
		Value string
	}

	// Reporter renders flag sets against a fixed list of registry entries.
	Reporter struct {
		entries []mkdflag.Entry
	}

	// item is one rendered entry.
	item struct {
		name    string
		enabled bool
	}
)

// Error implements the error interface.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid report mode %q (valid: plain, html, markdown)", e.Value)
}

// Unwrap returns ErrInvalidMode so callers can use errors.Is for programmatic detection.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// ParseMode parses "plain", "html" or "markdown".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "plain", "":
		return ModePlain, nil
	case "html":
		return ModeHTML, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	default:
		return 0, &InvalidModeError{Value: s}
	}
}

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModePlain:
		return "plain"
	case ModeHTML:
		return "html"
	case ModeMarkdown:
		return "markdown"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// New returns a Reporter over entries, which are reported in the given order.
func New(entries []mkdflag.Entry) *Reporter {
	return &Reporter{entries: append([]mkdflag.Entry(nil), entries...)}
}

// Render writes the report of fs to w. A nil fs reports every stored bit clear.
func (r *Reporter) Render(w io.Writer, fs *mkdflag.Set, mode Mode) error {
	items := make([]item, len(r.entries))
	for i, e := range r.entries {
		items[i] = item{name: e.Name, enabled: fs.IsSet(e.ID) != e.Negated}
	}

	bw := bufio.NewWriter(w)
	switch mode {
	case ModePlain:
		writePlain(bw, items)
	case ModeHTML:
		writeHTML(bw, items)
	case ModeMarkdown:
		writeMarkdown(bw, items)
	default:
		return &InvalidModeError{Value: mode.String()}
	}
	return bw.Flush()
}

// String returns the report of fs as a string.
func (r *Reporter) String(fs *mkdflag.Set, mode Mode) string {
	var sb strings.Builder
	_ = r.Render(&sb, fs, mode) // strings.Builder never fails; mode errors yield ""
	return sb.String()
}

// Render writes the report of fs using the Default reporter.
func Render(w io.Writer, fs *mkdflag.Set, mode Mode) error {
	return Default.Render(w, fs, mode)
}

// String returns the report of fs using the Default reporter.
func String(fs *mkdflag.Set, mode Mode) string {
	return Default.String(fs, mode)
}

func writePlain(w *bufio.Writer, items []item) {
	for i, it := range items {
		if i > 0 {
			w.WriteByte(' ')
		}
		if !it.enabled {
			w.WriteByte('!')
		}
		w.WriteString(it.name)
	}
	w.WriteByte('\n')
}

func writeHTML(w *bufio.Writer, items []item) {
	w.WriteString("<table class=\"mkd_flags_are\">\n")
	for i, it := range items {
		if i%2 == 0 {
			w.WriteString(" <tr>")
		}
		w.WriteString("<td>")
		if it.enabled {
			w.WriteString(it.name)
		} else {
			fmt.Fprintf(w, "<s>%s</s>", it.name)
		}
		w.WriteString("</td>")
		if i%2 == 1 || i == len(items)-1 {
			w.WriteString("</tr>\n")
		}
	}
	w.WriteString("</table>\n")
}

func writeMarkdown(w *bufio.Writer, items []item) {
	w.WriteString("| Flags | |\n| --- | --- |\n")
	for i := 0; i < len(items); i += 2 {
		w.WriteString("| ")
		w.WriteString(markdownCell(items[i]))
		w.WriteString(" | ")
		if i+1 < len(items) {
			w.WriteString(markdownCell(items[i+1]))
		}
		w.WriteString(" |\n")
	}
}

func markdownCell(it item) string {
	// Registry names contain underscores; escape them so they are not read as emphasis.
	name := strings.ReplaceAll(it.name, "_", `\_`)
	if it.enabled {
		return name
	}
	return "~~" + name + "~~"
}
