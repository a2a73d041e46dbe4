// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	ConfigInvalidId
	UnknownFlagId
	InvalidBitmaskId
	InvalidLegacyModeId
	InvalidReportFormatId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to lookup the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the issue page with the named glamour style ("dark", "light", "auto").
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

mkdflags could not read its configuration file.

## Configuration file locations (first match wins):
1. The file passed with ` + "`--config`" + `
2. ~/.config/mkdflags/config.cue (or config.toml)
3. config.cue or config.toml in the current directory

## Things you can try:
- Create a default configuration:
~~~
$ mkdflags config init
~~~
- Print the configuration mkdflags would use:
~~~
$ mkdflags config dump
~~~`,
	}

	configInvalidIssue = &Issue{
		id: ConfigInvalidId,
		mdMsg: `
# Invalid configuration!

The configuration file parsed, but one of its values is not allowed.

## Allowed values:
- ` + "`profile.legacy_mode`" + `: "v2" or "native"
- ` + "`report.format`" + `: "plain", "html", "markdown" or "pretty"
- ` + "`ui.color_scheme`" + `: "auto", "dark" or "light"
- ` + "`profile.flags`" + `: names listed by ` + "`mkdflags list`",
	}

	unknownFlagIssue = &Issue{
		id: UnknownFlagId,
		mdMsg: `
# Unknown flag name!

Flag lists are comma or space separated names, each optionally prefixed:

| Token | Meaning |
| --- | --- |
| ` + "`toc`, `+toc`" + ` | enable the feature |
| ` + "`-links`, `!links`" + ` | disable the feature |
| ` + "`+nolinks`" + ` | set the stored NOLINKS bit |

Run ` + "`mkdflags list`" + ` to see every registered name.`,
	}

	invalidBitmaskIssue = &Issue{
		id: InvalidBitmaskId,
		mdMsg: `
# Invalid legacy bitmask!

Legacy masks are unsigned 32-bit integers. Decimal, hex (` + "`0x10`" + `),
octal (` + "`0o20`" + `) and binary (` + "`0b10000`" + `) forms are accepted.

~~~
$ mkdflags translate 0x02001000
~~~`,
	}

	invalidLegacyModeIssue = &Issue{
		id: InvalidLegacyModeId,
		mdMsg: `
# Invalid legacy mode!

- **v2** reads the mask with the historical v2 bit layout.
- **native** reads bit *i* as flag number *i*.`,
	}

	invalidReportFormatIssue = &Issue{
		id: InvalidReportFormatId,
		mdMsg: `
# Invalid report format!

Choose one of **plain**, **html**, **markdown** or **pretty**.`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		configInvalidIssue.Id():       configInvalidIssue,
		unknownFlagIssue.Id():         unknownFlagIssue,
		invalidBitmaskIssue.Id():      invalidBitmaskIssue,
		invalidLegacyModeIssue.Id():   invalidLegacyModeIssue,
		invalidReportFormatIssue.Id(): invalidReportFormatIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}
