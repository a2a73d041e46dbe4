// SPDX-License-Identifier: MPL-2.0

// Package flagreport renders a flag set as a diagnostic table.
//
// Every registry entry is reported in registration order under its
// human-facing name. An entry whose feature is disabled (its stored bit
// inverted by the entry's polarity) is decorated: "!NAME" in plain output,
// <s>NAME</s> in HTML, ~~NAME~~ in Markdown.
package flagreport
