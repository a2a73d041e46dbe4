// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue/errors"
)

// FormatError rewrites a CUE error as "<file>: <path>: <message>", one line
// per underlying error. Non-CUE errors are wrapped with the file name.
func FormatError(err error, filePath string) error {
	if err == nil {
		return nil
	}

	cueErrs := errors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filePath, err)
	}

	lines := make([]string, 0, len(cueErrs))
	for _, e := range cueErrs {
		path := formatPath(errors.Path(e))
		msg := e.Error()
		if path != "" {
			// CUE often repeats the path at the start of the message.
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, path), ":"))
			msg = path + ": " + msg
		}
		lines = append(lines, msg)
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filePath, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filePath, strings.Join(lines, "\n  "))
}

// formatPath joins a CUE path, writing numeric elements as indices:
// ["profile", "flags", "2"] becomes "profile.flags[2]".
func formatPath(path []string) string {
	var b strings.Builder
	for i, part := range path {
		switch {
		case i > 0 && isIndex(part):
			b.WriteString("[" + part + "]")
		case i > 0:
			b.WriteString("." + part)
		default:
			b.WriteString(part)
		}
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// CheckFileSize returns an error when data is larger than maxSize bytes.
func CheckFileSize(data []byte, maxSize int64, filename string) error {
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", filename, len(data), maxSize)
	}
	return nil
}
