// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestIdConstants(t *testing.T) {
	t.Parallel()

	if ConfigLoadFailedId != 1 {
		t.Errorf("ConfigLoadFailedId = %d, want 1", ConfigLoadFailedId)
	}

	vals := Values()
	if len(vals) != int(InvalidReportFormatId) {
		t.Fatalf("len(Values()) = %d, want %d", len(vals), InvalidReportFormatId)
	}
	for i, v := range vals {
		if v.Id() != Id(i+1) {
			t.Errorf("Values()[%d].Id() = %d, want %d", i, v.Id(), i+1)
		}
		if strings.TrimSpace(string(v.MarkdownMsg())) == "" {
			t.Errorf("issue %d has an empty message", v.Id())
		}
	}
}

func TestGetUnknown(t *testing.T) {
	t.Parallel()

	if Get(Id(999)) != nil {
		t.Error("Get(999) returned an issue")
	}
}

func TestIssueRender(t *testing.T) {
	t.Parallel()

	out, err := Get(UnknownFlagId).Render("notty")
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(out, "Unknown flag name") {
		t.Errorf("rendered output missing title:\n%s", out)
	}
}
