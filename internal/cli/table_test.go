package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mhuels/depscout/pkg/report"
	"github.com/mhuels/depscout/pkg/updates"
)

func TestUpdateTable(t *testing.T) {
	out := updateTable([]report.Update{
		{Name: "react", CurrentVersion: "17.0.2", LatestVersion: "18.2.0", DocURL: "https://github.com/facebook/react/releases"},
	})

	for _, want := range []string{"Package", "Current", "Latest", "Release notes", "react", "17.0.2", "18.2.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderReportSections(t *testing.T) {
	rep := report.New("lockfile",
		[]updates.Record{{Name: "react", CurrentVersion: "17.0.2", LatestVersion: "18.2.0", DocURL: "https://react.dev/"}},
		[]updates.Record{{Name: "express", CurrentVersion: "4.17.1", LatestVersion: "4.18.2", DocURL: "https://expressjs.com/"}},
	)

	var buf bytes.Buffer
	renderReport(&buf, rep)
	out := buf.String()

	prio := strings.Index(out, "Priority updates")
	other := strings.Index(out, "Other updates")
	if prio < 0 || other < 0 {
		t.Fatalf("missing section headers:\n%s", out)
	}
	if prio > other {
		t.Error("priority section must come before other updates")
	}
	if !strings.Contains(out, "react") || !strings.Contains(out, "express") {
		t.Errorf("rows missing from output:\n%s", out)
	}
}
