// Package report shapes ranked update records into the structured document
// consumed by renderers and emitted by --json and the serve endpoint.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/mhuels/depscout/pkg/updates"
)

// Update is the wire form of one update record.
type Update struct {
	Name           string `json:"name"`
	CurrentVersion string `json:"currentVersion"`
	LatestVersion  string `json:"latestVersion"`
	DocURL         string `json:"docUrl"`
}

// Report is the structured output of one run: two disjoint arrays of
// updates, priority first, each already in ranked order.
type Report struct {
	RunID           string    `json:"runId"`
	GeneratedAt     time.Time `json:"generatedAt"`
	ResolutionMode  string    `json:"resolutionMode"`
	PriorityUpdates []Update  `json:"priorityUpdates"`
	OtherUpdates    []Update  `json:"otherUpdates"`
}

// New builds a Report from partitioned records. The arrays are always
// non-nil so an empty run serializes as [] rather than null.
func New(mode string, priority, others []updates.Record) *Report {
	return &Report{
		RunID:           uuid.NewString(),
		GeneratedAt:     time.Now().UTC(),
		ResolutionMode:  mode,
		PriorityUpdates: toUpdates(priority),
		OtherUpdates:    toUpdates(others),
	}
}

// Total returns the number of updates across both partitions.
func (r *Report) Total() int {
	return len(r.PriorityUpdates) + len(r.OtherUpdates)
}

// WriteJSON writes the report to w as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func toUpdates(records []updates.Record) []Update {
	out := make([]Update, 0, len(records))
	for _, rec := range records {
		out = append(out, Update{
			Name:           rec.Name,
			CurrentVersion: rec.CurrentVersion,
			LatestVersion:  rec.LatestVersion,
			DocURL:         rec.DocURL,
		})
	}
	return out
}
