package updates

import (
	"testing"
)

func TestRankDescendingDistance(t *testing.T) {
	// Distances: 5, 20000, 100.
	records := []Record{
		{Name: "small", CurrentVersion: "1.2.3", LatestVersion: "1.2.8"},
		{Name: "huge", CurrentVersion: "1.0.0", LatestVersion: "3.0.0"},
		{Name: "medium", CurrentVersion: "1.2.0", LatestVersion: "1.3.0"},
	}

	Rank(records)

	want := []string{"huge", "medium", "small"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("records[%d] = %q, want %q", i, records[i].Name, name)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	// All four records have identical distance; two are unparseable and
	// sort as distance 0 together with the genuine no-ops.
	records := []Record{
		{Name: "a", CurrentVersion: "weird", LatestVersion: "1.0.0"},
		{Name: "b", CurrentVersion: "1.0.0", LatestVersion: "also-weird"},
		{Name: "c", CurrentVersion: "2.0.0", LatestVersion: "2.0.0"},
		{Name: "d", CurrentVersion: "bad", LatestVersion: "worse"},
	}

	Rank(records)

	want := []string{"a", "b", "c", "d"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("records[%d] = %q, want %q (ties must keep input order)", i, records[i].Name, name)
		}
	}
}

func TestPartition(t *testing.T) {
	records := []Record{
		{Name: "react"},
		{Name: "left-pad"},
		{Name: "typescript"},
		{Name: "lodash"},
	}
	priority := NewPrioritySet([]string{"react", "typescript", "not-present"})

	prioritized, others := Partition(records, priority)

	if got := len(prioritized) + len(others); got != len(records) {
		t.Fatalf("partition lost records: %d + %d != %d", len(prioritized), len(others), len(records))
	}

	seen := map[string]int{}
	for _, r := range prioritized {
		seen[r.Name]++
	}
	for _, r := range others {
		seen[r.Name]++
	}
	for _, r := range records {
		if seen[r.Name] != 1 {
			t.Errorf("record %q appears %d times across partitions, want exactly 1", r.Name, seen[r.Name])
		}
	}

	wantPriority := []string{"react", "typescript"}
	if len(prioritized) != len(wantPriority) {
		t.Fatalf("priority partition = %d records, want %d", len(prioritized), len(wantPriority))
	}
	for i, name := range wantPriority {
		if prioritized[i].Name != name {
			t.Errorf("prioritized[%d] = %q, want %q", i, prioritized[i].Name, name)
		}
	}

	wantOthers := []string{"left-pad", "lodash"}
	for i, name := range wantOthers {
		if others[i].Name != name {
			t.Errorf("others[%d] = %q, want %q", i, others[i].Name, name)
		}
	}
}

func TestPartitionCaseSensitive(t *testing.T) {
	records := []Record{{Name: "React"}}
	prioritized, others := Partition(records, NewPrioritySet([]string{"react"}))

	if len(prioritized) != 0 || len(others) != 1 {
		t.Errorf("membership must be case-sensitive: got %d priority, %d other", len(prioritized), len(others))
	}
}

func TestPartitionEmpty(t *testing.T) {
	prioritized, others := Partition(nil, NewPrioritySet(nil))
	if len(prioritized) != 0 || len(others) != 0 {
		t.Errorf("empty input must produce empty partitions")
	}
}
