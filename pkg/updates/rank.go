package updates

import "sort"

// PrioritySet is a set of package names used to partition ranked records.
// Membership is a case-sensitive exact match on the package name; the set
// carries no other semantics.
type PrioritySet map[string]struct{}

// NewPrioritySet builds a PrioritySet from a list of package names.
func NewPrioritySet(names []string) PrioritySet {
	set := make(PrioritySet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is in the set.
func (s PrioritySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Rank sorts records in place by descending version distance, so the
// largest version jumps surface first. The sort is stable: records at equal
// distance keep their relative input order.
func Rank(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return Distance(records[i].CurrentVersion, records[i].LatestVersion) >
			Distance(records[j].CurrentVersion, records[j].LatestVersion)
	})
}

// Partition splits records into two disjoint ordered lists: those whose
// name is in priority, and the remainder. Both preserve the input order,
// and every record lands in exactly one list.
func Partition(records []Record, priority PrioritySet) (prioritized, others []Record) {
	for _, r := range records {
		if priority.Contains(r.Name) {
			prioritized = append(prioritized, r)
		} else {
			others = append(others, r)
		}
	}
	return prioritized, others
}
