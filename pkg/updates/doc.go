// Package updates implements depscout's update detection engine: version
// normalization and distance, concurrent registry checking, documentation
// URL resolution, and priority-aware ranking of the results.
//
// The entry point is [Detector.Detect], which turns a name -> current
// version map into [Record] values. [Rank] orders records by magnitude of
// the version change and [Partition] splits them against a [PrioritySet].
package updates
