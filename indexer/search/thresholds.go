package search

import "sort"

// Thresholds are the minimum swarm values a release needs to be reported.
type Thresholds struct {
	MinSeeders  int
	MinLeechers int
}

// Allows checks if the release is healthy enough.
func (t Thresholds) Allows(r *Release) bool {
	return r.Seeders >= t.MinSeeders && r.Leechers >= t.MinLeechers
}

// SortBySeeders orders releases by seeders, most seeded first.
// Releases with equal seeders keep their order.
func SortBySeeders(releases []Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		return releases[i].Seeders > releases[j].Seeders
	})
}
