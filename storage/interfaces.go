package storage

import "github.com/sp0x/scenetime/indexer/search"

// ReleaseStorage keeps the releases found while polling, one record per download link.
type ReleaseStorage interface {
	// Add stores a release, returns true if it's the first time the link is seen.
	Add(release *search.Release) (bool, error)
	// Find a release by its link, nil if it's not stored.
	Find(link string) (*search.ReleaseRecord, error)
	// GetLatest returns up to count releases, newest first.
	GetLatest(count int) []search.ReleaseRecord
	Size() int64
	Truncate() error
	Close() error
}
