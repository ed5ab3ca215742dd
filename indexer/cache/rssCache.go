package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/indexer/search"
)

var errNoEntries = errors.New("the poll returned no entries")

//go:generate mockgen -source rssCache.go -destination=mocks/rssCache.go -package=mocks
type Searcher interface {
	Name() string
	Search(req *search.Request) []search.Release
	MinPollInterval() time.Duration
}

type ReleaseStore interface {
	// Add stores the release, returning true if it wasn't stored before.
	Add(release *search.Release) (bool, error)
	GetLatest(count int) []search.ReleaseRecord
}

// PollResult is the outcome of an update.
type PollResult struct {
	// Skipped is set when the poll wasn't allowed yet.
	Skipped bool
	Found   int
	New     []search.Release
}

// RSSCache keeps the releases found by polling the provider's newest listing.
type RSSCache struct {
	searcher Searcher
	store    ReleaseStore
	gate     *PollGate
	logger   logrus.FieldLogger
}

func NewRSSCache(searcher Searcher, store ReleaseStore) *RSSCache {
	return &RSSCache{
		searcher: searcher,
		store:    store,
		gate:     NewPollGate(searcher.MinPollInterval()),
		logger:   logrus.WithField("site", searcher.Name()),
	}
}

func (c *RSSCache) Gate() *PollGate {
	return c.gate
}

// Update polls the provider if it's allowed and stores what was found.
// A poll that finds nothing doesn't count, so the next update may retry right away.
// A release that can't be stored is skipped, the poll only fails if nothing could be stored.
func (c *RSSCache) Update() (*PollResult, error) {
	result := &PollResult{}
	ran, err := c.gate.Run(func() error {
		releases := c.searcher.Search(search.NewRSSRequest())
		if len(releases) == 0 {
			return errNoEntries
		}
		result.Found = len(releases)
		var storeErr error
		stored := 0
		for i := range releases {
			isNew, err := c.store.Add(&releases[i])
			if err != nil {
				storeErr = fmt.Errorf("couldn't store release %s: %w", releases[i].Title, err)
				c.logger.WithError(err).Warnf("Couldn't store release %s", releases[i].Title)
				continue
			}
			stored++
			if isNew {
				result.New = append(result.New, releases[i])
			}
		}
		// Releases that failed are stored again by the next poll.
		if stored == 0 {
			return storeErr
		}
		return nil
	})
	if !ran {
		c.logger.
			WithField("next", c.gate.NextPoll()).
			Debug("Skipping poll, the last one was too recent")
		result.Skipped = true
		return result, nil
	}
	if err == errNoEntries {
		c.logger.Debug("Poll returned no releases")
		return result, nil
	}
	if err != nil {
		return nil, err
	}
	c.logger.
		WithFields(logrus.Fields{"found": result.Found, "new": len(result.New)}).
		Info("Polled latest releases")
	return result, nil
}

// Latest returns the most recently stored releases.
func (c *RSSCache) Latest(count int) []search.ReleaseRecord {
	return c.store.GetLatest(count)
}
