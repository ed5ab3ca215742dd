package search

import (
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Mode is the kind of lookup a group of search terms is used for.
type Mode string

const (
	Season  Mode = "Season"
	Episode Mode = "Episode"
	// RSS is used for polling, it runs with an empty term.
	RSS Mode = "RSS"
)

// IsRSS is true for the polling mode.
func (m Mode) IsRSS() bool {
	return m == RSS
}

// ParseMode resolves a mode by name. Unknown names are searched like episodes.
func ParseMode(name string) Mode {
	switch strings.ToLower(name) {
	case "season":
		return Season
	case "rss":
		return RSS
	default:
		return Episode
	}
}

// Request groups search terms by mode, keeping the order in which modes were added.
type Request struct {
	modes *linkedhashmap.Map
}

func NewRequest() *Request {
	return &Request{modes: linkedhashmap.New()}
}

// NewRSSRequest creates the request used for polling new releases.
func NewRSSRequest() *Request {
	return NewRequest().Add(RSS, "")
}

// Add appends terms to a mode.
func (r *Request) Add(mode Mode, terms ...string) *Request {
	existing := r.Terms(mode)
	r.modes.Put(mode, append(existing, terms...))
	return r
}

// Modes in the order they were added.
func (r *Request) Modes() []Mode {
	keys := r.modes.Keys()
	modes := make([]Mode, len(keys))
	for i, k := range keys {
		modes[i] = k.(Mode)
	}
	return modes
}

func (r *Request) Terms(mode Mode) []string {
	value, found := r.modes.Get(mode)
	if !found {
		return nil
	}
	return value.([]string)
}

func (r *Request) IsEmpty() bool {
	return r.modes.Empty()
}
