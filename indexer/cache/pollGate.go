package cache

import (
	"sync"
	"time"
)

// PollGate allows a poll to run only if enough time has passed since the last successful one.
type PollGate struct {
	lock        sync.Mutex
	minInterval time.Duration
	lastPoll    time.Time
	now         func() time.Time
}

func NewPollGate(minInterval time.Duration) *PollGate {
	return &PollGate{
		minInterval: minInterval,
		now:         time.Now,
	}
}

// WithClock replaces the gate's clock.
func (g *PollGate) WithClock(now func() time.Time) *PollGate {
	g.now = now
	return g
}

func (g *PollGate) MinInterval() time.Duration {
	return g.minInterval
}

// LastPoll is the time of the last successful poll, zero if there was none.
func (g *PollGate) LastPoll() time.Time {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.lastPoll
}

// NextPoll is the earliest time at which a poll would be allowed.
func (g *PollGate) NextPoll() time.Time {
	g.lock.Lock()
	defer g.lock.Unlock()
	if g.lastPoll.IsZero() {
		return g.now()
	}
	return g.lastPoll.Add(g.minInterval)
}

// Run calls f unless the last successful poll was less than the minimum interval ago.
// The poll time is recorded only if f succeeds. Overlapping calls wait for each other.
func (g *PollGate) Run(f func() error) (bool, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	now := g.now()
	if !g.lastPoll.IsZero() && now.Sub(g.lastPoll) < g.minInterval {
		return false, nil
	}
	if err := f(); err != nil {
		return true, err
	}
	g.lastPoll = now
	return true, nil
}

// Reset forgets the last poll so the next one is allowed right away.
func (g *PollGate) Reset() {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.lastPoll = time.Time{}
}
