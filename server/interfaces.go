package server

import (
	"github.com/sp0x/scenetime/indexer/cache"
	"github.com/sp0x/scenetime/indexer/search"
	"github.com/sp0x/scenetime/indexer/status/models"
)

//go:generate mockgen -source interfaces.go -destination=mocks/interfaces.go -package=mocks
type Provider interface {
	Name() string
	URL() string
	Login() error
	Search(req *search.Request) []search.Release
	Download(link string) ([]byte, error)
	Status() *models.IndexStatus
}

// Poller keeps the newest releases of the provider.
type Poller interface {
	Update() (*cache.PollResult, error)
	Latest(count int) []search.ReleaseRecord
}
