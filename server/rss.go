package server

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/torznab"
)

const defaultFeedSize = 50

// rssHandler serves the newest stored releases as an atom feed.
// It polls the provider first if the last poll is old enough.
func (s *Server) rssHandler(c *gin.Context) {
	if !s.checkAPIKey(c.Query("apikey")) {
		torznab.Error(c, "Invalid apikey parameter", torznab.ErrInsufficientPrivs)
		return
	}
	count := defaultFeedSize
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		count = limit
	}
	if _, err := s.poller.Update(); err != nil {
		log.Warningf("Couldn't poll for new releases: %v", err)
	}
	baseURL, err := s.baseURL(c.Request, "/d")
	if err != nil {
		torznab.Error(c, err.Error(), torznab.ErrUnknownError)
		return
	}
	key := s.sharedKey()
	feed := &feeds.Feed{
		Title:       s.provider.Name(),
		Link:        &feeds.Link{Href: s.provider.URL()},
		Description: fmt.Sprintf("Latest releases on %s", s.provider.Name()),
		Created:     time.Now(),
	}
	for _, record := range s.poller.Latest(count) {
		link, err := s.downloadLink(baseURL, key, record.Release)
		if err != nil {
			torznab.Error(c, err.Error(), torznab.ErrUnknownError)
			return
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       record.Title,
			Link:        &feeds.Link{Href: link},
			Id:          record.UUID,
			Description: fmt.Sprintf("Size: %s, seeders: %d, leechers: %d", record.SizeStr(), record.Seeders, record.Leechers),
			Created:     record.CreatedAt,
		})
	}
	writeAtom(c, feed)
}
