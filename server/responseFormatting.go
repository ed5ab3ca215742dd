package server

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"github.com/sp0x/scenetime/torznab"
)

func xmlOutput(c *gin.Context, v interface{}, contentType string) {
	x, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		torznab.Error(c, err.Error(), torznab.ErrUnknownError)
		return
	}
	c.Data(http.StatusOK, contentType, append([]byte(xml.Header), x...))
}

func atomOutput(c *gin.Context, feed *torznab.ResultFeed) {
	atomFeed := &feeds.Feed{
		Title:       feed.Info.Title,
		Link:        &feeds.Link{Href: feed.Info.Link},
		Description: feed.Info.Description,
		Created:     time.Now(),
	}
	for _, release := range feed.Items {
		atomFeed.Items = append(atomFeed.Items, &feeds.Item{
			Title:       release.Title,
			Link:        &feeds.Link{Href: release.Link},
			Id:          release.Link,
			Description: fmt.Sprintf("Size: %s, seeders: %d, leechers: %d", release.SizeStr(), release.Seeders, release.Leechers),
			Created:     atomFeed.Created,
		})
	}
	writeAtom(c, atomFeed)
}

func writeAtom(c *gin.Context, feed *feeds.Feed) {
	atom, err := feed.ToAtom()
	if err != nil {
		torznab.Error(c, err.Error(), torznab.ErrUnknownError)
		return
	}
	c.Data(http.StatusOK, "application/atom+xml", []byte(atom))
}
