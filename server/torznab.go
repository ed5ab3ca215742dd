package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/indexer/search"
	"github.com/sp0x/scenetime/torznab"
)

func (s *Server) torznabHandler(c *gin.Context) {
	query, err := torznab.ParseQuery(c.Request.URL.Query())
	if err != nil {
		torznab.Error(c, err.Error(), torznab.ErrIncorrectParameter)
		return
	}
	switch query.Type {
	case "":
		c.Redirect(http.StatusTemporaryRedirect, c.Request.URL.Path+"?t=caps")
		return
	case torznab.TypeCaps:
		xmlOutput(c, torznab.DefaultCapabilities(s.provider.Name()), "application/xml")
		return
	}

	if !s.checkAPIKey(query.APIKey) {
		torznab.Error(c, "Invalid apikey parameter", torznab.ErrInsufficientPrivs)
		return
	}

	switch query.Type {
	case torznab.TypeSearch, torznab.TypeTVSearch:
		feed, err := s.torznabSearch(c.Request, query)
		if err != nil {
			torznab.Error(c, err.Error(), torznab.ErrUnknownError)
			return
		}
		switch c.Query("format") {
		case "atom":
			atomOutput(c, feed)
		case "json":
			c.JSON(http.StatusOK, feed)
		default:
			xmlOutput(c, feed, "application/rss+xml")
		}
	default:
		torznab.Error(c, "Unknown type parameter", torznab.ErrNoSuchFunction)
	}
}

func (s *Server) torznabSearch(r *http.Request, query *torznab.Query) (*torznab.ResultFeed, error) {
	if query.HasShowID() {
		if err := torznab.ResolveShow(query, s.shows); err != nil {
			return nil, err
		}
	}
	results := paginate(s.provider.Search(query.Request()), query.Offset, query.Limit)
	rewritten, err := s.rewriteLinks(r, results)
	if err != nil {
		return nil, err
	}
	return &torznab.ResultFeed{
		Info: torznab.Info{
			ID:       strings.ToLower(s.provider.Name()),
			Title:    s.provider.Name(),
			Link:     s.provider.URL(),
			Language: "en-us",
			Category: query.Type,
		},
		Items: rewritten,
	}, nil
}

func paginate(releases []search.Release, offset, limit int) []search.Release {
	if offset > len(releases) {
		return []search.Release{}
	}
	if offset > 0 {
		releases = releases[offset:]
	}
	if limit > 0 && limit < len(releases) {
		releases = releases[:limit]
	}
	return releases
}

// Rewrites the download links so that the download goes through us.
// This is required since only we can access the torrent, the site needs a logged in session.
func (s *Server) rewriteLinks(r *http.Request, items []search.Release) ([]search.Release, error) {
	baseURL, err := s.baseURL(r, "/d")
	if err != nil {
		return nil, err
	}
	k := s.sharedKey()
	rewritten := make([]search.Release, len(items))
	for idx, item := range items {
		rewritten[idx] = item
		link, err := s.downloadLink(baseURL, k, item)
		if err != nil {
			return nil, err
		}
		rewritten[idx].Link = link
	}
	return rewritten, nil
}

func (s *Server) downloadLink(baseURL *url.URL, key []byte, item search.Release) (string, error) {
	t := &token{
		Site: s.provider.Name(),
		Link: item.Link,
	}
	te, err := t.Encode(key)
	if err != nil {
		log.Debugf("Error encoding token: %v", err)
		return "", err
	}
	filename := strings.Replace(item.Title, "/", "-", -1)
	return fmt.Sprintf("%s/%s/%s.torrent", baseURL.String(), te, url.PathEscape(filename)), nil
}
