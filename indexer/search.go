package indexer

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/indexer/search"
	"github.com/sp0x/scenetime/indexer/source"
	"github.com/sp0x/scenetime/indexer/status"
)

// Search logs in and runs every term of the request.
// Results are grouped by mode in the order of the request, each group sorted by seeders.
// Nothing is returned if the login fails.
func (p *Provider) Search(req *search.Request) []search.Release {
	p.browserLock.Lock()
	defer p.browserLock.Unlock()
	results := make([]search.Release, 0)
	if req == nil || req.IsEmpty() {
		return results
	}
	if err := p.login(); err != nil {
		return results
	}
	for _, mode := range req.Modes() {
		p.logger.Debugf("Search Mode: %s", mode)
		var items []search.Release
		for _, term := range req.Terms(mode) {
			items = append(items, p.searchTerm(mode, term)...)
		}
		search.SortBySeeders(items)
		results = append(results, items...)
	}
	p.reporter.Searched(len(results))
	return results
}

func (p *Provider) searchTerm(mode search.Mode, term string) []search.Release {
	if !mode.IsRSS() {
		p.logger.Debugf("Search string: %s ", term)
	}
	searchURL := p.searchURL(term)
	p.logger.Debugf("Search URL: %s", searchURL)

	result, err := p.contentFetcher.Fetch(source.NewTarget(searchURL))
	if err != nil {
		p.logger.WithError(err).Debug("Couldn't fetch search results")
		p.reporter.Error(status.ContentError, err)
		return nil
	}
	rows, err := getRows(result.Body)
	if err != nil || rows.Length() < 2 {
		p.logger.Debug("Data returned from provider does not contain any torrents")
		return nil
	}
	labels := parseLabels(rows.Get(0))

	var releases []search.Release
	for i := 1; i < rows.Length(); i++ {
		release, err := p.extractRow(rows.Get(i), labels)
		if err != nil {
			p.logger.
				WithFields(logrus.Fields{"row": i, "labels": labels.String()}).
				WithError(err).
				Debug("Skipping row")
			continue
		}
		if release.Title == "" || release.Link == "" {
			continue
		}
		if !p.settings.Thresholds.Allows(release) {
			if !mode.IsRSS() {
				p.logger.Debugf("Discarding torrent because it doesn't meet the minimum seeders or leechers: %s (S:%d L:%d)",
					release.Title, release.Seeders, release.Leechers)
			}
			continue
		}
		if !mode.IsRSS() {
			p.logger.Debugf("Found result: %s ", release.Title)
		}
		releases = append(releases, *release)
	}
	return releases
}

// escapeTerm quotes a term for the query string, spaces become %20.
func escapeTerm(term string) string {
	return strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
}
