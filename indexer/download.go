package indexer

import (
	"fmt"
	"strings"

	"github.com/sp0x/scenetime/indexer/source"
	"github.com/sp0x/scenetime/indexer/status"
)

// Download fetches a .torrent file through the logged in session.
func (p *Provider) Download(link string) ([]byte, error) {
	if !strings.HasPrefix(link, p.settings.URL+"/download.php/") {
		return nil, fmt.Errorf("%s isn't a download link of %s", link, siteName)
	}
	p.browserLock.Lock()
	defer p.browserLock.Unlock()
	if err := p.login(); err != nil {
		return nil, err
	}
	result, err := p.contentFetcher.Fetch(source.NewTarget(link))
	if err != nil {
		p.reporter.Error(status.ContentError, err)
		return nil, fmt.Errorf("couldn't download %s: %w", link, err)
	}
	return result.Body, nil
}
