package indexer

import (
	"net/url"
	"strings"

	"github.com/sp0x/scenetime/indexer/source"
	"github.com/sp0x/scenetime/indexer/status"
)

// Login posts the account credentials to the site.
// The session itself is kept by the fetcher's cookies, the response is only checked for
// the invalid credentials message.
func (p *Provider) Login() error {
	p.browserLock.Lock()
	defer p.browserLock.Unlock()
	return p.login()
}

func (p *Provider) login() error {
	target := source.NewPostTarget(p.settings.URL+loginPath, url.Values{
		"username": {p.settings.Username},
		"password": {p.settings.Password},
	})
	target.Timeout = loginTimeout
	result, err := p.contentFetcher.Fetch(target)
	if err != nil {
		p.logger.WithError(err).Warn("Unable to connect to provider")
		p.reporter.Error(status.TargetError, err)
		return ErrUnreachable
	}
	if strings.Contains(result.Text(), invalidLoginMarker) {
		p.logger.Warn("Invalid username or password. Check your settings")
		loginErr := &LoginError{errInvalidCredentials}
		p.reporter.Error(status.LoginError, loginErr)
		return loginErr
	}
	return nil
}
