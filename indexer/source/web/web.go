package web

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sp0x/surf/browser"
	"golang.org/x/time/rate"

	"github.com/sp0x/scenetime/indexer/source"
)

const defaultTimeout = 30 * time.Second

var refreshSplitter = regexp.MustCompile(`\s*;\s*`)

type FetchOptions struct {
	// Timeout is used for requests that don't set their own.
	Timeout time.Duration
	// RateLimit is the max number of requests per second, 0 disables limiting.
	RateLimit float64
	// DumpDir is where fetched pages are written for debugging, nothing is written if it's empty.
	DumpDir string
}

// ContentFetcher is a content fetcher that keeps the browsing session of a site.
type ContentFetcher struct {
	Browser browser.Browsable
	limiter *rate.Limiter
	options FetchOptions
}

func NewWebContentFetcher(browser browser.Browsable, options FetchOptions) *ContentFetcher {
	if options.Timeout <= 0 {
		options.Timeout = defaultTimeout
	}
	fetcher := &ContentFetcher{
		Browser: browser,
		options: options,
	}
	if options.RateLimit > 0 {
		fetcher.limiter = rate.NewLimiter(rate.Limit(options.RateLimit), 1)
	}
	return fetcher
}

// Cleanup clears the page history, the cookies are kept.
func (w *ContentFetcher) Cleanup() {
	w.Browser.HistoryJar().Clear()
}

// Fetch opens the target and returns its body.
func (w *ContentFetcher) Fetch(target *source.SearchTarget) (*source.FetchResult, error) {
	if target == nil {
		return nil, errors.New("target is required for fetching")
	}
	defer w.Cleanup()
	timeout := target.Timeout
	if timeout <= 0 {
		timeout = w.options.Timeout
	}
	if err := w.wait(timeout); err != nil {
		return nil, err
	}
	w.Browser.SetTimeout(timeout)

	var err error
	switch strings.ToLower(target.Method) {
	case "", source.MethodGet:
		targetURL := target.URL
		if len(target.Values) > 0 {
			targetURL = fmt.Sprintf("%s?%s", targetURL, target.Values.Encode())
		}
		err = w.get(targetURL)
	case source.MethodPost:
		err = w.post(target.URL, target.Values)
	default:
		return nil, fmt.Errorf("unknown request method %q", target.Method)
	}
	if err != nil {
		return nil, err
	}
	return w.result()
}

func (w *ContentFetcher) wait(timeout time.Duration) error {
	if w.limiter == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return w.limiter.Wait(ctx)
}

func (w *ContentFetcher) result() (*source.FetchResult, error) {
	code := w.Browser.StatusCode()
	pageURL := ""
	if u := w.Browser.Url(); u != nil {
		pageURL = u.String()
	}
	if code < 200 || code >= 300 {
		return nil, &source.StatusError{URL: pageURL, Code: code}
	}
	body := []byte(w.Browser.Body())
	if len(body) == 0 {
		return nil, source.ErrEmptyResponse
	}
	w.dumpPage(body)
	return &source.FetchResult{
		StatusCode: code,
		URL:        pageURL,
		Body:       body,
	}, nil
}

func (w *ContentFetcher) get(targetURL string) error {
	logrus.WithField("target", targetURL).
		Debug("Opening page")
	if err := w.Browser.Open(targetURL); err != nil {
		return err
	}
	logrus.
		WithFields(logrus.Fields{"code": w.Browser.StatusCode(), "page": w.Browser.Url()}).
		Debugf("Finished request")
	return w.handleMetaRefreshHeader()
}

func (w *ContentFetcher) post(targetURL string, data url.Values) error {
	// Values aren't logged, they may hold credentials.
	logrus.
		WithFields(logrus.Fields{"url": targetURL}).
		Debugf("Posting to page")
	if err := w.Browser.PostForm(targetURL, data); err != nil {
		return err
	}
	logrus.
		WithFields(logrus.Fields{"code": w.Browser.StatusCode(), "page": w.Browser.Url()}).
		Debugf("Finished request")
	return w.handleMetaRefreshHeader()
}

// Handle a header like: Refresh: 0;url=my_view_page.php
func (w *ContentFetcher) handleMetaRefreshHeader() error {
	h := w.Browser.ResponseHeaders()
	refresh := h.Get("Refresh")
	if refresh == "" {
		return nil
	}
	state := w.Browser.State()
	if state == nil || state.Request == nil {
		return nil
	}
	if s := refreshSplitter.Split(refresh, 2); len(s) == 2 {
		logrus.
			WithField("fields", s).
			Debug("Found refresh header")
		requestURL := *state.Request.URL
		requestURL.Path = strings.TrimPrefix(s[1], "url=")
		return w.get(requestURL.String())
	}
	return nil
}
