package source

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

const (
	MethodGet  = "get"
	MethodPost = "post"
)

// ErrEmptyResponse is returned when the site answered without a body.
var ErrEmptyResponse = errors.New("empty response")

type SearchTarget struct {
	URL    string
	Values url.Values
	Method string
	// Timeout overrides the fetcher's default request timeout.
	Timeout time.Duration
}

func NewTarget(url string) *SearchTarget {
	return &SearchTarget{
		URL: url,
	}
}

// NewPostTarget creates a form post target.
func NewPostTarget(url string, values url.Values) *SearchTarget {
	return &SearchTarget{
		URL:    url,
		Values: values,
		Method: MethodPost,
	}
}

type FetchResult struct {
	StatusCode int
	URL        string
	Body       []byte
}

func (f *FetchResult) Text() string {
	return string(f.Body)
}

// StatusError is returned for responses that didn't succeed.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Code)
}

//go:generate mockgen -source source.go -destination=mocks/source.go -package=mocks
type ContentFetcher interface {
	// Fetch opens the target and returns its content.
	// A transport failure, an unsuccessful status or an empty body are errors.
	Fetch(target *SearchTarget) (*FetchResult, error)
	Cleanup()
}
