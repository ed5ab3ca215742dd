package indexer

import (
	"fmt"
	"strings"

	"github.com/golang/mock/gomock"

	"github.com/sp0x/scenetime/indexer/source"
)

type (
	ofTarget struct {
		method string
		url    string
	}
	ofURLPrefix struct{ prefix string }
)

// OfTarget matches a fetch target by its method and exact url.
func OfTarget(method string, url string) gomock.Matcher {
	return &ofTarget{method, url}
}

// OfURLPrefix matches any fetch target whose url starts with the prefix.
func OfURLPrefix(prefix string) gomock.Matcher {
	return &ofURLPrefix{prefix}
}

func (o *ofTarget) Matches(x interface{}) bool {
	target, ok := x.(*source.SearchTarget)
	if !ok {
		return false
	}
	method := target.Method
	if method == "" {
		method = source.MethodGet
	}
	return target.URL == o.url && method == o.method
}

func (o *ofTarget) String() string {
	return fmt.Sprintf("%s: %s", o.method, o.url)
}

func (o *ofURLPrefix) Matches(x interface{}) bool {
	target, ok := x.(*source.SearchTarget)
	return ok && strings.HasPrefix(target.URL, o.prefix)
}

func (o *ofURLPrefix) String() string {
	return "url starting with " + o.prefix
}
