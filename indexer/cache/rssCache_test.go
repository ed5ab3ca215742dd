package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/onsi/gomega"

	"github.com/sp0x/scenetime/indexer/cache/mocks"
	"github.com/sp0x/scenetime/indexer/search"
)

type isRSSRequest struct{}

func (isRSSRequest) Matches(x interface{}) bool {
	req, ok := x.(*search.Request)
	if !ok {
		return false
	}
	modes := req.Modes()
	terms := req.Terms(search.RSS)
	return len(modes) == 1 && modes[0] == search.RSS && len(terms) == 1 && terms[0] == ""
}

func (isRSSRequest) String() string {
	return "is an rss request"
}

func newTestCache(ctrl *gomock.Controller) (*RSSCache, *mocks.MockSearcher, *mocks.MockReleaseStore) {
	searcher := mocks.NewMockSearcher(ctrl)
	store := mocks.NewMockReleaseStore(ctrl)
	searcher.EXPECT().Name().Return("SceneTime").AnyTimes()
	searcher.EXPECT().MinPollInterval().Return(20 * time.Minute)
	return NewRSSCache(searcher, store), searcher, store
}

func TestRSSCache_Update_ShouldStoreReleases(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rssCache, searcher, store := newTestCache(ctrl)
	releases := []search.Release{{Title: "A", Link: "a"}, {Title: "B", Link: "b"}}

	searcher.EXPECT().Search(isRSSRequest{}).Return(releases)
	store.EXPECT().Add(&releases[0]).Return(true, nil)
	store.EXPECT().Add(&releases[1]).Return(false, nil)

	result, err := rssCache.Update()

	g.Expect(err).To(gomega.BeNil())
	g.Expect(result.Skipped).To(gomega.BeFalse())
	g.Expect(result.Found).To(gomega.Equal(2))
	g.Expect(result.New).To(gomega.Equal([]search.Release{releases[0]}))
}

func TestRSSCache_Update_ShouldRespectMinimumInterval(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rssCache, searcher, store := newTestCache(ctrl)

	searcher.EXPECT().Search(gomock.Any()).Return([]search.Release{{Title: "A", Link: "a"}}).Times(1)
	store.EXPECT().Add(gomock.Any()).Return(true, nil).Times(1)

	_, err := rssCache.Update()
	g.Expect(err).To(gomega.BeNil())
	result, err := rssCache.Update()
	g.Expect(err).To(gomega.BeNil())
	g.Expect(result.Skipped).To(gomega.BeTrue())
}

func TestRSSCache_Update_ShouldRetryAfterEmptyPoll(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rssCache, searcher, store := newTestCache(ctrl)

	searcher.EXPECT().Search(gomock.Any()).Return([]search.Release{}).Times(1)
	result, err := rssCache.Update()
	g.Expect(err).To(gomega.BeNil())
	g.Expect(result.Found).To(gomega.Equal(0))

	searcher.EXPECT().Search(gomock.Any()).Return([]search.Release{{Title: "A", Link: "a"}}).Times(1)
	store.EXPECT().Add(gomock.Any()).Return(true, nil)
	result, err = rssCache.Update()
	g.Expect(err).To(gomega.BeNil())
	g.Expect(result.Skipped).To(gomega.BeFalse())
	g.Expect(result.New).To(gomega.HaveLen(1))
}

func TestRSSCache_Update_ShouldReturnStorageErrors(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rssCache, searcher, store := newTestCache(ctrl)

	searcher.EXPECT().Search(gomock.Any()).Return([]search.Release{{Title: "A", Link: "a"}})
	store.EXPECT().Add(gomock.Any()).Return(false, errors.New("disk full"))

	result, err := rssCache.Update()

	g.Expect(result).To(gomega.BeNil())
	g.Expect(err).ToNot(gomega.BeNil())
	g.Expect(rssCache.Gate().LastPoll().IsZero()).To(gomega.BeTrue())
}

func TestRSSCache_Latest(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rssCache, _, store := newTestCache(ctrl)
	records := []search.ReleaseRecord{*search.NewRecord(&search.Release{Title: "A"})}

	store.EXPECT().GetLatest(5).Return(records)

	g.Expect(rssCache.Latest(5)).To(gomega.Equal(records))
}

func TestRSSCache_Update_ShouldKeepNewReleasesWhenAStoreFails(t *testing.T) {
	g := gomega.NewWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rssCache, searcher, store := newTestCache(ctrl)
	releases := []search.Release{{Title: "A", Link: "a"}, {Title: "B", Link: "b"}}

	searcher.EXPECT().Search(gomock.Any()).Return(releases)
	store.EXPECT().Add(&releases[0]).Return(true, nil)
	store.EXPECT().Add(&releases[1]).Return(false, errors.New("disk full"))

	result, err := rssCache.Update()

	g.Expect(err).To(gomega.BeNil())
	g.Expect(result.Found).To(gomega.Equal(2))
	g.Expect(result.New).To(gomega.Equal([]search.Release{releases[0]}))
	g.Expect(rssCache.Gate().LastPoll().IsZero()).To(gomega.BeFalse())

	rssCache.Gate().Reset()
	searcher.EXPECT().Search(gomock.Any()).Return(releases)
	store.EXPECT().Add(&releases[0]).Return(false, nil)
	store.EXPECT().Add(&releases[1]).Return(true, nil)

	result, err = rssCache.Update()

	g.Expect(err).To(gomega.BeNil())
	g.Expect(result.New).To(gomega.Equal([]search.Release{releases[1]}))
}
