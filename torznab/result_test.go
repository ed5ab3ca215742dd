package torznab

import (
	"encoding/xml"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/sp0x/scenetime/indexer/search"
)

func TestResultFeed_MarshalXML(t *testing.T) {
	g := NewGomegaWithT(t)
	feed := ResultFeed{
		Info: Info{Title: "SceneTime", Link: "https://www.scenetime.com"},
		Items: []search.Release{
			{Title: "Show.S01E01", Link: "http://localhost/d/t/Show.S01E01.torrent", Size: 1024, Seeders: 10, Leechers: 2},
		},
	}

	out, err := xml.Marshal(feed)

	g.Expect(err).To(BeNil())
	text := string(out)
	g.Expect(text).To(HavePrefix(`<rss xmlns:torznab="http://torznab.com/schemas/2015/feed"`))
	g.Expect(text).To(ContainSubstring("<title>SceneTime</title>"))
	g.Expect(text).To(ContainSubstring("<title>Show.S01E01</title>"))
	g.Expect(text).To(ContainSubstring(`<torznab:attr name="seeders" value="10"></torznab:attr>`))
	g.Expect(text).To(ContainSubstring(`<torznab:attr name="peers" value="12"></torznab:attr>`))
}

func TestCapabilities_MarshalXML(t *testing.T) {
	g := NewGomegaWithT(t)

	out, err := xml.Marshal(DefaultCapabilities("SceneTime"))

	g.Expect(err).To(BeNil())
	text := string(out)
	g.Expect(text).To(HavePrefix("<caps>"))
	g.Expect(text).To(ContainSubstring(`<server title="SceneTime"></server>`))
	g.Expect(text).To(ContainSubstring(`<tv-search available="yes" supportedParams="q,season,ep,tvdbid,rid,tvmazeid"></tv-search>`))
	g.Expect(text).To(ContainSubstring(`<movie-search available="no"></movie-search>`))
	g.Expect(text).To(ContainSubstring(`<category id="5000" name="TV"></category>`))
}
