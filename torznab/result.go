package torznab

import (
	"encoding/xml"

	"github.com/sp0x/scenetime/indexer/search"
)

const (
	torznabNamespace = "http://torznab.com/schemas/2015/feed"
	atomNamespace    = "http://www.w3.org/2005/Atom"
)

// Info describes the feed's channel.
type Info struct {
	ID          string
	Title       string
	Description string
	Link        string
	Language    string
	Category    string
}

// ResultFeed is a torznab search response, an rss 2.0 channel of releases.
type ResultFeed struct {
	Info  Info
	Items []search.Release
}

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Torznab string     `xml:"xmlns:torznab,attr"`
	Atom    string     `xml:"xmlns:atom,attr"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string           `xml:"title,omitempty"`
	Description string           `xml:"description,omitempty"`
	Link        string           `xml:"link,omitempty"`
	Language    string           `xml:"language,omitempty"`
	Category    string           `xml:"category,omitempty"`
	Items       []search.Release `xml:"item"`
}

func (rf ResultFeed) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return e.Encode(rssDocument{
		Torznab: torznabNamespace,
		Atom:    atomNamespace,
		Version: "2.0",
		Channel: rssChannel{
			Title:       rf.Info.Title,
			Description: rf.Info.Description,
			Link:        rf.Info.Link,
			Language:    rf.Info.Language,
			Category:    rf.Info.Category,
			Items:       rf.Items,
		},
	})
}
