package search

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

type torznabAttribute struct {
	XMLName struct{} `xml:"torznab:attr"`
	Name    string   `xml:"name,attr"`
	Value   string   `xml:"value,attr"`
}

// Release is a single result row extracted from the tracker's listing.
// Size is -1 when the listing didn't contain a readable size.
type Release struct {
	LocalID  string
	Title    string
	Link     string
	Size     int64
	Seeders  int
	Leechers int
}

func (r *Release) String() string {
	return fmt.Sprintf("[%s]%s (%s, S:%d L:%d)", r.LocalID, r.Title, r.SizeStr(), r.Seeders, r.Leechers)
}

// SizeStr is the human readable size of the release.
func (r *Release) SizeStr() string {
	if r.Size < 0 {
		return "?"
	}
	return humanize.IBytes(uint64(r.Size))
}

// Peers is the total swarm size.
func (r *Release) Peers() int {
	return r.Seeders + r.Leechers
}

// MarshalXML marshals the release as a torznab item
func (r Release) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	enclosure := struct {
		URL    string `xml:"url,attr,omitempty"`
		Length int64  `xml:"length,attr,omitempty"`
		Type   string `xml:"type,attr,omitempty"`
	}{
		URL:    r.Link,
		Length: r.Size,
		Type:   "application/x-bittorrent",
	}
	itemView := struct {
		XMLName           struct{}    `xml:"item"`
		Title             string      `xml:"title,omitempty"`
		GUID              string      `xml:"guid,omitempty"`
		Link              string      `xml:"link,omitempty"`
		Enclosure         interface{} `xml:"enclosure,omitempty"`
		Size              int64       `xml:"size"`
		TorznabAttributes []torznabAttribute
	}{
		Title:     r.Title,
		GUID:      r.Link,
		Link:      r.Link,
		Enclosure: enclosure,
		Size:      r.Size,
	}
	attribs := itemView.TorznabAttributes
	attribs = append(attribs, torznabAttribute{Name: "size", Value: strconv.FormatInt(r.Size, 10)})
	attribs = append(attribs, torznabAttribute{Name: "seeders", Value: strconv.Itoa(r.Seeders)})
	attribs = append(attribs, torznabAttribute{Name: "peers", Value: strconv.Itoa(r.Peers())})
	itemView.TorznabAttributes = attribs
	return e.Encode(itemView)
}
