package torznab

import (
	"encoding/xml"
	"strings"
)

type Category struct {
	ID   int
	Name string
}

var (
	CategoryTV   = Category{5000, "TV"}
	CategoryTVSD = Category{5030, "TV/SD"}
	CategoryTVHD = Category{5040, "TV/HD"}
)

// Capabilities describe what the api can search for.
type Capabilities struct {
	Title        string
	MaxLimit     int
	SearchParams []string
	TVParams     []string
	Categories   []Category
}

// DefaultCapabilities are the capabilities of a tv-only provider.
func DefaultCapabilities(title string) Capabilities {
	return Capabilities{
		Title:        title,
		MaxLimit:     100,
		SearchParams: []string{"q"},
		TVParams:     []string{"q", "season", "ep", "tvdbid", "rid", "tvmazeid"},
		Categories:   []Category{CategoryTV, CategoryTVSD, CategoryTVHD},
	}
}

type searchingView struct {
	Available       string `xml:"available,attr"`
	SupportedParams string `xml:"supportedParams,attr,omitempty"`
}

func availability(params []string) searchingView {
	if len(params) == 0 {
		return searchingView{Available: "no"}
	}
	return searchingView{Available: "yes", SupportedParams: strings.Join(params, ",")}
}

func (c Capabilities) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	type categoryView struct {
		ID   int    `xml:"id,attr"`
		Name string `xml:"name,attr"`
	}
	view := struct {
		XMLName xml.Name `xml:"caps"`
		Server  struct {
			Title string `xml:"title,attr"`
		} `xml:"server"`
		Limits struct {
			Max     int `xml:"max,attr"`
			Default int `xml:"default,attr"`
		} `xml:"limits"`
		Searching struct {
			Search      searchingView `xml:"search"`
			TVSearch    searchingView `xml:"tv-search"`
			MovieSearch searchingView `xml:"movie-search"`
		} `xml:"searching"`
		Categories []categoryView `xml:"categories>category"`
	}{}
	view.Server.Title = c.Title
	view.Limits.Max = c.MaxLimit
	view.Limits.Default = c.MaxLimit
	view.Searching.Search = availability(c.SearchParams)
	view.Searching.TVSearch = availability(c.TVParams)
	view.Searching.MovieSearch = availability(nil)
	for _, cat := range c.Categories {
		view.Categories = append(view.Categories, categoryView{cat.ID, cat.Name})
	}
	return e.Encode(view)
}
