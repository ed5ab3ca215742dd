package torznab

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sp0x/scenetime/indexer/search"
)

const (
	TypeCaps     = "caps"
	TypeSearch   = "search"
	TypeTVSearch = "tvsearch"
)

// Query represents a torznab query
type Query struct {
	Type                  string
	Q, Series, Ep, Season string
	Limit, Offset         int
	Categories            []int
	APIKey                string

	// identifier types
	TVDBID   string
	TVRageID string
	TVMazeID string
}

// Episode returns either the season + episode in the format S00E00 or just the season as S00 if
// no episode has been specified.
func (query Query) Episode() (s string) {
	if query.Season != "" {
		s += "S" + twoDigits(query.Season)
	}
	if query.Ep != "" {
		s += "E" + twoDigits(query.Ep)
	}
	return s
}

func twoDigits(value string) string {
	n, err := strconv.Atoi(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%02d", n)
}

// HasShowID is true when the show has to be looked up by one of its ids.
func (query Query) HasShowID() bool {
	return (query.TVDBID != "" && query.TVDBID != "0") || query.TVMazeID != "" || query.TVRageID != ""
}

// Keywords returns the query formatted as search keywords
func (query Query) Keywords() string {
	var tokens []string
	if query.Q != "" {
		tokens = append(tokens, query.Q)
	}
	if query.Series != "" {
		tokens = append(tokens, query.Series)
	}
	if query.Season != "" || query.Ep != "" {
		tokens = append(tokens, query.Episode())
	}
	return strings.Join(tokens, " ")
}

// Request builds the provider request for the query.
// A tv search with both season and episode is an episode lookup, a season alone is a season lookup.
// A query without keywords asks for the newest releases.
func (query Query) Request() *search.Request {
	keywords := query.Keywords()
	if keywords == "" {
		return search.NewRSSRequest()
	}
	mode := search.Episode
	if query.Type == TypeTVSearch && query.Season != "" && query.Ep == "" {
		mode = search.Season
	}
	return search.NewRequest().Add(mode, keywords)
}

// Encode returns the query as a url query string
func (query Query) Encode() string {
	v := url.Values{}
	if query.Type != "" {
		v.Set("t", query.Type)
	} else {
		v.Set("t", TypeSearch)
	}
	setIfPresent(v, "q", query.Q)
	setIfPresent(v, "ep", query.Ep)
	setIfPresent(v, "season", query.Season)
	setIfPresent(v, "series", query.Series)
	setIfPresent(v, "apikey", query.APIKey)
	setIfPresent(v, "tvdbid", query.TVDBID)
	setIfPresent(v, "rid", query.TVRageID)
	setIfPresent(v, "tvmazeid", query.TVMazeID)
	if query.Offset != 0 {
		v.Set("offset", strconv.Itoa(query.Offset))
	}
	if query.Limit != 0 {
		v.Set("limit", strconv.Itoa(query.Limit))
	}
	if len(query.Categories) > 0 {
		cats := make([]string, len(query.Categories))
		for i, cat := range query.Categories {
			cats[i] = strconv.Itoa(cat)
		}
		v.Set("cat", strings.Join(cats, ","))
	}
	return v.Encode()
}

func (query Query) String() string {
	return query.Encode()
}

func setIfPresent(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// ParseQuery takes the query string parameters for a torznab query and parses them
func ParseQuery(v url.Values) (*Query, error) {
	query := &Query{}
	for k, vals := range v {
		switch k {
		case "t":
			if len(vals) > 1 {
				return query, errors.New("multiple t parameters not allowed")
			}
			query.Type = strings.Replace(vals[0], "-", "", -1)
		case "q":
			query.Q = strings.Join(vals, " ")
		case "series":
			query.Series = strings.Join(vals, " ")
		case "ep", "season", "apikey", "tvdbid", "rid", "tvmazeid":
			if len(vals) > 1 {
				return query, fmt.Errorf("multiple %s parameters not allowed", k)
			}
			query.setSingle(k, vals[0])
		case "limit", "offset":
			if len(vals) > 1 {
				return query, fmt.Errorf("multiple %s parameters not allowed", k)
			}
			n, err := strconv.Atoi(vals[0])
			if err != nil {
				return query, fmt.Errorf("%s isn't a number: %w", k, err)
			}
			if k == "limit" {
				query.Limit = n
			} else {
				query.Offset = n
			}
		case "cat":
			for _, val := range vals {
				for _, part := range strings.Split(val, ",") {
					if part == "" {
						continue
					}
					id, err := strconv.Atoi(part)
					if err != nil {
						return query, fmt.Errorf("invalid category %q", part)
					}
					query.Categories = append(query.Categories, id)
				}
			}
		}
	}
	return query, nil
}

func (query *Query) setSingle(key, value string) {
	switch key {
	case "ep":
		query.Ep = value
	case "season":
		query.Season = value
	case "apikey":
		query.APIKey = value
	case "tvdbid":
		query.TVDBID = value
	case "rid":
		query.TVRageID = value
	case "tvmazeid":
		query.TVMazeID = value
	}
}
