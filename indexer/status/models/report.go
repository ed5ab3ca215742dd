package models

import "github.com/sp0x/scenetime/indexer/status"

type LatestResult struct {
	Name string `json:"name"`
	Size string `json:"size"`
	Site string `json:"site"`
	Link string `json:"link"`
}

type IndexStatus struct {
	Index      string                `json:"index"`
	LastSearch *status.SearchMessage `json:"last_search,omitempty"`
	Errors     []status.ErrorMessage `json:"errors"`
}
