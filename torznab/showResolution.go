package torznab

import (
	"fmt"

	"github.com/mrobinsn/go-tvmaze/tvmaze"
)

// ShowLookup finds shows by the ids torznab clients send.
type ShowLookup interface {
	GetShowWithID(id string) (*tvmaze.Show, error)
	GetShowWithTVDBID(id string) (*tvmaze.Show, error)
	GetShowWithTVRageID(id string) (*tvmaze.Show, error)
}

type tvmazeLookup struct{}

// TVMaze looks shows up through the public tvmaze api.
func TVMaze() ShowLookup {
	return tvmazeLookup{}
}

func (tvmazeLookup) GetShowWithID(id string) (*tvmaze.Show, error) {
	return tvmaze.DefaultClient.GetShowWithID(id)
}

func (tvmazeLookup) GetShowWithTVDBID(id string) (*tvmaze.Show, error) {
	return tvmaze.DefaultClient.GetShowWithTVDBID(id)
}

func (tvmazeLookup) GetShowWithTVRageID(id string) (*tvmaze.Show, error) {
	return tvmaze.DefaultClient.GetShowWithTVRageID(id)
}

// ResolveShow replaces the show ids of the query with the show's name.
func ResolveShow(query *Query, lookup ShowLookup) error {
	var show *tvmaze.Show
	var err error
	switch {
	case query.TVDBID != "" && query.TVDBID != "0":
		show, err = lookup.GetShowWithTVDBID(query.TVDBID)
	case query.TVMazeID != "":
		show, err = lookup.GetShowWithID(query.TVMazeID)
	case query.TVRageID != "":
		show, err = lookup.GetShowWithTVRageID(query.TVRageID)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("couldn't resolve show: %w", err)
	}
	if show == nil || show.Name == "" {
		return fmt.Errorf("show not found for query %s", query)
	}
	query.Series = show.Name
	query.TVDBID, query.TVMazeID, query.TVRageID = "", "", ""
	return nil
}
