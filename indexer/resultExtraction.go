package indexer

import (
	"fmt"
	"strings"

	"github.com/sp0x/scenetime/indexer/search"
	"github.com/sp0x/scenetime/indexer/utils"
)

const (
	labelName     = "Name"
	labelSeeders  = "Seeders"
	labelLeechers = "Leechers"
	labelSize     = "Size"
)

// RowError is returned for rows that can't be turned into a release.
type RowError struct {
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("unusable row: %s", e.Reason)
}

// cell finds a labeled cell of a row.
func cell(cells RawScrapeItem, labels *columnLabels, label string) (RawScrapeItem, error) {
	index, ok := labels.indexOf(label)
	if !ok {
		return nil, &RowError{Reason: fmt.Sprintf("no %s column", label)}
	}
	if index >= cells.Length() {
		return nil, &RowError{Reason: fmt.Sprintf("%s column is out of range", label)}
	}
	return cells.Eq(index), nil
}

// extractRow reads a release from a result row.
// The column positions are looked up through the labels of the table header.
func (p *Provider) extractRow(row RawScrapeItem, labels *columnLabels) (*search.Release, error) {
	cells := row.Find("td")
	nameCell, err := cell(cells, labels, labelName)
	if err != nil {
		return nil, err
	}
	link := nameCell.Find("a").First()
	if link.Length() == 0 {
		return nil, &RowError{Reason: "no link in the name column"}
	}
	href, ok := link.Attr("href")
	if !ok {
		return nil, &RowError{Reason: "name link has no href"}
	}
	id := strings.Split(strings.Replace(href, "details.php?id=", "", 1), "&")[0]
	// Line breaks and tabs inside the link text become single spaces, runs of spaces are kept.
	title := utils.NormalizeSpace(link.Text())

	seeders, err := counter(cells, labels, labelSeeders)
	if err != nil {
		return nil, err
	}
	leechers, err := counter(cells, labels, labelLeechers)
	if err != nil {
		return nil, err
	}
	sizeCell, err := cell(cells, labels, labelSize)
	if err != nil {
		return nil, err
	}

	release := &search.Release{
		LocalID:  id,
		Title:    title,
		Seeders:  seeders,
		Leechers: leechers,
		Size:     utils.ParseSize(strings.TrimSpace(sizeCell.Text())),
	}
	if title != "" {
		release.Link = p.downloadURL(id, title)
	}
	return release, nil
}

// counter reads a seeders or leechers cell.
func counter(cells RawScrapeItem, labels *columnLabels, label string) (int, error) {
	c, err := cell(cells, labels, label)
	if err != nil {
		return 0, err
	}
	text := strings.TrimSpace(c.Text())
	value := utils.TryInt(text, -1)
	if value < 0 {
		return 0, &RowError{Reason: fmt.Sprintf("%s value %q isn't a number", label, text)}
	}
	return value, nil
}
