package indexer

import (
	"bytes"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

type RawScrapeItems interface {
	Length() int
	Get(i int) RawScrapeItem
}

type RawScrapeItem interface {
	// Find a child element using a selector.
	Find(selector string) RawScrapeItem
	// Length of the child elements
	Length() int
	// Eq reduces the set of matched elements to the one at the specified index.
	Eq(i int) RawScrapeItem
	// Map passes each element in the current matched set through a function,
	// producing a slice of string holding the returned values.
	Map(f func(int, RawScrapeItem) string) []string
	// Text gets the combined text contents of each element in the set of matched
	// elements, including their descendants.
	Text() string
	// Attr gets the specified attribute's value for the first element in the
	// Selection.
	Attr(attributeName string) (string, bool)
	First() RawScrapeItem
}

// region Scrape items collection

type DomScrapeItems struct {
	items *goquery.Selection
}

func (d *DomScrapeItems) Length() int {
	return d.items.Length()
}

func (d *DomScrapeItems) Get(i int) RawScrapeItem {
	return &DomScrapeItem{selection: d.items.Eq(i)}
}

// endregion

// region Scrape item

type DomScrapeItem struct {
	selection *goquery.Selection
}

func (d *DomScrapeItem) Find(selector string) RawScrapeItem {
	return &DomScrapeItem{selection: d.selection.Find(selector)}
}

func (d *DomScrapeItem) Text() string {
	return d.selection.Text()
}

func (d *DomScrapeItem) First() RawScrapeItem {
	return &DomScrapeItem{d.selection.First()}
}

func (d *DomScrapeItem) Eq(i int) RawScrapeItem {
	return &DomScrapeItem{d.selection.Eq(i)}
}

func (d *DomScrapeItem) Length() int {
	return d.selection.Length()
}

func (d *DomScrapeItem) Map(f func(int, RawScrapeItem) string) []string {
	return d.selection.Map(func(i int, selection *goquery.Selection) string {
		return f(i, &DomScrapeItem{selection: selection})
	})
}

func (d *DomScrapeItem) Attr(name string) (string, bool) {
	return d.selection.Attr(name)
}

// endregion

// getRows finds the rows of the result table, the first row holds the column labels.
func getRows(body []byte) (RawScrapeItems, error) {
	dom, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	table := dom.Find(resultsTableSelector)
	if table.Length() == 0 {
		return nil, errors.New("no result table found")
	}
	return &DomScrapeItems{
		items: table.First().Find("tr"),
	}, nil
}

// columnLabels maps a column's header text to its index.
type columnLabels struct {
	labels *linkedhashmap.Map
}

// parseLabels reads the labels of a header row. If a label is repeated the first column wins.
func parseLabels(header RawScrapeItem) *columnLabels {
	labels := linkedhashmap.New()
	header.Find("td").Map(func(i int, cell RawScrapeItem) string {
		text := strings.TrimSpace(cell.Text())
		if _, found := labels.Get(text); !found {
			labels.Put(text, i)
		}
		return text
	})
	return &columnLabels{labels: labels}
}

func (c *columnLabels) indexOf(label string) (int, bool) {
	value, found := c.labels.Get(label)
	if !found {
		return -1, false
	}
	return value.(int), true
}

func (c *columnLabels) String() string {
	keys := c.labels.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return strings.Join(names, "|")
}
