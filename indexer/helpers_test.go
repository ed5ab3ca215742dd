package indexer

import (
	"fmt"
	"strings"

	"github.com/golang/mock/gomock"

	"github.com/sp0x/scenetime/indexer/search"
	"github.com/sp0x/scenetime/indexer/source"
	"github.com/sp0x/scenetime/indexer/source/mocks"
)

const testSite = "https://www.scenetime.com"

func row(cells ...string) string {
	var b strings.Builder
	b.WriteString("<tr>")
	for _, c := range cells {
		b.WriteString("<td>" + c + "</td>")
	}
	b.WriteString("</tr>")
	return b.String()
}

func nameCell(id, title string) string {
	return fmt.Sprintf(`<a href="details.php?id=%s&amp;hit=1">%s</a>`, id, title)
}

func resultsPage(rows ...string) *source.FetchResult {
	body := `<html><body><div id="torrenttable"><table>` + strings.Join(rows, "") + `</table></div></body></html>`
	return &source.FetchResult{StatusCode: 200, Body: []byte(body)}
}

func standardHeader() string {
	return row("Name", "Size", "Seeders", "Leechers")
}

func release(id, title, size, seeders, leechers string) string {
	return row(nameCell(id, title), size, seeders, leechers)
}

func newTestProvider(fetcher source.ContentFetcher, thresholds search.Thresholds) *Provider {
	return NewProvider(Settings{
		URL:        testSite + "/",
		Username:   "user",
		Password:   "pass",
		Thresholds: thresholds,
	}, fetcher)
}

func expectLogin(fetcher *mocks.MockContentFetcher) *gomock.Call {
	return fetcher.EXPECT().
		Fetch(OfTarget(source.MethodPost, testSite+loginPath)).
		Return(&source.FetchResult{StatusCode: 200, Body: []byte("<html><body>Welcome back</body></html>")}, nil)
}

func searchURLFor(term string) string {
	return testSite + "/browse.php?search=" + term + categories
}
