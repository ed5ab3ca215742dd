package web

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/onsi/gomega"

	"github.com/sp0x/scenetime/indexer/source"
)

func newTestSite() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/takelogin.php", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		http.SetCookie(w, &http.Cookie{Name: "uid", Value: r.PostForm.Get("username"), Path: "/"})
		_, _ = fmt.Fprint(w, "<html><body>welcome</body></html>")
	})
	mux.HandleFunc("/browse.php", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("uid")
		if err != nil {
			_, _ = fmt.Fprint(w, "<html><body>anonymous</body></html>")
			return
		}
		_, _ = fmt.Fprintf(w, "<html><body>%s searched %s</body></html>", cookie.Value, r.URL.Query().Get("search"))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	})
	return httptest.NewServer(mux)
}

func newTestFetcher(g *gomega.WithT) *ContentFetcher {
	browsr, err := NewBrowser(http.DefaultTransport)
	g.Expect(err).To(gomega.BeNil())
	return NewWebContentFetcher(browsr, FetchOptions{})
}

func TestContentFetcher_ShouldKeepSessionBetweenRequests(t *testing.T) {
	g := gomega.NewWithT(t)
	site := newTestSite()
	defer site.Close()
	fetcher := newTestFetcher(g)

	_, err := fetcher.Fetch(source.NewPostTarget(site.URL+"/takelogin.php", url.Values{"username": {"someone"}}))
	g.Expect(err).To(gomega.BeNil())

	target := source.NewTarget(site.URL + "/browse.php")
	target.Values = url.Values{"search": {"show"}}
	result, err := fetcher.Fetch(target)

	g.Expect(err).To(gomega.BeNil())
	g.Expect(result.StatusCode).To(gomega.Equal(http.StatusOK))
	g.Expect(result.Text()).To(gomega.ContainSubstring("someone searched show"))
}

func TestContentFetcher_ShouldFailOnUnsuccessfulStatus(t *testing.T) {
	g := gomega.NewWithT(t)
	site := newTestSite()
	defer site.Close()
	fetcher := newTestFetcher(g)

	result, err := fetcher.Fetch(source.NewTarget(site.URL + "/missing"))

	g.Expect(result).To(gomega.BeNil())
	g.Expect(err).To(gomega.BeAssignableToTypeOf(&source.StatusError{}))
	g.Expect(err.(*source.StatusError).Code).To(gomega.Equal(http.StatusNotFound))
}

func TestContentFetcher_ShouldFailOnEmptyBody(t *testing.T) {
	g := gomega.NewWithT(t)
	site := newTestSite()
	defer site.Close()
	fetcher := newTestFetcher(g)

	_, err := fetcher.Fetch(source.NewTarget(site.URL + "/empty"))

	g.Expect(err).To(gomega.Equal(source.ErrEmptyResponse))
}

func TestContentFetcher_ShouldRejectUnknownMethods(t *testing.T) {
	g := gomega.NewWithT(t)
	fetcher := newTestFetcher(g)

	_, err := fetcher.Fetch(&source.SearchTarget{URL: "http://localhost", Method: "delete"})
	g.Expect(err).ToNot(gomega.BeNil())
	_, err = fetcher.Fetch(nil)
	g.Expect(err).ToNot(gomega.BeNil())
}

func TestContentFetcher_ShouldDumpPages(t *testing.T) {
	g := gomega.NewWithT(t)
	site := newTestSite()
	defer site.Close()
	dumpDir, err := ioutil.TempDir("", "dumps")
	g.Expect(err).To(gomega.BeNil())
	defer func() {
		_ = os.RemoveAll(dumpDir)
	}()
	browsr, err := NewBrowser(http.DefaultTransport)
	g.Expect(err).To(gomega.BeNil())
	fetcher := NewWebContentFetcher(browsr, FetchOptions{DumpDir: dumpDir})

	_, err = fetcher.Fetch(source.NewTarget(site.URL + "/browse.php"))
	g.Expect(err).To(gomega.BeNil())

	siteURL, _ := url.Parse(site.URL)
	pageDir := path.Join(dumpDir, strings.Replace(siteURL.Host, ":", "_", -1), "GET__browse.php")
	files, err := ioutil.ReadDir(pageDir)
	g.Expect(err).To(gomega.BeNil())
	g.Expect(files).To(gomega.HaveLen(1))
	g.Expect(files[0].Name()).To(gomega.HaveSuffix("_resp.html"))
	content, _ := ioutil.ReadFile(path.Join(pageDir, files[0].Name()))
	g.Expect(string(content)).To(gomega.ContainSubstring("anonymous"))
}

func TestContentTypeToFileExtension(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(contentTypeToFileExtension("application/json; charset=utf-8")).To(gomega.Equal("json"))
	g.Expect(contentTypeToFileExtension("application/x-bittorrent")).To(gomega.Equal("torrent"))
	g.Expect(contentTypeToFileExtension("")).To(gomega.Equal("html"))
}

func TestWithDebugLogging(t *testing.T) {
	g := gomega.NewWithT(t)

	transport, err := withDebugLogging(http.DefaultTransport, "")
	g.Expect(err).To(gomega.BeNil())
	g.Expect(transport).To(gomega.Equal(http.DefaultTransport))

	transport, err = withDebugLogging(http.DefaultTransport, "body")
	g.Expect(err).To(gomega.BeNil())
	g.Expect(transport).ToNot(gomega.Equal(http.DefaultTransport))

	_, err = withDebugLogging(http.DefaultTransport, "verbose")
	g.Expect(err).ToNot(gomega.BeNil())
}

func TestCreateTransport_ShouldSkipVerificationWhenInsecure(t *testing.T) {
	g := gomega.NewWithT(t)

	transport, err := createTransport(transportOptions{insecureTLS: true})

	g.Expect(err).To(gomega.BeNil())
	httpTransport, ok := transport.(*http.Transport)
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(httpTransport.TLSClientConfig.InsecureSkipVerify).To(gomega.BeTrue())
}
