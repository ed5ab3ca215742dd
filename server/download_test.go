package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/gomega"
)

func TestServer_downloadHandler(t *testing.T) {
	g := NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s, provider, _ := newTestServer(t, ctrl)
	link := testURL + "/download.php/1/test.torrent"

	provider.EXPECT().Download(link).Return([]byte(sampleTorrent), nil)
	rec := serve(s, http.MethodGet, "/d/"+tokenFor(t, testSite, link)+"/test.torrent")

	g.Expect(rec.Code).To(Equal(http.StatusOK))
	g.Expect(rec.Header().Get("Content-Type")).To(Equal("application/x-bittorrent"))
	g.Expect(rec.Header().Get("Content-Disposition")).To(Equal("attachment; filename=test.torrent"))
	g.Expect(rec.Body.String()).To(Equal(sampleTorrent))
}

func TestServer_downloadHandler_ShouldRejectBadTokens(t *testing.T) {
	g := NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s, _, _ := newTestServer(t, ctrl)

	rec := serve(s, http.MethodGet, "/d/demotoken/test.torrent")
	g.Expect(rec.Code).To(Equal(http.StatusUnauthorized))

	rec = serve(s, http.MethodGet, "/d/"+tokenFor(t, "OtherSite", "https://example.org/file.torrent")+"/test.torrent")
	g.Expect(rec.Code).To(Equal(http.StatusNotFound))

	rec = serve(s, http.MethodGet, "/d/"+tokenFor(t, testSite, "")+"/test.torrent")
	g.Expect(rec.Code).To(Equal(http.StatusNotFound))
}

func TestServer_downloadHandler_ShouldRejectNonTorrents(t *testing.T) {
	g := NewGomegaWithT(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s, provider, _ := newTestServer(t, ctrl)
	link := testURL + "/download.php/1/test.torrent"

	provider.EXPECT().Download(link).Return([]byte("<html>login</html>"), nil)
	rec := serve(s, http.MethodGet, "/d/"+tokenFor(t, testSite, link)+"/test.torrent")
	g.Expect(rec.Code).To(Equal(http.StatusBadGateway))

	provider.EXPECT().Download(link).Return(nil, errors.New("offline"))
	rec = serve(s, http.MethodGet, "/d/"+tokenFor(t, testSite, link)+"/test.torrent")
	g.Expect(rec.Code).To(Equal(http.StatusBadGateway))
}
