package server

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	configMocks "github.com/sp0x/scenetime/config/mocks"
	"github.com/sp0x/scenetime/server/mocks"
)

const (
	testKey  = "demotoken"
	testSite = "SceneTime"
	testURL  = "https://www.scenetime.com"

	sampleTorrent = "d8:announce30:http://tracker.example/announce" +
		"4:infod6:lengthi1024e4:name8:test.iso12:piece lengthi16384e6:pieces20:aaaaaaaaaaaaaaaaaaaaee"
)

func newTestServer(t *testing.T, ctrl *gomock.Controller) (*Server, *mocks.MockProvider, *mocks.MockPoller) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := configMocks.NewMockConfig(ctrl)
	cfg.EXPECT().GetInt("port").Return(5000)
	cfg.EXPECT().GetString("hostname").Return("")
	cfg.EXPECT().GetString("path_prefix").Return("")
	cfg.EXPECT().GetBytes("api_key").Return([]byte(testKey))
	cfg.EXPECT().GetString("passphrase").Return("")
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return(testSite).AnyTimes()
	provider.EXPECT().URL().Return(testURL).AnyTimes()
	poller := mocks.NewMockPoller(ctrl)
	return NewServer(cfg, provider, poller), provider, poller
}

func serve(s *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func tokenFor(t *testing.T, site, link string) string {
	t.Helper()
	encoded, err := (&token{Site: site, Link: link}).Encode([]byte(testKey))
	if err != nil {
		t.Fatal(err)
	}
	return encoded
}
