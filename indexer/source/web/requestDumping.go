package web

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sp0x/surf/jar"
)

const dumpFormatHTML = "html"

// dumpPage writes a fetched body to DumpDir/<host>/<method>_<path>/<unix nanos>_resp.<ext>.
// Request bodies aren't written since the login form carries the password.
func (w *ContentFetcher) dumpPage(body []byte) {
	if w.options.DumpDir == "" {
		return
	}
	state := w.Browser.State()
	if state == nil || state.Request == nil {
		return
	}
	request := state.Request
	dirPath := path.Join(w.options.DumpDir, strings.Replace(request.URL.Host, ":", "_", -1),
		strings.Replace(fmt.Sprintf("%s_%s", request.Method, request.URL.Path), "/", "_", -1))
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		logrus.Warnf("could not create dump directory %s: %v", dirPath, err)
		return
	}
	fileName := fmt.Sprintf("%d_resp.%s", time.Now().UnixNano(), responseDumpFormat(state))
	responseBodyPath := path.Join(dirPath, fileName)
	if err := ioutil.WriteFile(responseBodyPath, body, 0644); err != nil {
		logrus.Warnf("could not dump response body %s. %v", responseBodyPath, err)
		return
	}
	logrus.Debugf("written response body with size %d bytes to %s", len(body), responseBodyPath)
}

func responseDumpFormat(state *jar.State) string {
	if state.Response == nil {
		return dumpFormatHTML
	}
	return contentTypeToFileExtension(state.Response.Header.Get("Content-Type"))
}

func contentTypeToFileExtension(fqContentType string) string {
	contentType := strings.TrimSpace(strings.Split(fqContentType, ";")[0])
	switch contentType {
	case "application/json":
		return "json"
	case "application/x-bittorrent":
		return "torrent"
	}
	return dumpFormatHTML
}
