package web

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/f2prateek/train"
	trainlog "github.com/f2prateek/train/log"
	"github.com/sirupsen/logrus"
	"github.com/sp0x/surf"
	"github.com/sp0x/surf/browser"
	"golang.org/x/net/proxy"
	"golang.org/x/net/publicsuffix"
)

const dialTimeout = 5 * time.Second

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/83.0.4103.116 Safari/537.36"

// NewBrowser creates a browser with a cookie jar that keeps the site session.
// The transport honours SOCKS_PROXY, TLS_INSECURE and DEBUG_HTTP.
func NewBrowser(transport http.RoundTripper) (browser.Browsable, error) {
	browsr := surf.NewBrowser()
	browsr.SetUserAgent(userAgent)
	browsr.SetAttribute(browser.SendReferer, true)
	browsr.SetAttribute(browser.MetaRefreshHandling, true)

	cookies, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	browsr.SetCookieJar(cookies)

	opts := transportOptionsFromEnv()
	if transport == nil {
		if transport, err = createTransport(opts); err != nil {
			return nil, err
		}
	}
	transport, err = withDebugLogging(transport, opts.debugHTTP)
	if err != nil {
		return nil, err
	}
	browsr.SetTransport(transport)
	return browsr, nil
}

type transportOptions struct {
	socksProxy  string
	insecureTLS bool
	debugHTTP   string
}

func transportOptionsFromEnv() transportOptions {
	_, insecure := os.LookupEnv("TLS_INSECURE")
	return transportOptions{
		socksProxy:  os.Getenv("SOCKS_PROXY"),
		insecureTLS: insecure,
		debugHTTP:   os.Getenv("DEBUG_HTTP"),
	}
}

// withDebugLogging wraps the transport with a train logger that writes to stderr.
func withDebugLogging(transport http.RoundTripper, mode string) (http.RoundTripper, error) {
	switch mode {
	case "":
		return transport, nil
	case "1", "true", "basic":
		return train.TransportWith(transport, trainlog.New(os.Stderr, trainlog.Basic)), nil
	case "body":
		return train.TransportWith(transport, trainlog.New(os.Stderr, trainlog.Body)), nil
	default:
		return nil, fmt.Errorf("unknown value for DEBUG_HTTP: %s", mode)
	}
}

func createTransport(opts transportOptions) (http.RoundTripper, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}
	t := &http.Transport{
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: dialTimeout,
	}
	if opts.socksProxy != "" {
		logrus.WithField("addr", opts.socksProxy).Debug("Using SOCKS5 proxy")
		socks, err := proxy.SOCKS5("tcp", opts.socksProxy, nil, dialer)
		if err != nil {
			return nil, fmt.Errorf("can't connect to the proxy %s: %w", opts.socksProxy, err)
		}
		contextDialer, ok := socks.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("proxy %s doesn't support dialing with a context", opts.socksProxy)
		}
		t.DialContext = contextDialer.DialContext
	}
	if opts.insecureTLS {
		t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}
	return t, nil
}
