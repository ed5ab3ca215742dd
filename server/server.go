package server

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/config"
	"github.com/sp0x/scenetime/indexer/cache"
	"github.com/sp0x/scenetime/torznab"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	provider    Provider
	poller      Poller
	shows       torznab.ShowLookup
	statusCache *cache.TTL
	randomKey   []byte
	Params      Params
}

type Params struct {
	Port       int
	Hostname   string
	PathPrefix string
	APIKey     []byte
	Passphrase string
	Version    string
}

// NewServer creates the http front of the provider.
func NewServer(cfg config.Config, provider Provider, poller Poller) *Server {
	statusCache, _ := cache.NewTTL(10, 3*time.Minute)
	s := &Server{
		provider:    provider,
		poller:      poller,
		shows:       torznab.TVMaze(),
		statusCache: statusCache,
		randomKey:   make([]byte, 16),
		Params: Params{
			Port:       cfg.GetInt("port"),
			Hostname:   cfg.GetString("hostname"),
			PathPrefix: cfg.GetString("path_prefix"),
			APIKey:     cfg.GetBytes("api_key"),
			Passphrase: cfg.GetString("passphrase"),
		},
	}
	_, _ = rand.Read(s.randomKey)
	return s
}

// SetShowLookup replaces the service used to resolve show ids.
func (s *Server) SetShowLookup(lookup torznab.ShowLookup) {
	s.shows = lookup
}

// Engine builds the router with all the routes of the server.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	s.setupRoutes(r)
	return r
}

// Listen serves until the context is done.
func (s *Server) Listen(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.Params.Hostname, s.Params.Port),
		Handler: s.Engine(),
	}
	errs := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		errs <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errs:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) baseURL(r *http.Request, appendPath string) (*url.URL, error) {
	proto := "http"
	if r.TLS != nil {
		proto = "https"
	}
	return url.Parse(fmt.Sprintf("%s://%s%s", proto, r.Host,
		path.Join("/", s.Params.PathPrefix, appendPath)))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"status":  c.Writer.Status(),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"elapsed": time.Since(started),
		}).Debug("Request")
	}
}
