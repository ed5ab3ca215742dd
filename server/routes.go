package server

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func (s *Server) setupRoutes(r *gin.Engine) {
	r.GET("/health", s.HealthCheck)
	r.GET("/status", s.Status)
	r.GET("/rss", s.rssHandler)

	// Torznab
	torznab := r.Group("torznab")
	{
		torznab.GET("/", s.torznabHandler)
		torznab.GET("/api", s.torznabHandler)
	}

	// download routes
	r.HEAD("/d/:token/:filename", s.downloadHandler)
	r.GET("/d/:token/:filename", s.downloadHandler)

	pprof.Register(r)
}
