package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthCheckResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// HealthCheck logs into the provider to see if it's usable.
func (s *Server) HealthCheck(c *gin.Context) {
	output := make(map[string]healthCheckResponse)
	code := http.StatusOK
	if err := s.provider.Login(); err != nil {
		output[s.provider.Name()] = healthCheckResponse{Error: err.Error()}
		code = http.StatusServiceUnavailable
	} else {
		output[s.provider.Name()] = healthCheckResponse{Ok: true}
	}
	c.JSON(code, output)
}
