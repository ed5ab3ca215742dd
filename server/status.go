package server

import (
	"github.com/gin-gonic/gin"

	"github.com/sp0x/scenetime/indexer/status/models"
)

const (
	latestStatusKey   = "latest"
	latestStatusCount = 10
)

type statusResponse struct {
	Latest  []models.LatestResult `json:"latest"`
	Indexes []models.IndexStatus  `json:"indexes"`
}

func (s *Server) Status(c *gin.Context) {
	var latest []models.LatestResult
	if cached, ok := s.statusCache.Get(latestStatusKey); ok {
		latest = cached.([]models.LatestResult)
	} else {
		latest = s.latestResults()
		s.statusCache.Add(latestStatusKey, latest)
	}
	statusObj := statusResponse{
		Latest:  latest,
		Indexes: []models.IndexStatus{*s.provider.Status()},
	}
	c.JSON(200, statusObj)
}

func (s *Server) latestResults() []models.LatestResult {
	records := s.poller.Latest(latestStatusCount)
	latest := make([]models.LatestResult, len(records))
	for i, record := range records {
		latest[i] = models.LatestResult{
			Name: record.Title,
			Size: record.SizeStr(),
			Site: s.provider.Name(),
			Link: record.Link,
		}
	}
	return latest
}
