package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sp0x/scenetime/torrent"
)

func (s *Server) downloadHandler(c *gin.Context) {
	tokenString := c.Param("token")
	filename := c.Param("filename")
	log.WithFields(log.Fields{"filename": filename}).Debugf("Processing download via handler")

	t, err := decodeToken(tokenString, s.sharedKey())
	if err != nil {
		c.String(http.StatusUnauthorized, "Invalid download token")
		return
	}
	if t.Link == "" || t.Site != s.provider.Name() {
		c.String(http.StatusNotFound, "Indexer link not found")
		return
	}
	data, err := s.provider.Download(t.Link)
	if err != nil {
		log.WithFields(log.Fields{"link": t.Link}).Warningf("Download failed: %v", err)
		c.String(http.StatusBadGateway, "Couldn't download the torrent")
		return
	}
	definition, err := torrent.Parse(data)
	if err != nil {
		log.WithFields(log.Fields{"link": t.Link}).Warningf("Downloaded content isn't a torrent: %v", err)
		c.String(http.StatusBadGateway, "The indexer didn't return a torrent")
		return
	}
	log.WithFields(log.Fields{"link": t.Link, "hash": definition.InfoHash}).
		Info("Serving download")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Transfer-Encoding", "binary")
	c.Data(http.StatusOK, "application/x-bittorrent", data)
}
