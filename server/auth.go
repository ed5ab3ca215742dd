package server

import (
	"crypto/sha1"
	"crypto/subtle"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// sharedKey gets the hash of the api key or passphrase that's configured in our server.
// If no key or passphrase is given, a random key is used until the server stops.
func (s *Server) sharedKey() []byte {
	switch {
	case len(s.Params.APIKey) > 0:
		return s.Params.APIKey
	case s.Params.Passphrase != "":
		hash := sha1.Sum([]byte(s.Params.Passphrase))
		return []byte(fmt.Sprintf("%x", hash[0:16]))
	default:
		return []byte(fmt.Sprintf("%x", s.randomKey))
	}
}

func (s *Server) checkAPIKey(inputKey string) bool {
	if inputKey == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(inputKey), s.sharedKey()) == 1 {
		return true
	}
	log.Warning("Incorrect api key")
	return false
}
