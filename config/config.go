package config

import (
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

var appname = "scenetime"

//go:generate mockgen -destination=mocks/mock_config.go -package=mocks . Config
type Config interface {
	GetInt(key string) int
	GetString(key string) string
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetBytes(key string) []byte
	Get(key string) interface{}
	Set(key string, value interface{})
}

// defaults are used for settings that have no value.
var defaults = map[string]interface{}{
	"url":        "https://www.scenetime.com",
	"minseed":    0,
	"minleech":   0,
	"timeout":    30,
	"rate_limit": 1.0,
	"port":       5000,
	"storage":    "boltdb",
}

func GetMinLogLevel(c Config) log.Level {
	if c.GetBool("verbose") {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// GetDataPath is the directory in which the app keeps its state.
func GetDataPath(subdir string) string {
	home, _ := homedir.Dir()
	dataDir := path.Join(home, "."+appname, subdir)
	_ = os.MkdirAll(dataDir, os.ModePerm)
	return dataDir
}

// SetDefaults fills in the settings that aren't configured.
func SetDefaults(cfg Config) {
	for key, value := range defaults {
		if cfg.Get(key) == nil {
			cfg.Set(key, value)
		}
	}
	if cfg.Get("db") == nil {
		cfg.Set("db", path.Join(GetDataPath("db"), dbFileName(cfg.GetString("storage"))))
	}
}

func dbFileName(storage string) string {
	if storage == "sqlite" {
		return "main.db"
	}
	return "bolt.db"
}
