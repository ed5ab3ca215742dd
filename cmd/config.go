package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/sp0x/scenetime/config"
)

const configName = "scenetime"

var appConfig config.ViperConfig

// initConfig reads ~/.scenetime/scenetime.yaml or the file given with --config.
// A default file is written on the first run so the account settings can be filled in.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(config.GetDataPath(""))
		viper.SetConfigType("yaml")
		viper.SetConfigName(configName)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	config.SetDefaults(&appConfig)
	switch err.(type) {
	case nil:
	case viper.ConfigFileNotFoundError:
		if err := viper.SafeWriteConfig(); err != nil {
			log.WithError(err).Warning("Couldn't write the default config file")
		}
	default:
		log.WithError(err).Error("Couldn't read the config file")
		os.Exit(1)
	}
	log.SetLevel(config.GetMinLogLevel(&appConfig))
}
