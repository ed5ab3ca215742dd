package config

import (
	"github.com/spf13/viper"
)

// ViperConfig reads settings from viper, which merges the config file, env and flags.
type ViperConfig struct{}

func (v *ViperConfig) Set(key string, value interface{}) {
	viper.Set(key, value)
}

func (v *ViperConfig) Get(key string) interface{} {
	return viper.Get(key)
}

func (v *ViperConfig) GetInt(param string) int {
	return viper.GetInt(param)
}

func (v *ViperConfig) GetString(param string) string {
	return viper.GetString(param)
}

func (v *ViperConfig) GetBool(param string) bool {
	return viper.GetBool(param)
}

func (v *ViperConfig) GetFloat64(param string) float64 {
	return viper.GetFloat64(param)
}

func (v *ViperConfig) GetBytes(param string) []byte {
	return []byte(viper.GetString(param))
}
