package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "scenetime",
	Short: "Searches SceneTime for TV releases and serves them through torznab and RSS.",
}

func init() {
	// A missing .env file is fine, the settings can come from anywhere else.
	_ = godotenv.Load()
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	var username, password string
	var verbose bool
	flags.StringVar(&configFile, "config", "", "The config file to use")
	flags.StringVarP(&username, "username", "u", "", "The username to use")
	flags.StringVarP(&password, "password", "p", "", "The password to use")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Show debug logging")
	_ = viper.BindPFlag("username", flags.Lookup("username"))
	_ = viper.BindPFlag("password", flags.Lookup("password"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	viper.SetEnvPrefix("SCENETIME")
	_ = viper.BindEnv("username")
	_ = viper.BindEnv("password")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
