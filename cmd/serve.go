package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/sp0x/scenetime/server"
)

func init() {
	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "Runs the torznab and RSS server, polling for new releases in the background.",
		RunE:  serve,
	}
	storage := ""
	port := 5000
	cmdFlags := cmdServe.Flags()
	cmdFlags.StringVarP(&storage, "storage", "o", "boltdb", `The storage backing to use.
Currently supported storage backings: boltdb, sqlite`)
	cmdFlags.IntVarP(&port, "port", "P", 5000, "The port to listen on.")
	_ = viper.BindEnv("port")
	_ = viper.BindPFlag("port", cmdFlags.Lookup("port"))

	_ = viper.BindEnv("api_key")
	_ = viper.BindEnv("passphrase")
	_ = viper.BindEnv("telegram_token")
	// Storage config
	_ = viper.BindPFlag("storage", cmdFlags.Lookup("storage"))
	_ = viper.BindEnv("storage")
	rootCmd.AddCommand(cmdServe)
}

func serve(_ *cobra.Command, _ []string) error {
	p, err := newPoller()
	if err != nil {
		return err
	}
	defer func() {
		_ = p.Close()
	}()
	ctx, cancel := signalContext()
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	rserver := server.NewServer(&appConfig, p.provider, p.rss)
	group.Go(func() error {
		return rserver.Listen(ctx)
	})
	group.Go(func() error {
		return runSchedule(ctx, p)
	})
	if p.notifier != nil {
		group.Go(func() error {
			return p.notifier.Run(ctx)
		})
	}
	return group.Wait()
}
