package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var pollOnlyOnce bool

func init() {
	cmdPoll := &cobra.Command{
		Use:   "poll",
		Short: "Polls the newest releases and stores them.",
		RunE:  pollReleases,
	}
	cmdPoll.Flags().BoolVar(&pollOnlyOnce, "once", false, "Poll a single time and exit")
	rootCmd.AddCommand(cmdPoll)
}

func pollReleases(_ *cobra.Command, _ []string) error {
	p, err := newPoller()
	if err != nil {
		return err
	}
	defer func() {
		_ = p.Close()
	}()
	if pollOnlyOnce {
		p.pollOnce()
		return nil
	}
	ctx, cancel := signalContext()
	defer cancel()
	return runSchedule(ctx, p)
}

// runSchedule polls right away and then every time the provider allows it, until the context is done.
func runSchedule(ctx context.Context, p *poller) error {
	scheduler := cron.New()
	spec := fmt.Sprintf("@every %s", p.provider.MinPollInterval())
	if _, err := scheduler.AddFunc(spec, p.pollOnce); err != nil {
		return err
	}
	log.Infof("Polling %s %s", p.provider.Name(), spec)
	p.pollOnce()
	scheduler.Start()
	<-ctx.Done()
	<-scheduler.Stop().Done()
	return nil
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(signals)
	}()
	return ctx, cancel
}
