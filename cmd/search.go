package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sp0x/scenetime/indexer/search"
)

var searchMode string

func init() {
	cmdSearch := &cobra.Command{
		Use:   "search [TERM...]",
		Short: "Searches for releases. Without terms it lists the newest releases.",
		RunE:  searchReleases,
	}
	cmdSearch.Flags().StringVarP(&searchMode, "mode", "m", "episode", "The search mode: season, episode or rss")
	rootCmd.AddCommand(cmdSearch)
}

func searchReleases(_ *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	thresholds := provider.Thresholds()
	log.WithFields(log.Fields{
		"minseed":  thresholds.MinSeeders,
		"minleech": thresholds.MinLeechers,
		"ratio":    provider.SeedRatio(),
	}).Debug("Searching")
	mode := search.ParseMode(searchMode)
	req := search.NewRequest()
	if mode.IsRSS() || len(args) == 0 {
		req = search.NewRSSRequest()
	} else {
		req.Add(mode, args...)
	}
	tabWr := new(tabwriter.Writer)
	tabWr.Init(os.Stdout, 0, 8, 1, '\t', 0)
	releases := provider.Search(req)
	for _, release := range releases {
		_, _ = fmt.Fprintf(tabWr, "%s\t%s\t%s\tS:%d\tL:%d\t%s\n",
			release.LocalID, release.Title, release.SizeStr(), release.Seeders, release.Leechers, release.Link)
	}
	_ = tabWr.Flush()
	if len(releases) == 0 {
		fmt.Println("No releases found.")
	}
	return nil
}
