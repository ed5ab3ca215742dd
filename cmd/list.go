package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var releaseCount = 100

func init() {
	cmdList := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Lists the latest stored releases",
		RunE:    listLatestReleases,
	}
	cmdList.Flags().IntVarP(&releaseCount, "count", "c", 100, "Number of releases to display")
	rootCmd.AddCommand(cmdList)
}

func listLatestReleases(_ *cobra.Command, _ []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()
	tabWr := new(tabwriter.Writer)
	tabWr.Init(os.Stdout, 0, 8, 1, '\t', 0)

	records := store.GetLatest(releaseCount)
	for _, record := range records {
		_, _ = fmt.Fprintf(tabWr, "%s\t%s\t%s\t%s\n",
			record.UUID, humanize.Time(record.CreatedAt), record.SizeStr(), record.Title)
	}
	_ = tabWr.Flush()
	fmt.Printf("%s releases stored.\n", humanize.Comma(store.Size()))
	return nil
}
