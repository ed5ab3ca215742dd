package main

import (
	"fmt"
	"io/ioutil"
	"path"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sp0x/scenetime/torrent"
)

var fetchOutput string

func init() {
	cmdFetch := &cobra.Command{
		Use:   "fetch LINK",
		Short: "Downloads the torrent file of a release.",
		Args:  cobra.ExactArgs(1),
		RunE:  fetchTorrent,
	}
	cmdFetch.Flags().StringVarP(&fetchOutput, "output", "o", "", "The file to write, defaults to the name in the link")
	rootCmd.AddCommand(cmdFetch)
}

func fetchTorrent(_ *cobra.Command, args []string) error {
	provider, err := newProvider()
	if err != nil {
		return err
	}
	link := args[0]
	data, err := provider.Download(link)
	if err != nil {
		return err
	}
	definition, err := torrent.Parse(data)
	if err != nil {
		return fmt.Errorf("couldn't read the downloaded torrent: %w", err)
	}
	output := fetchOutput
	if output == "" {
		output = path.Base(link)
	}
	if err := ioutil.WriteFile(output, data, 0644); err != nil {
		return err
	}
	fmt.Printf("%s (%s, %d files)\n%s\nSaved to %s\n", definition.Name,
		humanize.IBytes(uint64(definition.Size())), len(definition.Files), definition.MagnetURL(), output)
	printKnownRelease(link)
	return nil
}

// printKnownRelease tells when a poll first found the release, if it did.
func printKnownRelease(link string) {
	store, err := openStorage()
	if err != nil {
		log.WithError(err).Debug("Couldn't open the release storage")
		return
	}
	defer func() {
		_ = store.Close()
	}()
	record, err := store.Find(link)
	if err != nil || record == nil {
		return
	}
	fmt.Printf("First seen %s as %s\n", humanize.Time(record.CreatedAt), record.Title)
}
