package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmdTruncate := &cobra.Command{
		Use:     "truncate",
		Aliases: []string{"t"},
		Short:   "Truncates the database",
		RunE:    truncateReleaseDb,
	}
	rootCmd.AddCommand(cmdTruncate)
}

func truncateReleaseDb(_ *cobra.Command, _ []string) error {
	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()
	if err := store.Truncate(); err != nil {
		return err
	}
	fmt.Println("Database truncated.")
	return nil
}
