package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cueflac/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversion outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No conversions recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format(time.DateTime),
					historySource(rec),
					strconv.Itoa(rec.TrackCount),
					strconv.Itoa(rec.FirstTrack),
					historyStatus(rec),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"When", "Source", "Tracks", "First", "Status"}, rows, 3, 4))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	return cmd
}

func historySource(rec history.Record) string {
	base := filepath.Base(rec.SourcePath)
	if rec.Kind == history.KindSheetDisc {
		return fmt.Sprintf("%s (disc %d)", base, rec.DiscNumber)
	}
	return base
}

func historyStatus(rec history.Record) string {
	if rec.Status == history.StatusCompleted {
		return "completed"
	}
	if rec.ErrorMessage != "" {
		return "failed: " + rec.ErrorMessage
	}
	return "failed"
}
