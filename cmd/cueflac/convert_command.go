package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"cueflac/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var destDir string
	var fallbackEncoding string
	var ignoreSheets bool
	var onlyTopDir bool
	var keepTemp bool

	cmd := &cobra.Command{
		Use:   "convert [source-dir]",
		Short: "Convert every sheet (or raw audio file) beneath a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dest") {
				cfg.Paths.DestDir = destDir
			}
			if cmd.Flags().Changed("fallback-encoding") {
				cfg.Sheets.FallbackEncoding = fallbackEncoding
			}
			if ignoreSheets {
				cfg.Sheets.Ignore = true
			}
			if onlyTopDir {
				cfg.Scan.OnlyTopDir = true
			}
			if keepTemp {
				cfg.Debug.KeepTemp = true
			}

			logger, err := ctx.buildLogger()
			if err != nil {
				return err
			}
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			sourceDir := "."
			if len(args) == 1 {
				sourceDir = args[0]
			}

			converter := convert.New(cfg, logger, store)
			results, err := converter.Run(cmd.Context(), sourceDir)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to convert")
				return nil
			}

			rows := make([][]string, 0, len(results))
			failed := 0
			for _, result := range results {
				status := "ok"
				if result.Err != nil {
					status = result.Err.Error()
					failed++
				}
				rows = append(rows, []string{
					filepath.Base(result.Source),
					result.Kind,
					strconv.Itoa(result.Discs),
					strconv.Itoa(result.Tracks),
					status,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Source", "Kind", "Discs", "Tracks", "Status"}, rows, 3, 4))

			// Partial failure still exits zero; the table tells the story.
			if failed == len(results) {
				return errors.New(pluralize(failed, "conversion") + " failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&destDir, "dest", "d", "", "Destination directory (absolute, or relative to each source)")
	cmd.Flags().StringVar(&fallbackEncoding, "fallback-encoding", "", "Encoding tried when a sheet is not valid UTF-8")
	cmd.Flags().BoolVar(&ignoreSheets, "ignore-sheets", false, "Skip sheets and convert raw audio files directly")
	cmd.Flags().BoolVar(&onlyTopDir, "only-top-dir", false, "Scan only the top-level directory")
	cmd.Flags().BoolVar(&keepTemp, "keep-temp", false, "Preserve per-disc temporary directories for inspection")
	return cmd
}

func pluralize(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}
