package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"cueflac/internal/preflight"
)

func newPreflightCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preflight [source-dir]",
		Short: "Check external tools and directory access",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			sourceDir := ""
			if len(args) == 1 {
				if sourceDir, err = filepath.Abs(args[0]); err != nil {
					return err
				}
			}

			results := preflight.RunAll(cmd.Context(), cfg, sourceDir)
			rows := make([][]string, 0, len(results))
			for _, result := range results {
				status := "ok"
				if !result.Passed {
					status = "FAIL"
				}
				rows = append(rows, []string{result.Name, status, result.Detail})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Check", "Status", "Detail"}, rows))

			if !preflight.AllPassed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}
}
