package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/league-stats-service/internal/store"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the league database DDL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), store.Schema)
			return err
		},
	}
}
