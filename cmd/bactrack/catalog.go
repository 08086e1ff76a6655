package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the drink catalog",
	}

	catalogCmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Import drinks from a YAML catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := connectRedis(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}
			defer client.Close()

			svc, err := newService(client, opts.cfg)
			if err != nil {
				return err
			}

			imported, err := importCatalogFile(cmd.Context(), svc, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d drinks from %s\n", imported, args[0])
			return nil
		},
	})

	return catalogCmd
}
