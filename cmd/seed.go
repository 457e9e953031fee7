package cmd

import (
	"fmt"

	"invoice-dashboard/config"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Provision the tables and demo rows, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(config.Load())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.seeder.Run(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database seeded successfully")
			return nil
		},
	}
}
