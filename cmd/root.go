package cmd

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "invoice-dashboard",
		Short:         "Invoice dashboard backend",
		Long:          "Serves the invoice dashboard API and provisions its demo database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}
