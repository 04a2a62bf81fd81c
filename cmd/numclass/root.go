package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "numclass",
		Short:         "Number classifier service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newServeCmd(),
		newClassifyCmd(),
	)

	return cmd
}
