package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bandctl",
		Short:         "Operator utilities for the band site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newHashCommand())
	rootCmd.AddCommand(newCheckHashCommand())
	rootCmd.AddCommand(newSetupCommand())
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}
