package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "smilesfmt",
		Short:         "Decode, edit, and re-encode SMILES structures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newParseCmd(),
		newEncodeCmd(),
		newAddHCmd(),
		newRemoveHCmd(),
	)

	return cmd
}
