package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cx-luo/go-smiles/smiles"
)

func newRemoveHCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "removeh <smiles>",
		Short: "Decode a SMILES string, strip explicit hydrogen atoms, and re-encode it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := smiles.NewWorkspace()
			root, err := w.AddStructure(args[0])
			if err != nil {
				return err
			}
			w.RemoveHydrogens()
			out, ok := w.Encode(root)
			if !ok {
				return fmt.Errorf("smilesfmt: encode failed for root atom")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
