package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cx-luo/go-smiles/smiles"
)

func newAddHCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "addh <smiles>",
		Short: "Decode a SMILES string, add explicit hydrogens, and re-encode it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := smiles.NewWorkspace()
			if _, err := w.AddStructure(args[0]); err != nil {
				return err
			}
			var parts []string
			for _, root := range w.FindStructureRoots() {
				if !w.AddHydrogenToStructure(root) {
					return fmt.Errorf("smilesfmt: could not add hydrogens to structure")
				}
				out, ok := w.Encode(root)
				if !ok {
					return fmt.Errorf("smilesfmt: encode failed for root atom")
				}
				parts = append(parts, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, "."))
			return nil
		},
	}
}
