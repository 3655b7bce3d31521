package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cx-luo/go-smiles/smiles"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <smiles>",
		Short: "Decode a SMILES string and re-encode it, as a round-trip check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := smiles.NewWorkspace()
			if _, err := w.AddStructure(args[0]); err != nil {
				return err
			}
			var parts []string
			for _, root := range w.FindStructureRoots() {
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
