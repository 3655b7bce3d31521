package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cx-luo/go-smiles/smiles"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <smiles>",
		Short: "Decode a SMILES string and print its atoms and bonds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := smiles.NewWorkspace()
			root, err := w.AddStructure(args[0])
			if err != nil {
				return err
			}

			atoms, _ := w.GetAtomsOfStructure(root)
			for i, id := range atoms {
				atom, _ := w.Atom(id)
				fmt.Fprintf(cmd.OutOrStdout(), "atom %d: %s\n", i, atom.Token())
				for _, nb := range w.OutgoingNeighbors(id) {
					bond, _, _ := w.Bond(id, nb)
					fmt.Fprintf(cmd.OutOrStdout(), "  bond %s -> neighbor\n", bond.Type.Token())
				}
			}
			return nil
		},
	}
}
