// Command smilesfmt decodes, edits, and re-encodes SMILES strings from the
// command line, as a thin wrapper over the smiles package.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "smilesfmt:", err)
		os.Exit(1)
	}
}
