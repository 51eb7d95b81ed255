// Package validate implements the validate command.
package validate

import (
	"os"

	"github.com/spf13/cobra"

	"ccledger/qianji-csv/cmd/root"
	"ccledger/qianji-csv/internal/importer"
	"ccledger/qianji-csv/internal/store"
)

// Cmd represents the validate command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a file is a Qianji CSV export",
	Run:   validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file given, use --input")
	}

	imp := importer.New(store.NewMemoryLedger(), nil, root.NewLogger())
	if !imp.Validate(root.SharedFlags.Input) {
		root.Log.Errorf("%s is not a valid Qianji export", root.SharedFlags.Input)
		os.Exit(1)
	}
	root.Log.Infof("%s is a valid Qianji export", root.SharedFlags.Input)
}
