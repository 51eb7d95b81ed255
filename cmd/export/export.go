// Package export implements the export command.
package export

import (
	"github.com/spf13/cobra"

	"ccledger/qianji-csv/cmd/root"
	exporter "ccledger/qianji-csv/internal/export"
)

// Output is the path of the CSV file to write.
var Output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export an owner's imported transactions to CSV",
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Output, "output", "o", "transactions.csv", "Output CSV file")
}

func exportFunc(cmd *cobra.Command, args []string) {
	ledger, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}

	e := exporter.New(ledger, root.NewLogger())
	if err := e.WriteFile(root.SharedFlags.Owner, Output); err != nil {
		root.Log.Fatalf("Export failed: %v", err)
	}
	root.Log.Infof("Exported transactions to %s", Output)
}
