// Package preview implements the preview command.
package preview

import (
	"github.com/spf13/cobra"

	"ccledger/qianji-csv/cmd/root"
	"ccledger/qianji-csv/internal/importer"
	"ccledger/qianji-csv/internal/store"
)

// Limit is the maximum number of records shown.
var Limit int

// Cmd represents the preview command.
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the first records of a Qianji CSV export without importing",
	Run:   previewFunc,
}

func init() {
	Cmd.Flags().IntVarP(&Limit, "limit", "n", 20, "Maximum number of records to show")
}

func previewFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file given, use --input")
	}

	// preview performs no writes, so no ledger needs to be opened
	imp := importer.New(store.NewMemoryLedger(), nil, root.NewLogger())
	records, err := imp.Preview(root.SharedFlags.Input, Limit)
	if err != nil {
		root.Log.Fatalf("Preview failed: %v", err)
	}

	for _, r := range records {
		root.Log.Infof("%s  %s  %s%s  %s  %s", r.Datetime, r.Kind, r.Amount, r.Currency, r.Category, r.Account1)
	}
	root.Log.Infof("Previewed %d records", len(records))
}
