// Package importcmd implements the import command.
package importcmd

import (
	"context"

	"github.com/spf13/cobra"

	"ccledger/qianji-csv/cmd/root"
	"ccledger/qianji-csv/internal/importer"
	"ccledger/qianji-csv/internal/logging"
)

// Cmd represents the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import a Qianji CSV export into the ledger",
	Long: `Import parses a Qianji CSV export, maps every row to a normalized
transaction and persists them in batches. Rows already imported are skipped,
malformed rows are counted but never abort the run.`,
	Run: importFunc,
}

func importFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("No input file given, use --input")
	}

	ledger, err := root.OpenLedger()
	if err != nil {
		root.Log.Fatalf("Error opening ledger: %v", err)
	}
	classifier, err := root.NewClassifier()
	if err != nil {
		root.Log.Fatalf("Error loading category mappings: %v", err)
	}

	imp := importer.New(ledger, classifier, root.NewLogger())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range imp.Progress() {
			root.Log.WithField(logging.FieldPhase, p.Phase).Debugf("%s (%d/%d)", p.Message, p.Current, p.Total)
			if p.Phase == importer.PhaseDone || p.Phase == importer.PhaseFailed {
				return
			}
		}
	}()

	result, err := imp.Import(context.Background(), root.SharedFlags.Input, root.SharedFlags.Owner, root.ImportOptions())
	<-done
	if err != nil {
		root.Log.Fatalf("Import failed: %v", err)
	}

	root.Log.Infof("Import finished: %d imported, %d skipped, %d failed, %d total",
		result.Imported, result.Skipped, result.Failed, result.Total)
}
