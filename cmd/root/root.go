// Package root contains the root command for the application.
package root

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ccledger/qianji-csv/internal/classify"
	"ccledger/qianji-csv/internal/config"
	"ccledger/qianji-csv/internal/importer"
	"ccledger/qianji-csv/internal/logging"
	"ccledger/qianji-csv/internal/store"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input string
	Owner string
}

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration.
	Cfg *config.Config

	// SharedFlags are the flags common to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "qianji-csv",
		Short: "Import Qianji CSV exports into a normalized ledger.",
		Long: `qianji-csv imports the CSV export of the Qianji mobile ledger app into a
normalized ledger of transactions, categories and accounts. Re-running an
import never duplicates previously imported rows, and unknown categories
and accounts are created on the fly.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to qianji-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			return nil
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input Qianji CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Owner, "owner", "u", "default-user", "Owner id transactions are imported for")
}

// NewLogger wraps the shared logrus instance in the pipeline's Logger
// interface.
func NewLogger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// OpenLedger opens the YAML ledger under the configured data directory.
func OpenLedger() (store.Ledger, error) {
	ledger, err := store.OpenYAMLLedger(Cfg.Data.Directory)
	if err != nil {
		return nil, fmt.Errorf("error opening ledger: %w", err)
	}
	return ledger, nil
}

// NewClassifier builds the category classifier, applying the configured
// mapping override file when one is set.
func NewClassifier() (*classify.CategoryClassifier, error) {
	classifier := classify.NewCategoryClassifier()
	if Cfg.Categories.MappingFile != "" {
		if err := classifier.LoadOverrides(Cfg.Categories.MappingFile); err != nil {
			return nil, err
		}
	}
	return classifier, nil
}

// ImportOptions translates the configured defaults into importer options.
func ImportOptions() importer.Options {
	return importer.Options{
		SkipDuplicates:     Cfg.Import.SkipDuplicates,
		CreateCategories:   Cfg.Import.CreateCategories,
		CreateAccounts:     Cfg.Import.CreateAccounts,
		MergeSubCategories: Cfg.Import.MergeSubCategories,
		BatchSize:          Cfg.Import.BatchSize,
	}
}
