// Package export writes an owner's imported transactions back out as a
// normalized CSV file.
package export

import (
	"fmt"
	"os"
	"sort"

	"github.com/gocarina/gocsv"

	"ccledger/qianji-csv/internal/logging"
	"ccledger/qianji-csv/internal/models"
	"ccledger/qianji-csv/internal/qianji"
	"ccledger/qianji-csv/internal/store"
)

// Row is one line of the exported CSV.
type Row struct {
	Date     string `csv:"时间"`
	Kind     string `csv:"类型"`
	Amount   string `csv:"金额"`
	Category string `csv:"分类"`
	Account  string `csv:"账户"`
	Note     string `csv:"备注"`
}

// Exporter writes ledger transactions to CSV.
type Exporter struct {
	ledger store.Ledger
	logger logging.Logger
}

// New creates an Exporter. A nil logger gets a default one.
func New(ledger store.Ledger, logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Exporter{ledger: ledger, logger: logger}
}

// WriteFile exports all non-deleted transactions of the owner to csvPath,
// ordered by transaction date. Category and account ids are resolved to
// display names; unresolvable ids are written as-is rather than failing
// the export.
func (e *Exporter) WriteFile(userID, csvPath string) error {
	transactions, err := e.ledger.TransactionsByUser(userID)
	if err != nil {
		return fmt.Errorf("error loading transactions: %w", err)
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].TransactionDate.Before(transactions[j].TransactionDate)
	})

	rows := make([]Row, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, Row{
			Date:     tx.TransactionDate.Format(qianji.DateTimeLayout),
			Kind:     e.kindOf(tx),
			Amount:   models.FormatCents(tx.AmountCents),
			Category: e.categoryName(tx.CategoryID),
			Account:  e.accountName(tx.AccountID),
			Note:     tx.Note,
		})
	}

	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("error creating export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			e.logger.WithError(cerr).Warn("Failed to close export file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("error writing export file: %w", err)
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: csvPath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	).Info("Exported transactions to CSV")
	return nil
}

func (e *Exporter) kindOf(tx models.Transaction) string {
	if tx.AmountCents < 0 {
		return qianji.KindRefund
	}
	if category, err := e.ledger.FindCategoryByID(tx.CategoryID); err == nil && category.Type == models.CategoryTypeIncome {
		return qianji.KindIncome
	}
	return qianji.KindExpense
}

func (e *Exporter) categoryName(id string) string {
	if category, err := e.ledger.FindCategoryByID(id); err == nil {
		return category.Name
	}
	return id
}

func (e *Exporter) accountName(id string) string {
	if account, err := e.ledger.FindAccountByID(id); err == nil {
		return account.Name
	}
	return id
}
