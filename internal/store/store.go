// Package store provides the ledger repository consumed by the import
// pipeline, with an in-memory implementation for tests and dry runs and a
// YAML-file implementation for real use.
package store

import (
	"errors"

	"ccledger/qianji-csv/internal/models"
)

// ErrNotFound is returned by lookups that find no matching entity.
var ErrNotFound = errors.New("entity not found")

// Ledger is the narrow repository interface the import pipeline writes
// through. Batch inserts are all-or-nothing: a batch either fully commits
// or the error aborts the run.
type Ledger interface {
	// FindCategory looks up a top-level category by owner, name and type.
	FindCategory(userID, name, categoryType string) (*models.Category, error)

	// FindChildCategory looks up a category by owner, name and parent id.
	FindChildCategory(userID, name, parentID string) (*models.Category, error)

	// FindCategoryByID looks up a category by its id.
	FindCategoryByID(id string) (*models.Category, error)

	// CreateCategory stores a new category.
	CreateCategory(category models.Category) error

	// FindAccountByName looks up an account by owner and name.
	FindAccountByName(userID, name string) (*models.Account, error)

	// FindAccountByID looks up an account by its id.
	FindAccountByID(id string) (*models.Account, error)

	// CreateAccount stores a new account.
	CreateAccount(account models.Account) error

	// ExistsTransactionWithNote reports whether any non-deleted transaction
	// of the owner has a note containing pattern.
	ExistsTransactionWithNote(userID, pattern string) (bool, error)

	// InsertTransactionBatch atomically stores a batch of transactions.
	InsertTransactionBatch(transactions []models.Transaction) error

	// TransactionsByUser returns all non-deleted transactions of the owner.
	TransactionsByUser(userID string) ([]models.Transaction, error)
}
