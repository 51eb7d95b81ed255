package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ccledger/qianji-csv/internal/models"
)

const (
	accountsFile     = "accounts.yaml"
	categoriesFile   = "categories.yaml"
	transactionsFile = "transactions.yaml"

	filePermission = 0600
	dirPermission  = 0750
)

// YAMLLedger is a Ledger persisted as YAML files under a data directory.
// All queries run against an in-memory copy; every mutation rewrites the
// affected file atomically (write to a temp file, then rename), so a batch
// insert either fully lands on disk or not at all.
type YAMLLedger struct {
	dir string
	mem *MemoryLedger
}

// OpenYAMLLedger loads (or initializes) a YAML ledger under dir.
func OpenYAMLLedger(dir string) (*YAMLLedger, error) {
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	l := &YAMLLedger{dir: dir, mem: NewMemoryLedger()}

	if err := loadYAML(filepath.Join(dir, accountsFile), &l.mem.accounts); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, categoriesFile), &l.mem.categories); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, transactionsFile), &l.mem.transactions); err != nil {
		return nil, err
	}
	return l, nil
}

// FindCategory looks up a top-level category by owner, name and type.
func (l *YAMLLedger) FindCategory(userID, name, categoryType string) (*models.Category, error) {
	return l.mem.FindCategory(userID, name, categoryType)
}

// FindChildCategory looks up a category by owner, name and parent id.
func (l *YAMLLedger) FindChildCategory(userID, name, parentID string) (*models.Category, error) {
	return l.mem.FindChildCategory(userID, name, parentID)
}

// FindCategoryByID looks up a category by its id.
func (l *YAMLLedger) FindCategoryByID(id string) (*models.Category, error) {
	return l.mem.FindCategoryByID(id)
}

// CreateCategory stores a new category and persists the category file.
func (l *YAMLLedger) CreateCategory(category models.Category) error {
	if err := l.mem.CreateCategory(category); err != nil {
		return err
	}
	return l.saveCategories()
}

// FindAccountByName looks up an account by owner and name.
func (l *YAMLLedger) FindAccountByName(userID, name string) (*models.Account, error) {
	return l.mem.FindAccountByName(userID, name)
}

// FindAccountByID looks up an account by its id.
func (l *YAMLLedger) FindAccountByID(id string) (*models.Account, error) {
	return l.mem.FindAccountByID(id)
}

// CreateAccount stores a new account and persists the account file.
func (l *YAMLLedger) CreateAccount(account models.Account) error {
	if err := l.mem.CreateAccount(account); err != nil {
		return err
	}
	return l.saveAccounts()
}

// ExistsTransactionWithNote reports whether any non-deleted transaction of
// the owner has a note containing pattern.
func (l *YAMLLedger) ExistsTransactionWithNote(userID, pattern string) (bool, error) {
	return l.mem.ExistsTransactionWithNote(userID, pattern)
}

// InsertTransactionBatch stores a batch and persists the transaction file.
// The in-memory append is rolled back if the write fails, so memory and
// disk stay consistent.
func (l *YAMLLedger) InsertTransactionBatch(transactions []models.Transaction) error {
	l.mem.mu.Lock()
	before := len(l.mem.transactions)
	l.mem.transactions = append(l.mem.transactions, transactions...)
	l.mem.mu.Unlock()

	if err := l.saveTransactions(); err != nil {
		l.mem.mu.Lock()
		l.mem.transactions = l.mem.transactions[:before]
		l.mem.mu.Unlock()
		return err
	}
	return nil
}

// TransactionsByUser returns all non-deleted transactions of the owner.
func (l *YAMLLedger) TransactionsByUser(userID string) ([]models.Transaction, error) {
	return l.mem.TransactionsByUser(userID)
}

func (l *YAMLLedger) saveAccounts() error {
	l.mem.mu.RLock()
	defer l.mem.mu.RUnlock()
	return saveYAML(filepath.Join(l.dir, accountsFile), l.mem.accounts)
}

func (l *YAMLLedger) saveCategories() error {
	l.mem.mu.RLock()
	defer l.mem.mu.RUnlock()
	return saveYAML(filepath.Join(l.dir, categoriesFile), l.mem.categories)
}

func (l *YAMLLedger) saveTransactions() error {
	l.mem.mu.RLock()
	defer l.mem.mu.RUnlock()
	return saveYAML(filepath.Join(l.dir, transactionsFile), l.mem.transactions)
}

func loadYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}
	return nil
}

func saveYAML(path string, value interface{}) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, filePermission); err != nil {
		return fmt.Errorf("error writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("error replacing %s: %w", path, err)
	}
	return nil
}
