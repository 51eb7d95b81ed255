package store

import (
	"strings"
	"sync"

	"ccledger/qianji-csv/internal/models"
)

// MemoryLedger is an in-memory Ledger implementation. It is safe for
// concurrent use and keeps insertion order, which makes test assertions
// deterministic.
type MemoryLedger struct {
	mu           sync.RWMutex
	categories   []models.Category
	accounts     []models.Account
	transactions []models.Transaction
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// FindCategory looks up a top-level category by owner, name and type.
func (m *MemoryLedger) FindCategory(userID, name, categoryType string) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.categories {
		c := &m.categories[i]
		if c.UserID == userID && c.Name == name && c.Type == categoryType && c.ParentID == "" && !c.IsDeleted {
			category := *c
			return &category, nil
		}
	}
	return nil, ErrNotFound
}

// FindChildCategory looks up a category by owner, name and parent id.
func (m *MemoryLedger) FindChildCategory(userID, name, parentID string) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.categories {
		c := &m.categories[i]
		if c.UserID == userID && c.Name == name && c.ParentID == parentID && !c.IsDeleted {
			category := *c
			return &category, nil
		}
	}
	return nil, ErrNotFound
}

// FindCategoryByID looks up a category by its id.
func (m *MemoryLedger) FindCategoryByID(id string) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.categories {
		c := &m.categories[i]
		if c.ID == id && !c.IsDeleted {
			category := *c
			return &category, nil
		}
	}
	return nil, ErrNotFound
}

// CreateCategory stores a new category.
func (m *MemoryLedger) CreateCategory(category models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append(m.categories, category)
	return nil
}

// FindAccountByName looks up an account by owner and name.
func (m *MemoryLedger) FindAccountByName(userID, name string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.accounts {
		a := &m.accounts[i]
		if a.UserID == userID && a.Name == name && !a.IsDeleted {
			account := *a
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

// FindAccountByID looks up an account by its id.
func (m *MemoryLedger) FindAccountByID(id string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.accounts {
		a := &m.accounts[i]
		if a.ID == id && !a.IsDeleted {
			account := *a
			return &account, nil
		}
	}
	return nil, ErrNotFound
}

// CreateAccount stores a new account.
func (m *MemoryLedger) CreateAccount(account models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = append(m.accounts, account)
	return nil
}

// ExistsTransactionWithNote reports whether any non-deleted transaction of
// the owner has a note containing pattern.
func (m *MemoryLedger) ExistsTransactionWithNote(userID, pattern string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.transactions {
		t := &m.transactions[i]
		if t.UserID == userID && !t.IsDeleted && strings.Contains(t.Note, pattern) {
			return true, nil
		}
	}
	return false, nil
}

// InsertTransactionBatch atomically stores a batch of transactions.
func (m *MemoryLedger) InsertTransactionBatch(transactions []models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, transactions...)
	return nil
}

// TransactionsByUser returns all non-deleted transactions of the owner.
func (m *MemoryLedger) TransactionsByUser(userID string) ([]models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []models.Transaction
	for i := range m.transactions {
		t := m.transactions[i]
		if t.UserID == userID && !t.IsDeleted {
			result = append(result, t)
		}
	}
	return result, nil
}

// Accounts returns every stored account. Test helper.
func (m *MemoryLedger) Accounts() []models.Account {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Account{}, m.accounts...)
}

// Categories returns every stored category. Test helper.
func (m *MemoryLedger) Categories() []models.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Category{}, m.categories...)
}
