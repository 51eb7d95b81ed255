// Package mapper converts parsed Qianji records into internal transactions,
// lazily creating the categories and accounts they reference.
package mapper

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"ccledger/qianji-csv/internal/classify"
	"ccledger/qianji-csv/internal/ledgererror"
	"ccledger/qianji-csv/internal/logging"
	"ccledger/qianji-csv/internal/models"
	"ccledger/qianji-csv/internal/qianji"
	"ccledger/qianji-csv/internal/store"
)

// defaultCreditLimitCents is assigned to newly created credit card accounts
// (10000 CNY, matching the source app's default).
const defaultCreditLimitCents int64 = 1000000

// Options controls entity creation during mapping.
type Options struct {
	// CreateCategories allows creating categories missing from the ledger.
	CreateCategories bool
	// CreateAccounts allows creating accounts missing from the ledger.
	CreateAccounts bool
	// MergeSubCategories folds the sub-category into the category hierarchy
	// instead of recording it as a note marker.
	MergeSubCategories bool
}

// Mapper maps Qianji records onto ledger entities. A failed record returns
// an error the caller counts; it never aborts the batch.
type Mapper struct {
	ledger     store.Ledger
	classifier *classify.CategoryClassifier
	logger     logging.Logger
}

// New creates a Mapper. A nil classifier gets the built-in tables, a nil
// logger a default one.
func New(ledger store.Ledger, classifier *classify.CategoryClassifier, logger logging.Logger) *Mapper {
	if classifier == nil {
		classifier = classify.NewCategoryClassifier()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Mapper{ledger: ledger, classifier: classifier, logger: logger}
}

// DedupMarker returns the bracketed external-id token embedded in every
// imported transaction's note. It is the sole duplicate-detection key.
func DedupMarker(externalID string) string {
	return "[钱迹ID: " + externalID + "]"
}

// IsImported reports whether a transaction carrying the record's external
// id already exists for the owner.
func (m *Mapper) IsImported(externalID, userID string) (bool, error) {
	return m.ledger.ExistsTransactionWithNote(userID, DedupMarker(externalID))
}

// MapRecord maps one record to a transaction. Category and account entities
// may be created as a side effect even when a later step fails; creation is
// idempotent by (owner, name, type) lookup, so retries reuse them.
func (m *Mapper) MapRecord(record qianji.Record, userID string, opts Options) (*models.Transaction, error) {
	instant, err := qianji.ParseDateTime(record.Datetime)
	if err != nil {
		return nil, &ledgererror.MappingError{RecordID: record.ID, Reason: "bad timestamp '" + record.Datetime + "'", Err: err}
	}

	categoryID, err := m.mapCategory(record, userID, opts)
	if err != nil {
		return nil, err
	}

	accountID, err := m.resolveAccount(record.Account1, userID, opts.CreateAccounts)
	if err != nil {
		return nil, err
	}

	cents, err := models.CentsFromString(record.Amount)
	if err != nil {
		return nil, &ledgererror.MappingError{RecordID: record.ID, Reason: "bad amount '" + record.Amount + "'", Err: err}
	}
	if record.Kind == qianji.KindRefund {
		cents = -cents
	}

	tx := &models.Transaction{
		ID:              uuid.NewString(),
		UserID:          userID,
		AccountID:       accountID,
		AmountCents:     cents,
		CategoryID:      categoryID,
		Note:            m.composeNote(record, opts.MergeSubCategories),
		LedgerID:        models.DefaultLedgerID,
		TransactionDate: instant,
		CreatedAt:       instant,
		UpdatedAt:       instant,
		SyncStatus:      models.SyncStatusSynced,
	}

	m.logger.WithFields(
		logging.Field{Key: logging.FieldRecordID, Value: record.ID},
		logging.Field{Key: logging.FieldCategory, Value: categoryID},
		logging.Field{Key: logging.FieldAccount, Value: accountID},
	).Debug("Mapped record to transaction")

	return tx, nil
}

// mapCategory resolves the two-level category for a record and returns the
// child category id the transaction will reference.
func (m *Mapper) mapCategory(record qianji.Record, userID string, opts Options) (string, error) {
	pair := m.classifier.Classify(record.Category, record.SubCategory, record.Kind)

	categoryType := models.CategoryTypeExpense
	if record.Kind == qianji.KindIncome {
		categoryType = models.CategoryTypeIncome
	}

	childName := pair.Child
	if !opts.MergeSubCategories {
		// sub-category goes to the note instead; file under the default child
		childName = classify.DefaultChildName
	}

	parent, err := m.ledger.FindCategory(userID, pair.Parent, categoryType)
	if err == store.ErrNotFound {
		if !opts.CreateCategories {
			return "", &ledgererror.MappingError{RecordID: record.ID, Reason: "unknown category '" + pair.Parent + "' and creation disabled"}
		}
		now := time.Now()
		created := models.Category{
			ID:         uuid.NewString(),
			UserID:     userID,
			Name:       pair.Parent,
			Type:       categoryType,
			Icon:       classify.SuggestCategoryIcon(pair.Parent, ""),
			Color:      classify.SuggestCategoryColor(pair.Parent),
			CreatedAt:  now,
			UpdatedAt:  now,
			SyncStatus: models.SyncStatusSynced,
		}
		if err := m.ledger.CreateCategory(created); err != nil {
			return "", &ledgererror.MappingError{RecordID: record.ID, Reason: "creating category '" + pair.Parent + "'", Err: err}
		}
		m.logger.WithField(logging.FieldCategory, created.Name).Debug("Created parent category")
		parent = &created
	} else if err != nil {
		return "", &ledgererror.MappingError{RecordID: record.ID, Reason: "looking up category '" + pair.Parent + "'", Err: err}
	}

	child, err := m.ledger.FindChildCategory(userID, childName, parent.ID)
	if err == store.ErrNotFound {
		if !opts.CreateCategories {
			return "", &ledgererror.MappingError{RecordID: record.ID, Reason: "unknown sub-category '" + childName + "' and creation disabled"}
		}
		now := time.Now()
		created := models.Category{
			ID:         uuid.NewString(),
			UserID:     userID,
			Name:       childName,
			Type:       categoryType,
			Icon:       classify.SuggestCategoryIcon(pair.Parent, childName),
			Color:      parent.Color, // children inherit the parent color
			ParentID:   parent.ID,
			CreatedAt:  now,
			UpdatedAt:  now,
			SyncStatus: models.SyncStatusSynced,
		}
		if err := m.ledger.CreateCategory(created); err != nil {
			return "", &ledgererror.MappingError{RecordID: record.ID, Reason: "creating sub-category '" + childName + "'", Err: err}
		}
		m.logger.WithFields(
			logging.Field{Key: logging.FieldCategory, Value: childName},
			logging.Field{Key: "parent", Value: parent.Name},
		).Debug("Created child category")
		return created.ID, nil
	} else if err != nil {
		return "", &ledgererror.MappingError{RecordID: record.ID, Reason: "looking up sub-category '" + childName + "'", Err: err}
	}
	return child.ID, nil
}

// resolveAccount resolves a Qianji account name to an internal account id.
// Blank names and transfer counterparties collapse onto the reserved
// default account.
func (m *Mapper) resolveAccount(accountName, userID string, createAccounts bool) (string, error) {
	if strings.TrimSpace(accountName) == "" || classify.IsTransferCounterparty(accountName) {
		return m.getOrCreateDefaultAccount(userID)
	}

	name := classify.NormalizeAccountName(accountName)

	existing, err := m.ledger.FindAccountByName(userID, name)
	if err == nil {
		return existing.ID, nil
	}
	if err != store.ErrNotFound {
		return "", &ledgererror.MappingError{Reason: "looking up account '" + name + "'", Err: err}
	}

	if !createAccounts {
		return "", &ledgererror.MappingError{Reason: "unknown account '" + name + "' and creation disabled"}
	}

	accountType := classify.DetectAccountType(name)
	now := time.Now()
	account := models.Account{
		ID:         uuid.NewString(),
		UserID:     userID,
		Name:       name,
		Type:       accountType,
		Currency:   "CNY",
		Icon:       classify.SuggestAccountIcon(name),
		CreatedAt:  now,
		UpdatedAt:  now,
		SyncStatus: models.SyncStatusSynced,
	}
	if accountType == models.AccountTypeCreditCard {
		limit := defaultCreditLimitCents
		account.CreditLimitCents = &limit
	}
	if err := m.ledger.CreateAccount(account); err != nil {
		return "", &ledgererror.MappingError{Reason: "creating account '" + name + "'", Err: err}
	}
	m.logger.WithFields(
		logging.Field{Key: logging.FieldAccount, Value: name},
		logging.Field{Key: "type", Value: accountType},
	).Debug("Created account")
	return account.ID, nil
}

// getOrCreateDefaultAccount returns the reserved cash account for the
// owner, creating it on first use.
func (m *Mapper) getOrCreateDefaultAccount(userID string) (string, error) {
	id := models.DefaultAccountID(userID)
	if _, err := m.ledger.FindAccountByID(id); err == nil {
		return id, nil
	} else if err != store.ErrNotFound {
		return "", &ledgererror.MappingError{Reason: "looking up default account", Err: err}
	}

	now := time.Now()
	account := models.Account{
		ID:         id,
		UserID:     userID,
		Name:       "现金",
		Type:       models.AccountTypeCash,
		Currency:   "CNY",
		Icon:       "💵",
		Color:      "#4CAF50",
		IsDefault:  true,
		CreatedAt:  now,
		UpdatedAt:  now,
		SyncStatus: models.SyncStatusSynced,
	}
	if err := m.ledger.CreateAccount(account); err != nil {
		return "", &ledgererror.MappingError{Reason: "creating default account", Err: err}
	}
	m.logger.WithField(logging.FieldOwner, userID).Debug("Created default cash account")
	return id, nil
}

// composeNote concatenates the original remark, the optional sub-category
// and transfer counterparty markers, the tag marker, and the mandatory
// external-id marker used for deduplication.
func (m *Mapper) composeNote(record qianji.Record, mergedSubCategories bool) string {
	var parts []string

	if record.Remark != "" {
		parts = append(parts, record.Remark)
	}
	if !mergedSubCategories && record.SubCategory != "" {
		parts = append(parts, "[二级分类: "+record.SubCategory+"]")
	}
	if record.Account2 != "" {
		prefix := "转账对象"
		switch record.Kind {
		case qianji.KindIncome:
			prefix = "付款方"
		case qianji.KindExpense:
			prefix = "收款方"
		}
		parts = append(parts, "["+prefix+": "+strings.TrimPrefix(record.Account2, ">")+"]")
	}
	if record.Tags != "" {
		parts = append(parts, "[标签: "+record.Tags+"]")
	}
	parts = append(parts, DedupMarker(record.ID))

	return strings.Join(parts, " ")
}
