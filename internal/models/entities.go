// Package models defines the normalized ledger entities produced by the
// import pipeline and the constants shared across packages.
package models

import "time"

// Sync status markers carried by every entity.
const (
	SyncStatusSynced  = "SYNCED"
	SyncStatusPending = "PENDING_SYNC"
)

// Category types. A category's type is fixed at creation and must match the
// type of every transaction referencing it.
const (
	CategoryTypeExpense = "EXPENSE"
	CategoryTypeIncome  = "INCOME"
)

// Account type tags.
const (
	AccountTypeCash       = "CASH"
	AccountTypeBankCard   = "BANK_CARD"
	AccountTypeCreditCard = "CREDIT_CARD"
	AccountTypeAlipay     = "ALIPAY"
	AccountTypeWechat     = "WECHAT"
	AccountTypeOther      = "OTHER"
)

// DefaultLedgerID is the ledger book new transactions are filed under.
const DefaultLedgerID = "default"

// Transaction is a normalized ledger entry. Amounts are signed integer
// minor units (cents); refunds carry a negative amount.
type Transaction struct {
	ID              string    `json:"id" yaml:"id"`
	UserID          string    `json:"user_id" yaml:"user_id"`
	AccountID       string    `json:"account_id" yaml:"account_id"`
	AmountCents     int64     `json:"amount_cents" yaml:"amount_cents"`
	CategoryID      string    `json:"category_id" yaml:"category_id"`
	Note            string    `json:"note,omitempty" yaml:"note,omitempty"`
	LedgerID        string    `json:"ledger_id" yaml:"ledger_id"`
	TransactionDate time.Time `json:"transaction_date" yaml:"transaction_date"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" yaml:"updated_at"`
	IsDeleted       bool      `json:"is_deleted" yaml:"is_deleted"`
	SyncStatus      string    `json:"sync_status" yaml:"sync_status"`
}

// Category is a spending or income category. Categories form a two-level
// hierarchy: ParentID is empty for top-level categories.
type Category struct {
	ID           string    `json:"id" yaml:"id"`
	UserID       string    `json:"user_id" yaml:"user_id"`
	Name         string    `json:"name" yaml:"name"`
	Type         string    `json:"type" yaml:"type"`
	Icon         string    `json:"icon" yaml:"icon"`
	Color        string    `json:"color" yaml:"color"`
	ParentID     string    `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	DisplayOrder int       `json:"display_order" yaml:"display_order"`
	IsSystem     bool      `json:"is_system" yaml:"is_system"`
	UsageCount   int       `json:"usage_count" yaml:"usage_count"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" yaml:"updated_at"`
	IsDeleted    bool      `json:"is_deleted" yaml:"is_deleted"`
	SyncStatus   string    `json:"sync_status" yaml:"sync_status"`
}

// Account is a payment account. Exactly one account per owner may carry the
// default flag; the reserved default account absorbs transactions whose
// external account name is blank or unresolvable.
type Account struct {
	ID               string    `json:"id" yaml:"id"`
	UserID           string    `json:"user_id" yaml:"user_id"`
	Name             string    `json:"name" yaml:"name"`
	Type             string    `json:"type" yaml:"type"`
	BalanceCents     int64     `json:"balance_cents" yaml:"balance_cents"`
	Currency         string    `json:"currency" yaml:"currency"`
	Icon             string    `json:"icon" yaml:"icon"`
	Color            string    `json:"color,omitempty" yaml:"color,omitempty"`
	IsDefault        bool      `json:"is_default" yaml:"is_default"`
	CreditLimitCents *int64    `json:"credit_limit_cents,omitempty" yaml:"credit_limit_cents,omitempty"`
	CreatedAt        time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" yaml:"updated_at"`
	IsDeleted        bool      `json:"is_deleted" yaml:"is_deleted"`
	SyncStatus       string    `json:"sync_status" yaml:"sync_status"`
}

// DefaultAccountID returns the reserved, deterministically-named default
// account id for an owner.
func DefaultAccountID(userID string) string {
	return "default_account_" + userID
}
