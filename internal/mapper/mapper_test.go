package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccledger/qianji-csv/internal/logging"
	"ccledger/qianji-csv/internal/models"
	"ccledger/qianji-csv/internal/qianji"
	"ccledger/qianji-csv/internal/store"
)

func newTestMapper() (*Mapper, *store.MemoryLedger) {
	ledger := store.NewMemoryLedger()
	return New(ledger, nil, &logging.MockLogger{}), ledger
}

func allCreate() Options {
	return Options{CreateCategories: true, CreateAccounts: true, MergeSubCategories: true}
}

func sampleRecord() qianji.Record {
	return qianji.Record{
		ID:       "1001",
		Datetime: "2024-10-19 22:19:04",
		Category: "餐饮",
		Kind:     qianji.KindExpense,
		Amount:   "12.50",
		Currency: "CNY",
		Account1: "支付宝",
	}
}

func TestMapRecord(t *testing.T) {
	m, ledger := newTestMapper()

	tx, err := m.MapRecord(sampleRecord(), "u1", allCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, "u1", tx.UserID)
	assert.Equal(t, int64(1250), tx.AmountCents)
	assert.Equal(t, models.DefaultLedgerID, tx.LedgerID)
	assert.Equal(t, models.SyncStatusSynced, tx.SyncStatus)
	assert.Contains(t, tx.Note, "[钱迹ID: 1001]")
	assert.Equal(t, tx.TransactionDate, tx.CreatedAt)
	assert.Equal(t, tx.TransactionDate, tx.UpdatedAt)
	assert.Equal(t, 19, tx.TransactionDate.Day())

	// category hierarchy was created: parent 餐饮 with child 一般
	parent, err := ledger.FindCategory("u1", "餐饮", models.CategoryTypeExpense)
	require.NoError(t, err)
	assert.Equal(t, "🍚", parent.Icon)
	assert.Equal(t, "#FF9800", parent.Color)
	child, err := ledger.FindChildCategory("u1", "一般", parent.ID)
	require.NoError(t, err)
	assert.Equal(t, child.ID, tx.CategoryID, "transaction references the child category")
	assert.Equal(t, parent.Color, child.Color, "child inherits parent color")

	// alipay account was created with the wallet type
	account, err := ledger.FindAccountByName("u1", "支付宝")
	require.NoError(t, err)
	assert.Equal(t, account.ID, tx.AccountID)
	assert.Equal(t, models.AccountTypeAlipay, account.Type)
	assert.Equal(t, "💙", account.Icon)
	assert.Nil(t, account.CreditLimitCents)
}

func TestMapRecordRefundInvertsSign(t *testing.T) {
	m, _ := newTestMapper()

	expense := sampleRecord()
	expenseTx, err := m.MapRecord(expense, "u1", allCreate())
	require.NoError(t, err)

	refund := sampleRecord()
	refund.ID = "1002"
	refund.Kind = qianji.KindRefund
	refundTx, err := m.MapRecord(refund, "u1", allCreate())
	require.NoError(t, err)

	assert.Equal(t, expenseTx.AmountCents, -refundTx.AmountCents)
	assert.NotEqual(t, expenseTx.ID, refundTx.ID)
}

func TestMapRecordIncomeCategoryType(t *testing.T) {
	m, ledger := newTestMapper()

	record := qianji.Record{
		ID:       "2001",
		Datetime: "2024-11-01 09:00:00",
		Category: "工资",
		Kind:     qianji.KindIncome,
		Amount:   "5000.00",
		Account1: "招行",
	}
	_, err := m.MapRecord(record, "u1", allCreate())
	require.NoError(t, err)

	parent, err := ledger.FindCategory("u1", "工资", models.CategoryTypeIncome)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryTypeIncome, parent.Type)

	account, err := ledger.FindAccountByName("u1", "招行")
	require.NoError(t, err)
	assert.Equal(t, models.AccountTypeBankCard, account.Type)
}

func TestMapRecordBlankAccountUsesDefault(t *testing.T) {
	m, ledger := newTestMapper()

	first := sampleRecord()
	first.Account1 = ""
	firstTx, err := m.MapRecord(first, "u1", allCreate())
	require.NoError(t, err)

	second := sampleRecord()
	second.ID = "1002"
	second.Account1 = "   "
	secondTx, err := m.MapRecord(second, "u1", allCreate())
	require.NoError(t, err)

	assert.Equal(t, models.DefaultAccountID("u1"), firstTx.AccountID)
	assert.Equal(t, firstTx.AccountID, secondTx.AccountID, "repeated blank accounts share one account")

	account, err := ledger.FindAccountByID(firstTx.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "现金", account.Name)
	assert.Equal(t, models.AccountTypeCash, account.Type)
	assert.True(t, account.IsDefault)
	assert.Zero(t, account.BalanceCents)

	// only one default account exists
	defaults := 0
	for _, a := range ledger.Accounts() {
		if a.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestMapRecordTransferCounterpartyUsesDefault(t *testing.T) {
	m, _ := newTestMapper()

	record := sampleRecord()
	record.Account1 = ">张三"
	tx, err := m.MapRecord(record, "u1", allCreate())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAccountID("u1"), tx.AccountID)
}

func TestMapRecordStripsAccountPrefix(t *testing.T) {
	m, ledger := newTestMapper()

	record := sampleRecord()
	record.Account1 = "user-123 - 招商银行"
	_, err := m.MapRecord(record, "u1", allCreate())
	require.NoError(t, err)

	_, err = ledger.FindAccountByName("u1", "招商银行")
	assert.NoError(t, err, "account stored under the stripped name")
}

func TestMapRecordCreditCardGetsDefaultLimit(t *testing.T) {
	m, ledger := newTestMapper()

	record := sampleRecord()
	record.Account1 = "花呗"
	_, err := m.MapRecord(record, "u1", allCreate())
	require.NoError(t, err)

	account, err := ledger.FindAccountByName("u1", "花呗")
	require.NoError(t, err)
	require.NotNil(t, account.CreditLimitCents)
	assert.Equal(t, int64(1000000), *account.CreditLimitCents)
}

func TestMapRecordFailures(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*qianji.Record)
		opts   Options
	}{
		{
			name:   "bad timestamp",
			mutate: func(r *qianji.Record) { r.Datetime = "19/10/2024" },
			opts:   allCreate(),
		},
		{
			name:   "bad amount",
			mutate: func(r *qianji.Record) { r.Amount = "twelve" },
			opts:   allCreate(),
		},
		{
			name:   "category creation disabled",
			mutate: func(r *qianji.Record) {},
			opts:   Options{CreateCategories: false, CreateAccounts: true, MergeSubCategories: true},
		},
		{
			name:   "account creation disabled",
			mutate: func(r *qianji.Record) {},
			opts:   Options{CreateCategories: true, CreateAccounts: false, MergeSubCategories: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestMapper()
			record := sampleRecord()
			tc.mutate(&record)
			tx, err := m.MapRecord(record, "u1", tc.opts)
			assert.Error(t, err)
			assert.Nil(t, tx)
		})
	}
}

func TestMapRecordReusesExistingEntities(t *testing.T) {
	m, ledger := newTestMapper()

	first, err := m.MapRecord(sampleRecord(), "u1", allCreate())
	require.NoError(t, err)

	second := sampleRecord()
	second.ID = "1002"
	secondTx, err := m.MapRecord(second, "u1", allCreate())
	require.NoError(t, err)

	assert.Equal(t, first.CategoryID, secondTx.CategoryID)
	assert.Equal(t, first.AccountID, secondTx.AccountID)
	assert.Len(t, ledger.Accounts(), 1)
	assert.Len(t, ledger.Categories(), 2, "one parent, one child")
}

func TestComposeNote(t *testing.T) {
	m, _ := newTestMapper()

	record := qianji.Record{
		ID:          "1001",
		Kind:        qianji.KindExpense,
		Remark:      "工作餐",
		SubCategory: "午餐",
		Account2:    ">张三",
		Tags:        "日常",
	}

	merged := m.composeNote(record, true)
	assert.Equal(t, "工作餐 [收款方: 张三] [标签: 日常] [钱迹ID: 1001]", merged)

	unmerged := m.composeNote(record, false)
	assert.Contains(t, unmerged, "[二级分类: 午餐]")

	record.Kind = qianji.KindIncome
	assert.Contains(t, m.composeNote(record, true), "[付款方: 张三]")

	record.Kind = qianji.KindRefund
	assert.Contains(t, m.composeNote(record, true), "[转账对象: 张三]")

	// marker is present even for an otherwise empty record
	assert.Equal(t, "[钱迹ID: 9]", m.composeNote(qianji.Record{ID: "9"}, true))
}

func TestIsImported(t *testing.T) {
	m, ledger := newTestMapper()

	imported, err := m.IsImported("1001", "u1")
	require.NoError(t, err)
	assert.False(t, imported)

	tx, err := m.MapRecord(sampleRecord(), "u1", allCreate())
	require.NoError(t, err)
	require.NoError(t, ledger.InsertTransactionBatch([]models.Transaction{*tx}))

	imported, err = m.IsImported("1001", "u1")
	require.NoError(t, err)
	assert.True(t, imported)

	// substring match must not confuse 1001 with 100
	imported, err = m.IsImported("100", "u1")
	require.NoError(t, err)
	assert.False(t, imported)
}

func TestDedupMarker(t *testing.T) {
	assert.Equal(t, "[钱迹ID: 1001]", DedupMarker("1001"))
}
