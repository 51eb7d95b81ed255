// Package qianji parses the CSV export produced by the Qianji mobile ledger
// app into typed records.
package qianji

import (
	"time"

	"ccledger/qianji-csv/internal/ledgererror"
)

// Transaction kinds used by the Qianji export.
const (
	KindExpense = "支出"
	KindIncome  = "收入"
	KindRefund  = "退款"
)

// Column headers of the Qianji export. Lookup is by header name, so column
// order in the file does not matter.
const (
	ColID          = "ID"
	ColDatetime    = "时间"
	ColCategory    = "分类"
	ColSubCategory = "二级分类"
	ColKind        = "类型"
	ColAmount      = "金额"
	ColCurrency    = "币种"
	ColAccount1    = "账户1"
	ColAccount2    = "账户2"
	ColRemark      = "备注"
	ColReimbursed  = "已报销"
	ColFee         = "手续费"
	ColCoupon      = "优惠券"
	ColReporter    = "记账者"
	ColBillMark    = "账单标记"
	ColTags        = "标签"
	ColBillImage   = "账单图片"
	ColRelatedID   = "关联账单"
)

// DateTimeLayout is the timestamp format of the Qianji export.
const DateTimeLayout = "2006-01-02 15:04:05"

// Record is one parsed row of a Qianji export. Optional fields are empty
// strings when the column is missing or blank.
type Record struct {
	ID           string `json:"id"`
	Datetime     string `json:"datetime"`
	Category     string `json:"category"`
	SubCategory  string `json:"sub_category,omitempty"`
	Kind         string `json:"kind"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Account1     string `json:"account1"`
	Account2     string `json:"account2,omitempty"`
	Remark       string `json:"remark,omitempty"`
	IsReimbursed string `json:"is_reimbursed,omitempty"`
	Fee          string `json:"fee,omitempty"`
	Coupon       string `json:"coupon,omitempty"`
	Reporter     string `json:"reporter,omitempty"`
	BillMark     string `json:"bill_mark,omitempty"`
	Tags         string `json:"tags,omitempty"`
	BillImage    string `json:"bill_image,omitempty"`
	RelatedID    string `json:"related_id,omitempty"`
}

// ParseDateTime parses a Qianji timestamp, e.g. "2024-10-19 22:19:04", in
// the local time zone.
func ParseDateTime(datetime string) (time.Time, error) {
	t, err := time.ParseInLocation(DateTimeLayout, datetime, time.Local)
	if err != nil {
		return time.Time{}, &ledgererror.ParseError{Field: ColDatetime, Value: datetime, Err: err}
	}
	return t, nil
}
