package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ccledger/qianji-csv/internal/models"
)

func TestDetectAccountType(t *testing.T) {
	testCases := []struct {
		name     string
		account  string
		expected string
	}{
		{"alipay", "支付宝", models.AccountTypeAlipay},
		{"wechat", "微信零钱", models.AccountTypeWechat},
		{"bank by short name", "招行储蓄卡", models.AccountTypeBankCard},
		{"generic bank", "工商银行", models.AccountTypeBankCard},
		{"credit card", "交通银行信用卡", models.AccountTypeBankCard}, // bank group outranks credit group
		{"pure credit product", "花呗", models.AccountTypeCreditCard},
		{"jd credit", "京东白条", models.AccountTypeCreditCard},
		{"cash", "现金", models.AccountTypeCash},
		{"unknown", "八达通", models.AccountTypeOther},
		{"wallet keyword beats bank keyword", "支付宝-招行快捷", models.AccountTypeAlipay},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DetectAccountType(tc.account))
		})
	}
}

func TestSuggestAccountIcon(t *testing.T) {
	assert.Equal(t, "💙", SuggestAccountIcon("支付宝"))
	assert.Equal(t, "💚", SuggestAccountIcon("微信"))
	assert.Equal(t, "🏦", SuggestAccountIcon("招行"))
	assert.Equal(t, "🌸", SuggestAccountIcon("花呗"))
	assert.Equal(t, "💵", SuggestAccountIcon("现金"))
	assert.Equal(t, "💰", SuggestAccountIcon("八达通"))
}

func TestNormalizeAccountName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"no prefix", "招商银行", "招商银行"},
		{"historical owner prefix", "user-123 - 招商银行", "招商银行"},
		{"only the last delimiter counts", "a - b - 现金", "现金"},
		{"surrounding whitespace trimmed", "  招商银行  ", "招商银行"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeAccountName(tc.input))
		})
	}
}

func TestIsTransferCounterparty(t *testing.T) {
	assert.True(t, IsTransferCounterparty(">张三"))
	assert.False(t, IsTransferCounterparty("招商银行"))
}
