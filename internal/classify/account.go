package classify

import (
	"strings"

	"ccledger/qianji-csv/internal/models"
)

// accountKeywordGroup binds a set of name substrings to an account type.
// Groups are checked in a fixed priority order, so a wallet keyword beats a
// bank keyword even when both appear in the name.
type accountKeywordGroup struct {
	keywords    []string
	accountType string
}

var accountKeywordGroups = []accountKeywordGroup{
	{[]string{"支付宝"}, models.AccountTypeAlipay},
	{[]string{"微信", "零钱"}, models.AccountTypeWechat},
	{[]string{"建行", "工行", "农行", "中行", "交行", "招行", "银行", "储蓄卡"}, models.AccountTypeBankCard},
	{[]string{"信用卡", "花呗", "白条"}, models.AccountTypeCreditCard},
	{[]string{"现金"}, models.AccountTypeCash},
}

// DetectAccountType infers an account type tag from a Qianji account name
// by case-sensitive substring matching, defaulting to OTHER.
func DetectAccountType(accountName string) string {
	for _, group := range accountKeywordGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(accountName, keyword) {
				return group.accountType
			}
		}
	}
	return models.AccountTypeOther
}

// Account icon suggestions, independent of the type detection order.
var accountIconKeywords = []struct {
	keyword string
	icon    string
}{
	{"支付宝", "💙"},
	{"微信", "💚"},
	{"花呗", "🌸"},
	{"信用卡", "💳"},
	{"银行", "🏦"},
	{"建行", "🏦"},
	{"招行", "🏦"},
	{"现金", "💵"},
}

// SuggestAccountIcon returns a display glyph for a newly created account.
func SuggestAccountIcon(accountName string) string {
	for _, entry := range accountIconKeywords {
		if strings.Contains(accountName, entry.keyword) {
			return entry.icon
		}
	}
	return "💰"
}

// accountNameDelimiter separates a historical owner prefix from the real
// account name, as in "user-123 - 招商银行".
const accountNameDelimiter = " - "

// NormalizeAccountName strips the historical prefix from a Qianji account
// name, keeping only the substring after the last delimiter.
func NormalizeAccountName(accountName string) string {
	if idx := strings.LastIndex(accountName, accountNameDelimiter); idx >= 0 {
		return strings.TrimSpace(accountName[idx+len(accountNameDelimiter):])
	}
	return strings.TrimSpace(accountName)
}

// IsTransferCounterparty reports whether the name denotes a transfer
// counterparty rather than a real account. Qianji prefixes those with ">".
func IsTransferCounterparty(accountName string) bool {
	return strings.HasPrefix(accountName, ">")
}
