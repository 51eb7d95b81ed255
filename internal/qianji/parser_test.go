package qianji

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccledger/qianji-csv/internal/logging"
)

const sampleHeader = "ID,时间,分类,二级分类,类型,金额,币种,账户1,账户2,备注,标签"

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		"\ufeff" + sampleHeader,
		"1001,2024-10-19 22:19:04,餐饮,午餐,支出,12.50,CNY,支付宝,,工作餐,日常",
		"1002,2024-10-20 08:00:00,工资,,收入,5000.00,CNY,招行,,null,",
	}, "\n")

	p := NewParser(&logging.MockLogger{})
	records, skipped, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, skipped)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "1001", first.ID)
	assert.Equal(t, "2024-10-19 22:19:04", first.Datetime)
	assert.Equal(t, "餐饮", first.Category)
	assert.Equal(t, "午餐", first.SubCategory)
	assert.Equal(t, KindExpense, first.Kind)
	assert.Equal(t, "12.50", first.Amount)
	assert.Equal(t, "支付宝", first.Account1)
	assert.Equal(t, "工作餐", first.Remark)
	assert.Equal(t, "日常", first.Tags)

	// "null" and empty columns come out as absent
	second := records[1]
	assert.Empty(t, second.SubCategory)
	assert.Empty(t, second.Remark)
	assert.Empty(t, second.Tags)
	assert.Equal(t, KindIncome, second.Kind)
}

func TestParseSkipsShortRows(t *testing.T) {
	input := strings.Join([]string{
		sampleHeader,
		"1001,2024-10-19 22:19:04,餐饮,,支出,12.50,CNY,支付宝,,,",
		"too,short",
		"",
		"1002,2024-10-20 08:00:00,工资,,收入,5000.00,CNY,招行,,,",
	}, "\n")

	log := &logging.MockLogger{}
	records, skipped, err := NewParser(log).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped, "short row skipped, blank line ignored")
	require.Len(t, records, 2)
	assert.Equal(t, "1001", records[0].ID)
	assert.Equal(t, "1002", records[1].ID)
	assert.True(t, log.HasMessage("Skipping short row"))
}

func TestParseEmptyInput(t *testing.T) {
	records, skipped, err := NewParser(nil).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, skipped)
}

func TestParseMissingOptionalColumns(t *testing.T) {
	// a minimal header without any optional columns still parses
	input := strings.Join([]string{
		"ID,时间,分类,类型,金额,账户1",
		"1001,2024-10-19 22:19:04,餐饮,支出,12.50,支付宝",
	}, "\n")

	records, _, err := NewParser(nil).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].SubCategory)
	assert.Equal(t, "CNY", records[0].Currency, "currency defaults to CNY")
}

func TestIsQianjiFormat(t *testing.T) {
	required := []string{"ID", "时间", "分类", "类型", "金额", "账户1"}

	testCases := []struct {
		name     string
		headers  []string
		expected bool
	}{
		{"exact required set", required, true},
		{"extra columns in arbitrary order", []string{"标签", "账户1", "金额", "ID", "备注", "类型", "分类", "时间"}, true},
		{"missing amount column", []string{"ID", "时间", "分类", "类型", "账户1"}, false},
		{"case sensitive", []string{"id", "时间", "分类", "类型", "金额", "账户1"}, false},
		{"empty", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsQianjiFormat(tc.headers))
		})
	}

	// every single required column is load-bearing
	for i := range required {
		headers := append([]string{}, required[:i]...)
		headers = append(headers, required[i+1:]...)
		assert.False(t, IsQianjiFormat(headers), "missing %s", required[i])
	}
}

func TestHeaders(t *testing.T) {
	p := NewParser(nil)
	headers, err := p.Headers(strings.NewReader("\ufeffID, 时间 ,分类\ndata,row,here"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "时间", "分类"}, headers, "BOM stripped and names trimmed")
}

func TestParseDateTime(t *testing.T) {
	ts, err := ParseDateTime("2024-10-19 22:19:04")
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 22, ts.Hour())

	_, err = ParseDateTime("19/10/2024")
	assert.Error(t, err)
}
