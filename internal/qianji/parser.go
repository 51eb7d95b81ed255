package qianji

import (
	"bufio"
	"io"
	"os"
	"strings"

	"ccledger/qianji-csv/internal/logging"
)

// requiredHeaders is the minimal column set a file must carry to be treated
// as a Qianji export. Matching is case-sensitive and order-independent.
var requiredHeaders = []string{ColID, ColDatetime, ColCategory, ColKind, ColAmount, ColAccount1}

// Parser reads a whole Qianji export into records. One malformed row never
// aborts the file; short rows are counted and skipped.
type Parser struct {
	logger logging.Logger
}

// NewParser creates a Parser. A nil logger gets a default one.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Parser{logger: logger}
}

// Parse reads the export from r and returns the successfully parsed records
// together with the number of skipped data lines.
func (p *Parser) Parse(r io.Reader) ([]Record, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	if len(lines) == 0 {
		return nil, 0, nil
	}

	headers := SplitLine(lines[0])
	headerMap := make(map[string]int, len(headers))
	for i, h := range headers {
		headerMap[h] = i
	}
	p.logger.WithField(logging.FieldCount, len(headers)).Debug("Parsed header line")

	var records []Record
	skipped := 0
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		values := SplitLine(lines[i])
		if len(values) < len(headers) {
			p.logger.WithFields(
				logging.Field{Key: logging.FieldRow, Value: i + 1},
				logging.Field{Key: logging.FieldCount, Value: len(values)},
				logging.Field{Key: "expected", Value: len(headers)},
			).Warn("Skipping short row")
			skipped++
			continue
		}
		records = append(records, buildRecord(values, headerMap))
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldSkipped, Value: skipped},
	).Debug("Parsed Qianji export")

	return records, skipped, nil
}

// ParseFile opens path and parses it.
func (p *Parser) ParseFile(path string) ([]Record, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			p.logger.WithError(cerr).Warn("Failed to close input file")
		}
	}()
	return p.Parse(f)
}

// Headers tokenizes only the first line of r and returns the trimmed column
// names. Used by format validation, which must not read the whole file.
func (p *Parser) Headers(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	headers := SplitLine(scanner.Text())
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	return headers, nil
}

// IsQianjiFormat reports whether headers contain every required Qianji
// column, in any order.
func IsQianjiFormat(headers []string) bool {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	for _, required := range requiredHeaders {
		if !present[required] {
			return false
		}
	}
	return true
}

func buildRecord(values []string, headerMap map[string]int) Record {
	get := func(column string) string {
		idx, ok := headerMap[column]
		if !ok || idx >= len(values) {
			return ""
		}
		v := values[idx]
		if v == "null" {
			// Qianji writes literal "null" for absent values
			return ""
		}
		return v
	}

	r := Record{
		ID:           get(ColID),
		Datetime:     get(ColDatetime),
		Category:     get(ColCategory),
		SubCategory:  get(ColSubCategory),
		Kind:         get(ColKind),
		Amount:       get(ColAmount),
		Currency:     get(ColCurrency),
		Account1:     get(ColAccount1),
		Account2:     get(ColAccount2),
		Remark:       get(ColRemark),
		IsReimbursed: get(ColReimbursed),
		Fee:          get(ColFee),
		Coupon:       get(ColCoupon),
		Reporter:     get(ColReporter),
		BillMark:     get(ColBillMark),
		Tags:         get(ColTags),
		BillImage:    get(ColBillImage),
		RelatedID:    get(ColRelatedID),
	}
	if r.Amount == "" {
		r.Amount = "0"
	}
	if r.Currency == "" {
		r.Currency = "CNY"
	}
	return r
}
