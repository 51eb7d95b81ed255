// Package importer drives the end-to-end Qianji import: parse, dedup-check,
// map, and persist in fixed-size batches, with progress reporting and
// per-record failure isolation.
package importer

import (
	"context"
	"fmt"
	"os"

	"ccledger/qianji-csv/internal/classify"
	"ccledger/qianji-csv/internal/ledgererror"
	"ccledger/qianji-csv/internal/logging"
	"ccledger/qianji-csv/internal/mapper"
	"ccledger/qianji-csv/internal/models"
	"ccledger/qianji-csv/internal/qianji"
	"ccledger/qianji-csv/internal/store"
)

// DefaultBatchSize is the number of mapped transactions flushed to the
// ledger per batch write.
const DefaultBatchSize = 500

// Options configures one import run.
type Options struct {
	// SkipDuplicates consults the dedup gate before mapping each record.
	SkipDuplicates bool
	// CreateCategories allows creating categories missing from the ledger.
	CreateCategories bool
	// CreateAccounts allows creating accounts missing from the ledger.
	CreateAccounts bool
	// MergeSubCategories folds the sub-category into the category hierarchy
	// instead of recording it as a note marker.
	MergeSubCategories bool
	// BatchSize is the persistence batch size; <= 0 means DefaultBatchSize.
	BatchSize int
}

// DefaultOptions returns the options an interactive caller starts from.
func DefaultOptions() Options {
	return Options{
		SkipDuplicates:     true,
		CreateCategories:   true,
		CreateAccounts:     true,
		MergeSubCategories: true,
		BatchSize:          DefaultBatchSize,
	}
}

// Result summarizes a completed import. Per-record failures are folded into
// the counts; they never fail the run.
type Result struct {
	Imported int
	Skipped  int
	Failed   int
	Total    int
}

// Importer orchestrates the import pipeline against a ledger.
type Importer struct {
	parser   *qianji.Parser
	mapper   *mapper.Mapper
	ledger   store.Ledger
	logger   logging.Logger
	progress chan Progress
}

// New creates an Importer. A nil classifier gets the built-in tables, a nil
// logger a default one.
func New(ledger store.Ledger, classifier *classify.CategoryClassifier, logger logging.Logger) *Importer {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Importer{
		parser:   qianji.NewParser(logger),
		mapper:   mapper.New(ledger, classifier, logger),
		ledger:   ledger,
		logger:   logger,
		progress: make(chan Progress, 1),
	}
}

// Import runs the full pipeline on the file at path for the given owner.
// It returns an error only for whole-file failures (unreadable or empty
// file) and failed batch writes; batches committed before such a failure
// stay committed. Cancellation is honored at batch boundaries, so no batch
// is ever half-committed.
func (im *Importer) Import(ctx context.Context, path, userID string, opts Options) (*Result, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	log := im.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldOwner, Value: userID},
	)
	log.Info("Starting import", logging.Field{Key: logging.FieldBatch, Value: opts.BatchSize})

	im.publish(Progress{Phase: PhaseParsing, Message: "正在解析文件..."})
	records, skippedLines, err := im.parser.ParseFile(path)
	if err != nil {
		im.publish(Progress{Phase: PhaseFailed, Message: "文件读取失败"})
		return nil, fmt.Errorf("error reading import file: %w", err)
	}
	if len(records) == 0 {
		im.publish(Progress{Phase: PhaseFailed, Message: "文件为空或格式错误"})
		return nil, &ledgererror.InvalidFormatError{FilePath: path, Reason: "no records parsed"}
	}
	if skippedLines > 0 {
		log.Warn("Some rows were skipped during parsing",
			logging.Field{Key: logging.FieldSkipped, Value: skippedLines})
	}

	mapperOpts := mapper.Options{
		CreateCategories:   opts.CreateCategories,
		CreateAccounts:     opts.CreateAccounts,
		MergeSubCategories: opts.MergeSubCategories,
	}

	result := &Result{Total: len(records)}
	pending := make([]models.Transaction, 0, opts.BatchSize)
	batchNum := 0

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		batchNum++
		im.publish(Progress{
			Current: result.Imported + result.Skipped + result.Failed,
			Total:   result.Total,
			Phase:   PhasePersisting,
			Message: "正在保存数据...",
		})
		if err := im.ledger.InsertTransactionBatch(pending); err != nil {
			return &ledgererror.PersistError{Batch: batchNum, Err: err}
		}
		pending = pending[:0]
		return nil
	}

	for i, record := range records {
		im.publish(Progress{
			Current: i + 1,
			Total:   result.Total,
			Phase:   PhaseMapping,
			Message: fmt.Sprintf("处理第 %d/%d 条记录...", i+1, result.Total),
		})

		if opts.SkipDuplicates {
			exists, err := im.mapper.IsImported(record.ID, userID)
			if err != nil {
				log.WithError(err).Warn("Dedup check failed",
					logging.Field{Key: logging.FieldRecordID, Value: record.ID})
				result.Failed++
				continue
			}
			if exists {
				result.Skipped++
				continue
			}
		}

		tx, err := im.mapper.MapRecord(record, userID, mapperOpts)
		if err != nil {
			log.WithError(err).Debug("Record failed to map",
				logging.Field{Key: logging.FieldRecordID, Value: record.ID})
			result.Failed++
			continue
		}
		pending = append(pending, *tx)
		result.Imported++

		if len(pending) >= opts.BatchSize {
			if err := flush(); err != nil {
				im.publish(Progress{Phase: PhaseFailed, Message: "保存数据失败"})
				return nil, err
			}
			// commits only happen at batch boundaries, so this is the one
			// safe point to observe cancellation
			if err := ctx.Err(); err != nil {
				im.publish(Progress{Phase: PhaseFailed, Message: "导入已取消"})
				return nil, err
			}
		}
	}

	if err := flush(); err != nil {
		im.publish(Progress{Phase: PhaseFailed, Message: "保存数据失败"})
		return nil, err
	}

	im.publish(Progress{Current: result.Total, Total: result.Total, Phase: PhaseDone, Message: "导入完成"})
	log.Info("Import finished",
		logging.Field{Key: logging.FieldImported, Value: result.Imported},
		logging.Field{Key: logging.FieldSkipped, Value: result.Skipped},
		logging.Field{Key: logging.FieldFailed, Value: result.Failed},
		logging.Field{Key: logging.FieldTotal, Value: result.Total},
	)

	return result, nil
}

// Preview parses the file and returns at most limit records without writing
// anything or consulting the dedup gate.
func (im *Importer) Preview(path string, limit int) ([]qianji.Record, error) {
	records, _, err := im.parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading import file: %w", err)
	}
	if limit >= 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Validate reports whether the file's header line carries every required
// Qianji column. Unreadable files validate as false.
func (im *Importer) Validate(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		im.logger.WithError(err).Warn("Validation failed to open file",
			logging.Field{Key: logging.FieldFile, Value: path})
		return false
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			im.logger.WithError(cerr).Warn("Failed to close input file")
		}
	}()

	headers, err := im.parser.Headers(f)
	if err != nil {
		im.logger.WithError(err).Warn("Validation failed to read header line",
			logging.Field{Key: logging.FieldFile, Value: path})
		return false
	}
	return qianji.IsQianjiFormat(headers)
}
