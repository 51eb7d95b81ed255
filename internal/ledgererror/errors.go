// Package ledgererror defines the typed errors surfaced by the import
// pipeline.
package ledgererror

import "fmt"

// ParseError represents a failure to interpret a value from the source file.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s='%s': %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not look like a
// Qianji CSV export.
type InvalidFormatError struct {
	FilePath string
	Reason   string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s", e.FilePath, e.Reason)
}

// MappingError represents a single record that could not be mapped to an
// internal transaction. It is counted, never escalated to a run failure.
type MappingError struct {
	RecordID string
	Reason   string
	Err      error
}

func (e *MappingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mapping failed for record '%s': %s: %v", e.RecordID, e.Reason, e.Err)
	}
	return fmt.Sprintf("mapping failed for record '%s': %s", e.RecordID, e.Reason)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// PersistError represents a failed batch write. Unlike mapping errors it
// aborts the whole run; earlier committed batches stay committed.
type PersistError struct {
	Batch int
	Err   error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist batch %d: %v", e.Batch, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
