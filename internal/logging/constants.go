package logging

// Standardized field names for structured logging. Keeping these in one
// place makes the import logs consistent and easy to filter.
const (
	FieldFile     = "file_path"
	FieldRow      = "row"
	FieldRecordID = "record_id"
	FieldOwner    = "owner"
	FieldAccount  = "account"
	FieldCategory = "category"
	FieldPhase    = "phase"
	FieldBatch    = "batch_size"
	FieldImported = "imported"
	FieldSkipped  = "skipped"
	FieldFailed   = "failed"
	FieldTotal    = "total"
	FieldCount    = "count"
)
