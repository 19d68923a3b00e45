package logging

// Standardized field names for structured logging. Every component uses these
// keys so a run can be filtered by input file or run id regardless of which
// package emitted the entry.
const (
	FieldRunID      = "run_id"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldLine       = "line"
	FieldCategory   = "category"
	FieldAmount     = "amount"
	FieldReason     = "reason"
	FieldFormat     = "format"
	FieldCount      = "count"
	FieldFailed     = "failed"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
)
