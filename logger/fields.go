package logger

// Standard field names for structured logging across gircheck.
const (
	FieldRunID     = "run_id"
	FieldFile      = "file"
	FieldNamespace = "namespace"
	FieldFormat    = "format"
	FieldOutput    = "output"
	FieldCount     = "count"
	FieldEntity    = "entity"
	FieldKind      = "kind"
	FieldError     = "error"
)
