package logging

// Field names for structured logging.
const (
	FieldError    = "error"
	FieldInput    = "input"
	FieldOutput   = "output"
	FieldBytes    = "bytes"
	FieldStage    = "stage"
	FieldDuration = "duration"
	FieldFiles    = "files"
	FieldWorkers  = "workers"
	FieldConfig   = "config"
	FieldFailed   = "failed"
	FieldVersion  = "version"
)
