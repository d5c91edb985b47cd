package logging

// Field name constants for structured logging.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Rendering.
	FieldTarget   = "target"
	FieldNodes    = "nodes"
	FieldLines    = "lines"
	FieldBytes    = "bytes"
	FieldDuration = "duration"
	FieldBackup   = "backup"

	// Batch export.
	FieldJobs            = "jobs"
	FieldFilesDiscovered = "files_discovered"
	FieldFilesExported   = "files_exported"
	FieldFilesFailed     = "files_failed"

	// Watch mode.
	FieldEvent = "event"
	FieldDelay = "delay"

	// Version.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
