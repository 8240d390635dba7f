package domain

import "time"

// Status classifies a validation outcome.
type Status string

const (
	// StatusPass means the check step passed and the run step completed.
	StatusPass Status = "pass"
	// StatusFail means the toolchain reported check errors.
	StatusFail Status = "fail"
	// StatusError covers everything that prevented validation: bad input,
	// spawn failures, panics in the worker.
	StatusError Status = "error"
)

// Request describes one validation. Created per user action, immutable,
// discarded after use.
type Request struct {
	FilePath string   `json:"file_path"`
	Language Language `json:"language"`

	// CheckOnly stops after the syntax/compile step.
	CheckOnly bool `json:"check_only,omitempty"`
}

// Report is the outcome of one validation request. Text carries the
// human-readable result verbatim, including any captured toolchain output;
// the remaining fields exist for structured consumers.
type Report struct {
	File     string        `json:"file"`
	Language Language      `json:"language,omitempty"`
	Status   Status        `json:"status"`
	Text     string        `json:"text"`
	Hint     string        `json:"hint,omitempty"`
	Commit   string        `json:"commit,omitempty"`
	Branch   string        `json:"branch,omitempty"`
	Duration time.Duration `json:"duration_ns,omitempty"`
}

// HistoryEntry is one persisted validation run.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	File      string    `json:"file"`
	Language  Language  `json:"language,omitempty"`
	Status    Status    `json:"status"`
	Commit    string    `json:"commit,omitempty"`
	Branch    string    `json:"branch,omitempty"`
}

// Canonical report texts. Kept byte-stable; tests and downstream tooling
// match on them.
const (
	MsgSelectFile       = "Please select a file to validate."
	MsgUnsupported      = "Unsupported file type or language selection."
	MsgLanguageMismatch = "Selected language doesn't match the file extension."
	MsgUnknownError     = "Unknown error occurred during validation."
	MsgCheckPassed      = "Compilation successful."
)

// MsgFileNotFound formats the missing-file report text.
func MsgFileNotFound(path string) string {
	return "File does not exist: " + path
}

// MsgExecError formats the spawn-failure report text.
func MsgExecError(cmd Command) string {
	return "Error executing command: " + cmd.String()
}

// MsgSuccess formats the pass report text with the captured run output.
func MsgSuccess(runOutput string) string {
	return MsgCheckPassed + "\nExecution output:\n" + runOutput
}

// MsgCheckFailed formats the failed-check report text for a strategy.
func MsgCheckFailed(s Strategy, checkOutput string) string {
	return s.FailurePrefix + "\n" + checkOutput
}
