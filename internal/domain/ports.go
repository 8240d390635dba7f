package domain

import "context"

// CommandRunner executes a toolchain command and captures its merged
// stdout+stderr. Exit status is not reported: a compiler that exits
// non-zero with diagnostics on its output stream is a normal outcome.
// Only a failure to spawn the process is an error.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// ConfigLoader resolves the toolchain configuration for a directory.
type ConfigLoader interface {
	Load(dir string) (ToolchainConfig, error)
}

// ReportHistory persists past validation runs for a directory.
type ReportHistory interface {
	Save(dir string, entry HistoryEntry) error
	Load(dir string) ([]HistoryEntry, error)
}

// RepoInspector reports version-control metadata for a path.
type RepoInspector interface {
	IsGitRepo(dir string) bool
	CommitHash(dir string) (string, error)
	Branch(dir string) (string, error)
}
