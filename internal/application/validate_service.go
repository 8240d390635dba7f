package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codevet/codevet/internal/domain"
)

// ValidateService runs a file through its language's toolchain: a
// syntax/compile check, then execution. Every outcome, including a failure
// to spawn the tool, becomes a Report; nothing escapes as an error except
// the synchronous busy rejection from ValidateAsync.
type ValidateService struct {
	runner  domain.CommandRunner
	loader  domain.ConfigLoader
	guard   *FlightGuard
	history domain.ReportHistory // optional
	repo    domain.RepoInspector // optional
}

// NewValidateService creates a ValidateService. history and repo may be nil
// to disable run persistence and git annotation.
func NewValidateService(
	runner domain.CommandRunner,
	loader domain.ConfigLoader,
	guard *FlightGuard,
	history domain.ReportHistory,
	repo domain.RepoInspector,
) *ValidateService {
	return &ValidateService{
		runner: runner, loader: loader, guard: guard,
		history: history, repo: repo,
	}
}

// ValidateAsync runs the validation on a background goroutine and delivers
// exactly one Report on the returned channel. A second call while one is in
// flight is rejected synchronously with ErrValidationInProgress; nothing is
// queued. Once started, the worker runs to completion: no cancellation, no
// timeout. A panic inside the worker becomes the generic unknown-error
// report and still releases the guard.
func (s *ValidateService) ValidateAsync(ctx context.Context, req domain.Request) (<-chan *domain.Report, error) {
	if err := s.guard.Begin(); err != nil {
		return nil, err
	}

	out := make(chan *domain.Report, 1)
	go func() {
		defer s.guard.End()
		defer func() {
			if r := recover(); r != nil {
				out <- &domain.Report{
					File:   req.FilePath,
					Status: domain.StatusError,
					Text:   domain.MsgUnknownError,
				}
			}
		}()
		out <- s.Validate(ctx, req)
	}()
	return out, nil
}

// Validate runs one validation synchronously and always returns a Report.
func (s *ValidateService) Validate(ctx context.Context, req domain.Request) *domain.Report {
	start := time.Now()
	rep := s.validate(ctx, req)
	rep.Duration = time.Since(start)

	if rep.File != "" && rep.Language != "" {
		s.annotate(rep)
		s.record(rep)
	}
	return rep
}

func (s *ValidateService) validate(ctx context.Context, req domain.Request) *domain.Report {
	if req.FilePath == "" {
		return &domain.Report{Status: domain.StatusError, Text: domain.MsgSelectFile}
	}

	if _, err := os.Stat(req.FilePath); err != nil {
		return &domain.Report{
			File:   req.FilePath,
			Status: domain.StatusError,
			Text:   domain.MsgFileNotFound(req.FilePath),
		}
	}

	strat, ok := domain.SelectStrategy(req.Language, req.FilePath)
	if !ok {
		return &domain.Report{
			File:   req.FilePath,
			Status: domain.StatusError,
			Text:   domain.MsgUnsupported,
		}
	}
	if !strat.IsCompatible(req.FilePath) {
		return &domain.Report{
			File:     req.FilePath,
			Language: strat.Language,
			Status:   domain.StatusError,
			Text:     domain.MsgLanguageMismatch,
		}
	}

	rep := &domain.Report{File: req.FilePath, Language: strat.Language}
	if strat.Language == domain.LanguageJava {
		rep.Hint = domain.ClassNameHint(domain.FileStem(req.FilePath))
	}

	cfg, err := s.loader.Load(filepath.Dir(req.FilePath))
	if err != nil {
		rep.Status = domain.StatusError
		rep.Text = fmt.Sprintf("Invalid configuration: %v", err)
		return rep
	}

	checkCmd := strat.CheckCommand(cfg, req.FilePath)
	checkOut, err := s.runner.Run(ctx, checkCmd)
	if err != nil {
		rep.Status = domain.StatusError
		rep.Text = domain.MsgExecError(checkCmd)
		return rep
	}
	if strat.CheckFailed(checkOut) {
		rep.Status = domain.StatusFail
		rep.Text = domain.MsgCheckFailed(strat, checkOut)
		return rep
	}

	if req.CheckOnly || cfg.SkipRun {
		rep.Status = domain.StatusPass
		rep.Text = domain.MsgCheckPassed
		return rep
	}

	runCmd := strat.RunCommand(cfg, req.FilePath)
	runOut, err := s.runner.Run(ctx, runCmd)
	if err != nil {
		rep.Status = domain.StatusError
		rep.Text = domain.MsgExecError(runCmd)
		return rep
	}

	rep.Status = domain.StatusPass
	rep.Text = domain.MsgSuccess(runOut)
	return rep
}

// annotate attaches git metadata when the file sits inside a repository.
func (s *ValidateService) annotate(rep *domain.Report) {
	if s.repo == nil {
		return
	}
	dir := filepath.Dir(rep.File)
	if !s.repo.IsGitRepo(dir) {
		return
	}
	if hash, err := s.repo.CommitHash(dir); err == nil {
		rep.Commit = hash
	}
	if branch, err := s.repo.Branch(dir); err == nil {
		rep.Branch = branch
	}
}

// record appends the run to the history store. History is best-effort and
// never affects the report.
func (s *ValidateService) record(rep *domain.Report) {
	if s.history == nil {
		return
	}
	_ = s.history.Save(filepath.Dir(rep.File), domain.HistoryEntry{
		Timestamp: time.Now().UTC(),
		File:      rep.File,
		Language:  rep.Language,
		Status:    rep.Status,
		Commit:    rep.Commit,
		Branch:    rep.Branch,
	})
}
