package domain

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mutline/mutline/internal/adapter"
	m "github.com/mutline/mutline/internal/model"
)

// outputTailBytes bounds the amount of test output kept per report.
const outputTailBytes = 4096

// Orchestrator coordinates one mutant trial: applying a mutation to an
// isolated copy of the project and running the test command there to decide
// whether the mutant is killed or survives. The original tree is never
// written to.
type Orchestrator interface {
	TrialMutation(ctx context.Context, root m.Path, source m.Source, mu m.Mutation) (m.TrialReport, error)
}

type orchestrator struct {
	fs          adapter.SourceFS
	runner      adapter.TestRunner
	testCommand string
	timeout     time.Duration
}

// NewOrchestrator constructs an Orchestrator that runs testCommand with the
// given per-mutation timeout.
func NewOrchestrator(fs adapter.SourceFS, runner adapter.TestRunner, testCommand string, timeout time.Duration) Orchestrator {
	return &orchestrator{
		fs:          fs,
		runner:      runner,
		testCommand: testCommand,
		timeout:     timeout,
	}
}

func (o *orchestrator) TrialMutation(ctx context.Context, root m.Path, source m.Source, mu m.Mutation) (m.TrialReport, error) {
	mutated, err := ApplyMutation(source.Lines, mu)
	if err != nil {
		return m.TrialReport{}, err
	}

	patch, err := RenderDiff(source.Lines, mutated, source.RelPath)
	if err != nil {
		return m.TrialReport{}, err
	}

	if _, err := ParsePatch(patch); err != nil {
		return m.TrialReport{}, err
	}

	report := m.TrialReport{
		Mutation: mu,
		Source:   source.RelPath,
		Patch:    patch,
	}

	tmpDir, err := o.fs.CreateTempDir(ctx, "mutline-trial-*")
	if err != nil {
		return m.TrialReport{}, err
	}

	defer o.cleanupTempDir(tmpDir)

	if err := o.fs.CopyDir(ctx, root, tmpDir); err != nil {
		slog.Error("failed to stage project copy", "root", root, "tmpDir", tmpDir, "error", err)
		return m.TrialReport{}, err
	}

	target := filepath.Join(string(tmpDir), string(source.RelPath))
	if err := o.fs.WriteFile(ctx, m.Path(target), m.JoinLines(mutated), 0o600); err != nil {
		slog.Error("failed to write mutant", "target", target, "error", err)
		return m.TrialReport{}, err
	}

	report.Status, report.Output = o.runTrial(ctx, tmpDir)

	// Killed mutants need no forensics; drop the bulky fields.
	if report.Status == m.Killed {
		report.Output = ""
	}

	return report, nil
}

func (o *orchestrator) runTrial(ctx context.Context, dir m.Path) (m.TrialStatus, string) {
	trialCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	output, failed, err := o.runner.Run(trialCtx, string(dir), o.testCommand)

	// A command killed by the deadline surfaces as an ordinary test failure,
	// so the deadline check comes first.
	if errors.Is(trialCtx.Err(), context.DeadlineExceeded) {
		return m.Timeout, tail(output)
	}

	switch {
	case err == nil && failed:
		return m.Killed, tail(output)
	case err == nil:
		return m.Survived, tail(output)
	default:
		slog.Error("trial execution failed", "dir", dir, "error", err)
		return m.Errored, tail(output + "\n" + err.Error())
	}
}

func (o *orchestrator) cleanupTempDir(dir m.Path) {
	// Cleanup must run even when the surrounding context is already
	// cancelled, so it gets a fresh context.
	if err := o.fs.RemoveAll(context.Background(), dir); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove trial dir", "dir", dir, "error", err)
	}
}

func tail(s string) string {
	if len(s) <= outputTailBytes {
		return s
	}

	return s[len(s)-outputTailBytes:]
}
