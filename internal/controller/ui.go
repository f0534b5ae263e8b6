// Package controller provides output adapters for displaying candidate
// listings, trial progress and mutation scores.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"

	m "github.com/mutline/mutline/internal/model"
)

// FileCandidates holds per-operator candidate counts for one file.
type FileCandidates struct {
	Path       m.Path
	ByOperator map[m.Operator]int
	Total      int
}

// TrialSummary aggregates the outcome of a full trial run.
type TrialSummary struct {
	Total    int
	Killed   int
	Survived int
	Timeout  int
	Errored  int
	// Score is the mutation score in percent.
	Score float64
}

// UI is the interface commands use to display results. Implementations can
// use different output methods (plain text, TUI).
type UI interface {
	// DisplayCandidates shows per-file candidate counts.
	DisplayCandidates(ctx context.Context, files []FileCandidates) error
	// TrialStarted announces a trial run of total mutants on threads workers.
	TrialStarted(ctx context.Context, total, threads int)
	// TrialProgress reports one completed mutant trial.
	TrialProgress(ctx context.Context, report m.TrialReport, done, total int)
	// TrialFinished shows the final summary and score.
	TrialFinished(ctx context.Context, summary TrialSummary) error
	// DisplayPatch prints a rendered unified diff.
	DisplayPatch(ctx context.Context, text string) error
}

// IsTTY reports whether f is attached to a terminal, which selects the TUI
// over plain output.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
