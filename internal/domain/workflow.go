package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mutline/mutline/internal/adapter"
	"github.com/mutline/mutline/internal/controller"
	m "github.com/mutline/mutline/internal/model"
	"github.com/mutline/mutline/pkg"
)

// EstimateArgs configures candidate listing.
type EstimateArgs struct {
	Paths      []m.Path
	Exclude    []string
	Extensions []string
}

// TrialArgs configures a full mutation testing run.
type TrialArgs struct {
	EstimateArgs

	// Root is the project directory staged for each trial. Scanned files
	// must live under it.
	Root            m.Path
	Reports         m.Path
	Threads         int
	TestCommand     string
	MutationTimeout time.Duration
}

// PatchArgs configures rendering the patch for one candidate of one file.
type PatchArgs struct {
	File m.Path
	// Index selects the candidate in generation order.
	Index int
}

// Workflow is the interface the CLI commands drive.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Trial(ctx context.Context, args TrialArgs) error
	Patch(ctx context.Context, args PatchArgs) error
}

type workflow struct {
	fs     adapter.SourceFS
	runner adapter.TestRunner
	store  adapter.ReportStore
	ui     controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(fs adapter.SourceFS, runner adapter.TestRunner, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		fs:     fs,
		runner: runner,
		store:  store,
		ui:     ui,
	}
}

// trialUnit pairs one candidate with the source it was generated from.
type trialUnit struct {
	source   m.Source
	mutation m.Mutation
}

// Estimate lists candidate counts per file.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	files, _, err := w.collectCandidates(ctx, ".", args)
	if err != nil {
		slog.Error("failed to collect candidates", "error", err)
		return err
	}

	return w.ui.DisplayCandidates(ctx, files)
}

// Trial runs mutation testing: every candidate is applied to an isolated
// copy of the project root and judged by the test command.
func (w *workflow) Trial(ctx context.Context, args TrialArgs) error {
	root := args.Root
	if root == "" {
		root = "."
	}

	_, units, err := w.collectCandidates(ctx, root, args.EstimateArgs)
	if err != nil {
		slog.Error("failed to collect candidates", "error", err)
		return err
	}

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	spill, err := pkg.NewSpill[m.TrialReport]("mutline-reports-*")
	if err != nil {
		return err
	}

	defer func() { _ = spill.Close() }()

	w.ui.TrialStarted(ctx, len(units), threads)

	if err := w.runTrials(ctx, root, args, units, spill, threads); err != nil {
		return err
	}

	return w.finishTrials(ctx, args.Reports, spill)
}

func (w *workflow) runTrials(ctx context.Context, root m.Path, args TrialArgs, units []trialUnit, spill pkg.Spill[m.TrialReport], threads int) error {
	orch := NewOrchestrator(w.fs, w.runner, args.TestCommand, args.MutationTimeout)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	var mu sync.Mutex

	done := 0

	for _, unit := range units {
		group.Go(func() error {
			report, err := orch.TrialMutation(groupCtx, root, unit.source, unit.mutation)
			if err != nil {
				if groupCtx.Err() != nil {
					return groupCtx.Err()
				}

				report = m.TrialReport{
					Mutation: unit.mutation,
					Source:   unit.source.RelPath,
					Status:   m.Errored,
					Output:   err.Error(),
				}
			}

			mu.Lock()
			defer mu.Unlock()

			if err := spill.Append(report); err != nil {
				return err
			}

			done++
			w.ui.TrialProgress(groupCtx, report, done, len(units))

			return nil
		})
	}

	return group.Wait()
}

func (w *workflow) finishTrials(ctx context.Context, reportsDir m.Path, spill pkg.Spill[m.TrialReport]) error {
	score, err := mutationScoreFromReports(spill)
	if err != nil {
		return err
	}

	summary := controller.TrialSummary{Score: score}
	reports := make([]m.TrialReport, 0, spill.Len())

	err = spill.Range(func(_ uint64, report m.TrialReport) error {
		summary.Total++

		switch report.Status {
		case m.Killed:
			summary.Killed++
		case m.Survived:
			summary.Survived++
		case m.Timeout:
			summary.Timeout++
		case m.Errored:
			summary.Errored++
		}

		reports = append(reports, report)

		return nil
	})
	if err != nil {
		return err
	}

	if reportsDir != "" {
		if err := w.store.SaveReports(ctx, reportsDir, reports); err != nil {
			slog.Error("failed to save reports", "dir", reportsDir, "error", err)
			return err
		}
	}

	return w.ui.TrialFinished(ctx, summary)
}

// Patch renders the unified diff for one candidate of one file.
func (w *workflow) Patch(ctx context.Context, args PatchArgs) error {
	source, err := w.fs.ReadSource(ctx, ".", args.File)
	if err != nil {
		return err
	}

	candidates := GenerateCandidates(source.Lines)
	if len(candidates) == 0 {
		return fmt.Errorf("no mutation candidates in %s", args.File)
	}

	if args.Index < 0 || args.Index >= len(candidates) {
		return fmt.Errorf("candidate index %d out of range (0-%d)", args.Index, len(candidates)-1)
	}

	mutated, err := ApplyMutation(source.Lines, candidates[args.Index])
	if err != nil {
		return err
	}

	patch, err := RenderDiff(source.Lines, mutated, source.RelPath)
	if err != nil {
		return err
	}

	return w.ui.DisplayPatch(ctx, patch)
}

func (w *workflow) collectCandidates(ctx context.Context, root m.Path, args EstimateArgs) ([]controller.FileCandidates, []trialUnit, error) {
	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{root}
	}

	extensions := args.Extensions
	if len(extensions) == 0 {
		extensions = []string{".py"}
	}

	var (
		files []controller.FileCandidates
		units []trialUnit
	)

	for _, path := range paths {
		found, err := w.fs.CollectFiles(ctx, path, extensions, args.Exclude)
		if err != nil {
			return nil, nil, err
		}

		for _, file := range found {
			source, err := w.fs.ReadSource(ctx, root, file)
			if err != nil {
				return nil, nil, err
			}

			candidates := GenerateCandidates(source.Lines)

			fc := controller.FileCandidates{
				Path:       source.RelPath,
				ByOperator: make(map[m.Operator]int),
				Total:      len(candidates),
			}

			for _, mu := range candidates {
				fc.ByOperator[mu.Operator]++
				units = append(units, trialUnit{source: source, mutation: mu})
			}

			files = append(files, fc)
		}
	}

	return files, units, nil
}
