package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mutline/mutline/internal/model"
)

var (
	killedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	survivedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Faint(true)
	scoreStyle    = lipgloss.NewStyle().Bold(true)
)

// operatorColumns fixes the column order of the candidate table.
var operatorColumns = []m.Operator{
	m.OperatorRelational,
	m.OperatorLogical,
	m.OperatorNoneCheck,
	m.OperatorArithmetic,
	m.OperatorConstant,
}

// SimpleUI implements UI using the cobra command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayCandidates renders per-file candidate counts as a table.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, files []FileCandidates) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Printf("\n%s", renderCandidateTable(files))

	return nil
}

func renderCandidateTable(files []FileCandidates) string {
	sorted := make([]FileCandidates, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)

	header := []string{"Path"}
	for _, op := range operatorColumns {
		header = append(header, string(op))
	}

	header = append(header, "Total")
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	total := 0

	for _, fc := range sorted {
		row := []string{string(fc.Path)}
		for _, op := range operatorColumns {
			row = append(row, fmt.Sprintf("%d", fc.ByOperator[op]))
		}

		row = append(row, fmt.Sprintf("%d", fc.Total))
		table.Append(row)
		total += fc.Total
	}

	footer := make([]string, len(header))
	footer[0] = fmt.Sprintf("Total Files %d", len(sorted))
	footer[len(footer)-1] = fmt.Sprintf("%d", total)
	table.SetFooter(footer)

	table.Render()

	return buf.String()
}

// TrialStarted announces the run configuration.
func (s *SimpleUI) TrialStarted(ctx context.Context, total, threads int) {
	if ctx.Err() != nil {
		return
	}

	s.cmd.Printf("Testing %d mutants on %d worker(s)\n", total, threads)
}

// TrialProgress prints one line per completed mutant trial.
func (s *SimpleUI) TrialProgress(ctx context.Context, report m.TrialReport, done, total int) {
	if ctx.Err() != nil {
		return
	}

	s.cmd.Printf("[%d/%d] %s %s: %s\n", done, total, report.Source, report.Mutation, styledStatus(report.Status))
}

func styledStatus(status m.TrialStatus) string {
	switch status {
	case m.Killed:
		return killedStyle.Render(string(status))
	case m.Survived:
		return survivedStyle.Render(string(status))
	case m.Timeout, m.Errored:
		return mutedStyle.Render(string(status))
	}

	return string(status)
}

// TrialFinished renders the summary table and the mutation score.
func (s *SimpleUI) TrialFinished(ctx context.Context, summary TrialSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Killed", "Survived", "Timeout", "Errored", "Total"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append([]string{
		fmt.Sprintf("%d", summary.Killed),
		fmt.Sprintf("%d", summary.Survived),
		fmt.Sprintf("%d", summary.Timeout),
		fmt.Sprintf("%d", summary.Errored),
		fmt.Sprintf("%d", summary.Total),
	})
	table.Render()

	s.cmd.Printf("\n%s\n%s\n", buf.String(), scoreStyle.Render(fmt.Sprintf("Mutation score: %.1f%%", summary.Score)))

	return nil
}

// DisplayPatch prints the rendered diff verbatim.
func (s *SimpleUI) DisplayPatch(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cmd.Print(text)

	return nil
}
