package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mutline/mutline/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
	zeroStyle   = lipgloss.NewStyle().Faint(true)
	footerStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI with Bubble Tea for interactive terminals. Candidate
// lists that do not fit on screen get a scrollable pager; trial runs get an
// in-place progress bar.
type TUI struct {
	output io.Writer
	bar    progress.Model
	plain  *SimpleUI
}

// NewTUI creates a TUI that renders to output. The SimpleUI is used for the
// parts that need no interactivity (patch output, summary table).
func NewTUI(output io.Writer, plain *SimpleUI) *TUI {
	return &TUI{
		output: output,
		bar:    progress.New(progress.WithDefaultGradient()),
		plain:  plain,
	}
}

// DisplayCandidates shows per-file candidate counts, paginating when the
// list does not fit the terminal.
func (t *TUI) DisplayCandidates(ctx context.Context, files []FileCandidates) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newCandidateListModel(files)

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// TrialStarted announces the run configuration.
func (t *TUI) TrialStarted(ctx context.Context, total, threads int) {
	if ctx.Err() != nil {
		return
	}

	fmt.Fprintf(t.output, "%s\n\n", titleStyle.Render(fmt.Sprintf("mutline: testing %d mutants on %d worker(s)", total, threads)))
}

// TrialProgress redraws the progress bar in place after each completed
// trial.
func (t *TUI) TrialProgress(ctx context.Context, report m.TrialReport, done, total int) {
	if ctx.Err() != nil || total == 0 {
		return
	}

	fraction := float64(done) / float64(total)
	fmt.Fprintf(t.output, "\r\033[K%s %d/%d  %s %s",
		t.bar.ViewAs(fraction), done, total, report.Mutation.Operator, styledStatus(report.Status))

	if done == total {
		fmt.Fprintln(t.output)
	}
}

// TrialFinished delegates the summary to the plain renderer.
func (t *TUI) TrialFinished(ctx context.Context, summary TrialSummary) error {
	return t.plain.TrialFinished(ctx, summary)
}

// DisplayPatch delegates to the plain renderer; patches must stay verbatim.
func (t *TUI) DisplayPatch(ctx context.Context, text string) error {
	return t.plain.DisplayPatch(ctx, text)
}

// candidateListModel is the Bubble Tea model for the scrollable candidate
// count list.
type candidateListModel struct {
	files  []FileCandidates
	total  int
	width  int
	height int
	offset int
}

func newCandidateListModel(files []FileCandidates) candidateListModel {
	sorted := make([]FileCandidates, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	total := 0
	for _, fc := range sorted {
		total += fc.Total
	}

	return candidateListModel{files: sorted, total: total}
}

func (clm candidateListModel) Init() tea.Cmd {
	return nil
}

func (clm candidateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		clm.width = msg.Width
		clm.height = msg.Height

		return clm, nil

	case tea.KeyMsg:
		return clm.handleKeyPress(msg)
	}

	return clm, nil
}

func (clm candidateListModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return clm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		return clm, tea.Quit

	case "down", "j":
		clm.offset = min(clm.offset+1, clm.maxOffset())

	case "up", "k":
		clm.offset = max(clm.offset-1, 0)

	case "g", "home":
		clm.offset = 0

	case "G", "end":
		clm.offset = clm.maxOffset()

	case "d", "pgdown":
		clm.offset = min(clm.offset+clm.itemsPerPage(), clm.maxOffset())

	case "u", "pgup":
		clm.offset = max(clm.offset-clm.itemsPerPage(), 0)
	}

	return clm, nil
}

// itemsPerPage calculates how many rows fit on screen, reserving space for
// the header, totals and footer.
func (clm candidateListModel) itemsPerPage() int {
	if clm.height == 0 {
		return 10
	}

	const reserved = 9

	available := clm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (clm candidateListModel) maxOffset() int {
	maxOff := len(clm.files) - clm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

func (clm candidateListModel) needsPagination() bool {
	return len(clm.files) > clm.itemsPerPage() && clm.height > 0
}

func (clm candidateListModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mutline: mutation candidates"))
	b.WriteString("\n\n")

	if len(clm.files) == 0 {
		b.WriteString("  no matching source files found\n")
		return b.String()
	}

	start := clm.offset
	end := min(start+clm.itemsPerPage(), len(clm.files))

	rows := clm.files
	if clm.needsPagination() {
		rows = clm.files[start:end]
	}

	for _, fc := range rows {
		counts := make([]string, 0, len(operatorColumns))

		for _, op := range operatorColumns {
			cell := fmt.Sprintf("%d %s", fc.ByOperator[op], op)
			if fc.ByOperator[op] == 0 {
				cell = zeroStyle.Render(cell)
			}

			counts = append(counts, cell)
		}

		fmt.Fprintf(&b, "  %s: %s\n", fc.Path, strings.Join(counts, ", "))
	}

	fmt.Fprintf(&b, "\n  Total: %d candidates across %d file(s)\n", clm.total, len(clm.files))

	if clm.needsPagination() {
		perPage := clm.itemsPerPage()
		currentPage := (clm.offset / perPage) + 1
		totalPages := (len(clm.files) + perPage - 1) / perPage

		fmt.Fprintf(&b, "\n%s\n", footerStyle.Render(fmt.Sprintf(
			"  Page %d/%d | Showing %d-%d of %d | j/k: scroll | g/G: top/bottom | q: quit",
			currentPage, totalPages, start+1, end, len(clm.files))))
	}

	return b.String()
}
