package controller

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mutline/mutline/internal/model"
)

func candidateFixtures(n int) []FileCandidates {
	files := make([]FileCandidates, 0, n)

	for i := 0; i < n; i++ {
		files = append(files, FileCandidates{
			Path:       m.Path(fmt.Sprintf("pkg/mod_%02d.py", i)),
			ByOperator: map[m.Operator]int{m.OperatorRelational: 1},
			Total:      1,
		})
	}

	return files
}

func TestCandidateListModelPaging(t *testing.T) {
	model := newCandidateListModel(candidateFixtures(30))
	model.height = 19 // itemsPerPage = 10

	require.Equal(t, 10, model.itemsPerPage())
	require.Equal(t, 20, model.maxOffset())
	require.True(t, model.needsPagination())

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	model = next.(candidateListModel)
	assert.Equal(t, 1, model.offset)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	model = next.(candidateListModel)
	assert.Equal(t, 11, model.offset)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	model = next.(candidateListModel)
	assert.Equal(t, 20, model.offset, "G jumps to the last page")

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	model = next.(candidateListModel)
	assert.Equal(t, 19, model.offset)

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	model = next.(candidateListModel)
	assert.Equal(t, 0, model.offset)
}

func TestCandidateListModelOffsetClamped(t *testing.T) {
	model := newCandidateListModel(candidateFixtures(3))
	model.height = 19

	require.False(t, model.needsPagination())

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	model = next.(candidateListModel)
	assert.Equal(t, 0, model.offset, "short lists never scroll")

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	model = next.(candidateListModel)
	assert.Equal(t, 0, model.offset)
}

func TestCandidateListModelQuitKeys(t *testing.T) {
	model := newCandidateListModel(candidateFixtures(1))

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestCandidateListModelWindowResize(t *testing.T) {
	model := newCandidateListModel(candidateFixtures(5))

	next, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = next.(candidateListModel)

	assert.Equal(t, 80, model.width)
	assert.Equal(t, 24, model.height)
}

func TestCandidateListView(t *testing.T) {
	model := newCandidateListModel([]FileCandidates{
		{
			Path:       "pkg/b.py",
			ByOperator: map[m.Operator]int{m.OperatorConstant: 2},
			Total:      2,
		},
		{
			Path:       "pkg/a.py",
			ByOperator: map[m.Operator]int{m.OperatorLogical: 1},
			Total:      1,
		},
	})

	view := model.View()
	assert.Contains(t, view, "pkg/a.py")
	assert.Contains(t, view, "1 LCR")
	assert.Contains(t, view, "2 CRP")
	assert.Contains(t, view, "Total: 3 candidates across 2 file(s)")
}

func TestCandidateListViewEmpty(t *testing.T) {
	model := newCandidateListModel(nil)

	assert.Contains(t, model.View(), "no matching source files found")
}

func TestTUITrialProgress(t *testing.T) {
	var buf bytes.Buffer

	plain, _ := newCaptureUI()
	tui := NewTUI(&buf, plain)

	report := m.TrialReport{
		Mutation: m.Mutation{Operator: m.OperatorArithmetic},
		Status:   m.Survived,
	}

	tui.TrialProgress(context.Background(), report, 2, 4)

	out := buf.String()
	assert.Contains(t, out, "2/4")
	assert.Contains(t, out, "AOR")
	assert.Contains(t, out, "survived")

	tui.TrialProgress(context.Background(), report, 4, 4)
	assert.Contains(t, buf.String(), "4/4")
}

func TestTUIDelegatesToPlain(t *testing.T) {
	plain, plainBuf := newCaptureUI()
	tui := NewTUI(&bytes.Buffer{}, plain)

	patch := "--- a/x.py\n+++ b/x.py\n"
	require.NoError(t, tui.DisplayPatch(context.Background(), patch))
	assert.Equal(t, patch, plainBuf.String())
}
