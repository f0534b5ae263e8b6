package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mutline/mutline/internal/model"
	"github.com/mutline/mutline/pkg"
)

func spillOf(t *testing.T, statuses ...m.TrialStatus) pkg.Spill[m.TrialReport] {
	t.Helper()

	spill, err := pkg.NewSpill[m.TrialReport]("mutline-score-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { _ = spill.Close() })

	for _, status := range statuses {
		require.NoError(t, spill.Append(m.TrialReport{Status: status}))
	}

	return spill
}

func TestMutationScore(t *testing.T) {
	tests := []struct {
		name     string
		statuses []m.TrialStatus
		want     float64
	}{
		{"all killed", []m.TrialStatus{m.Killed, m.Killed}, 100.0},
		{"all survived", []m.TrialStatus{m.Survived, m.Survived}, 0.0},
		{"half and half", []m.TrialStatus{m.Killed, m.Survived}, 50.0},
		{"timeouts and errors are excluded", []m.TrialStatus{m.Killed, m.Timeout, m.Errored, m.Survived, m.Killed}, 200.0 / 3.0},
		{"no decided trials", []m.TrialStatus{m.Timeout, m.Errored}, 100.0},
		{"empty run", nil, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := mutationScoreFromReports(spillOf(t, tt.statuses...))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, score, 0.001)
		})
	}
}
