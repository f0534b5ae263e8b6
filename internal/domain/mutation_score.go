package domain

import (
	m "github.com/mutline/mutline/internal/model"
	"github.com/mutline/mutline/pkg"
)

// mutationScoreFromReports computes the mutation score in percent:
// killed / (killed + survived). Timeout and errored trials are excluded from
// the denominator. An empty denominator scores 100.
func mutationScoreFromReports(reports pkg.Spill[m.TrialReport]) (float64, error) {
	killed := 0
	total := 0

	err := reports.Range(func(_ uint64, report m.TrialReport) error {
		switch report.Status {
		case m.Killed:
			killed++
			total++
		case m.Survived:
			total++
		case m.Timeout, m.Errored:
			// Excluded from the score denominator.
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if total == 0 {
		return 100.0, nil
	}

	return float64(killed) / float64(total) * 100.0, nil
}
