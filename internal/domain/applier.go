package domain

import (
	"errors"
	"fmt"
	"slices"

	m "github.com/mutline/mutline/internal/model"
)

// ErrStaleLocation reports that the text expected by a mutation is no longer
// present at its recorded span. This happens when offsets were computed
// against a different version of the line, e.g. after another edit on the
// same line, and is always fatal for that one application.
var ErrStaleLocation = errors.New("stale mutation location")

// ApplyMutation returns a new line sequence identical to lines except that
// the span [ColStart, ColEnd) of line LineNo is replaced by After. The input
// is never modified.
//
// The text at the recorded span must still equal Before at call time;
// otherwise ApplyMutation fails with ErrStaleLocation and no lines change.
// Two mutations are never composed into one buffer: each application starts
// from a pristine sequence, and a second mutation must be re-derived against
// a freshly scanned source.
func ApplyMutation(lines []string, mu m.Mutation) ([]string, error) {
	if mu.LineNo < 1 || mu.LineNo > len(lines) {
		return nil, fmt.Errorf("%w: line %d out of range (1-%d)", ErrStaleLocation, mu.LineNo, len(lines))
	}

	line := lines[mu.LineNo-1]

	if mu.ColStart < 0 || mu.ColEnd < mu.ColStart || mu.ColEnd > len(line) {
		return nil, fmt.Errorf("%w: span %d-%d out of range on line %d", ErrStaleLocation, mu.ColStart, mu.ColEnd, mu.LineNo)
	}

	if line[mu.ColStart:mu.ColEnd] != mu.Before {
		return nil, fmt.Errorf("%w: expected %q at line %d cols %d-%d, found %q",
			ErrStaleLocation, mu.Before, mu.LineNo, mu.ColStart, mu.ColEnd, line[mu.ColStart:mu.ColEnd])
	}

	mutated := slices.Clone(lines)
	mutated[mu.LineNo-1] = line[:mu.ColStart] + mu.After + line[mu.ColEnd:]

	return mutated, nil
}
