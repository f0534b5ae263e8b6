// Package operators provides the per-family candidate generators for the
// mutation catalog. Matching is purely textual: each family scans raw line
// text against a fixed, ordered replacement table, so candidates can land
// inside string literals or comments.
package operators

import (
	"strings"

	m "github.com/mutline/mutline/internal/model"
)

// Replacement is one entry of an operator table.
type Replacement struct {
	Before string
	After  string
}

// findAllSubstrings returns the [start, end) span of every occurrence of
// before in line. After a match at offset i the scan resumes at i+1, not at
// the end of the match, so every start position is tried and overlapping
// occurrences are reported.
func findAllSubstrings(line, before string) [][2]int {
	var spans [][2]int

	start := 0

	for {
		idx := strings.Index(line[start:], before)
		if idx < 0 {
			return spans
		}

		abs := start + idx
		spans = append(spans, [2]int{abs, abs + len(before)})
		start = abs + 1
	}
}

// scanTable emits one mutation per occurrence of each table entry, in table
// order then occurrence order.
func scanTable(op m.Operator, lineNo int, line string, table []Replacement) []m.Mutation {
	var muts []m.Mutation

	for _, entry := range table {
		for _, span := range findAllSubstrings(line, entry.Before) {
			muts = append(muts, m.Mutation{
				Operator: op,
				LineNo:   lineNo,
				ColStart: span[0],
				ColEnd:   span[1],
				Before:   entry.Before,
				After:    entry.After,
			})
		}
	}

	return muts
}
