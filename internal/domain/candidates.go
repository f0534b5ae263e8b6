// Package domain contains the core mutation testing logic: the candidate
// generator, the applier, the diff renderer and the trial workflow.
package domain

import (
	"github.com/mutline/mutline/internal/domain/operators"
	m "github.com/mutline/mutline/internal/model"
)

// catalog lists the operator families in their fixed scan order. Output
// order is family order within each line, so candidate lists are
// reproducible across runs and platforms.
var catalog = []func(lineNo int, line string) []m.Mutation{
	operators.GenerateRelationalMutations,
	operators.GenerateLogicalMutations,
	operators.GenerateNoneCheckMutations,
	operators.GenerateArithmeticMutations,
	operators.GenerateConstantMutations,
}

// GenerateCandidates scans an ordered line sequence and returns every
// candidate edit matching the operator catalog, deduplicated by the full
// mutation value in first-occurrence order. It never fails; lines with no
// match simply contribute no candidates.
func GenerateCandidates(lines []string) []m.Mutation {
	var muts []m.Mutation

	for i, line := range lines {
		lineNo := i + 1

		for _, generate := range catalog {
			muts = append(muts, generate(lineNo, line)...)
		}
	}

	return Dedupe(muts)
}
