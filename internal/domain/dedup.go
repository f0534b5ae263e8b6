package domain

import (
	m "github.com/mutline/mutline/internal/model"
)

// Dedupe collapses the raw candidate list to one entry per distinct mutation
// value. Mutation is a comparable struct, so the value itself is the key.
// The output keeps each key at the position of its first occurrence; later
// duplicates are dropped without moving the entry.
func Dedupe(muts []m.Mutation) []m.Mutation {
	seen := make(map[m.Mutation]struct{}, len(muts))
	out := make([]m.Mutation, 0, len(muts))

	for _, mu := range muts {
		if _, ok := seen[mu]; ok {
			continue
		}

		seen[mu] = struct{}{}
		out = append(out, mu)
	}

	return out
}
