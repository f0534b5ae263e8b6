// Package model defines the data structures for line-level mutation testing.
package model

import "fmt"

// Operator identifies a mutation operator family.
type Operator string

const (
	// OperatorRelational replaces relational operators (== <-> !=, < <-> <=, > <-> >=).
	OperatorRelational Operator = "ROR"
	// OperatorLogical replaces logical connectors (and <-> or).
	OperatorLogical Operator = "LCR"
	// OperatorNoneCheck flips None-check polarity (is None <-> is not None).
	OperatorNoneCheck Operator = "NMC"
	// OperatorArithmetic replaces arithmetic increments (- 1 <-> + 1).
	OperatorArithmetic Operator = "AOR"
	// OperatorConstant replaces small integer constants (0 -> 1, 1 -> 0, -1 -> 0).
	OperatorConstant Operator = "CRP"
)

// Mutation describes one candidate edit at a specific location in a line
// sequence. It is a plain comparable value: two Mutations are equal exactly
// when all fields are equal, and the struct itself serves as the dedup key.
//
// Offsets are only meaningful relative to the exact line sequence the
// mutation was generated from. Applying a mutation to a sequence that has
// been edited elsewhere on the same line is rejected by the applier.
type Mutation struct {
	Operator Operator `yaml:"operator"`
	// LineNo is the 1-indexed line position in the source line sequence.
	LineNo int `yaml:"line"`
	// ColStart and ColEnd are 0-indexed half-open byte offsets within the
	// line; ColEnd-ColStart always equals len(Before).
	ColStart int `yaml:"col_start"`
	ColEnd   int `yaml:"col_end"`
	// Before is the exact text expected at the span at generation time.
	Before string `yaml:"before"`
	// After is the replacement text.
	After string `yaml:"after"`
}

// String renders a short human-readable location tag, e.g. "ROR L12:4-8".
func (mu Mutation) String() string {
	return fmt.Sprintf("%s L%d:%d-%d %q -> %q", mu.Operator, mu.LineNo, mu.ColStart, mu.ColEnd, mu.Before, mu.After)
}
