package operators

import (
	m "github.com/mutline/mutline/internal/model"
)

// relationalTable lists the ROR replacements. Each direction is a separate
// entry and every operator is surrounded by single spaces, which keeps the
// match away from compound tokens like <= when scanning for <.
var relationalTable = []Replacement{
	{" == ", " != "},
	{" != ", " == "},
	{" <= ", " < "},
	{" < ", " <= "},
	{" >= ", " > "},
	{" > ", " >= "},
}

// GenerateRelationalMutations emits ROR candidates for a single line.
func GenerateRelationalMutations(lineNo int, line string) []m.Mutation {
	return scanTable(m.OperatorRelational, lineNo, line, relationalTable)
}
