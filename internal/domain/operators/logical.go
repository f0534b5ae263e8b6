package operators

import (
	m "github.com/mutline/mutline/internal/model"
)

// logicalTable lists the LCR replacements, space-delimited keywords.
var logicalTable = []Replacement{
	{" and ", " or "},
	{" or ", " and "},
}

// GenerateLogicalMutations emits LCR candidates for a single line.
func GenerateLogicalMutations(lineNo int, line string) []m.Mutation {
	return scanTable(m.OperatorLogical, lineNo, line, logicalTable)
}
