package operators

import (
	m "github.com/mutline/mutline/internal/model"
)

// noneCheckTable lists the NMC replacements. " is None" never matches inside
// " is not None": the capital N of None does not occur after " is " there.
var noneCheckTable = []Replacement{
	{" is None", " is not None"},
	{" is not None", " is None"},
}

// GenerateNoneCheckMutations emits NMC candidates for a single line.
func GenerateNoneCheckMutations(lineNo int, line string) []m.Mutation {
	return scanTable(m.OperatorNoneCheck, lineNo, line, noneCheckTable)
}
