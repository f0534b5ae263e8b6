package operators

import (
	m "github.com/mutline/mutline/internal/model"
)

// arithmeticTable lists the AOR replacements: the +-1 increment pair.
var arithmeticTable = []Replacement{
	{" - 1", " + 1"},
	{" + 1", " - 1"},
}

// GenerateArithmeticMutations emits AOR candidates for a single line.
func GenerateArithmeticMutations(lineNo int, line string) []m.Mutation {
	return scanTable(m.OperatorArithmetic, lineNo, line, arithmeticTable)
}
