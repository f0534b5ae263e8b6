package operators

import (
	m "github.com/mutline/mutline/internal/model"
)

// constantReplacement maps a matched token to its replacement. The boundary
// scan only ever produces these three token shapes, so the mapping is total.
var constantReplacement = map[string]string{
	"0":  "1",
	"1":  "0",
	"-1": "0",
}

// GenerateConstantMutations emits CRP candidates for a single line. It scans
// for the numeral tokens -1, 0 and 1, accepting a match only when it is not
// immediately preceded or followed by a word character or a dot. That keeps
// the digit inside identifiers (x1), larger numerals (10, 21) and decimals
// (1.5) out of the candidate set. Matches are non-overlapping: the scan
// resumes after the end of each accepted token.
func GenerateConstantMutations(lineNo int, line string) []m.Mutation {
	var muts []m.Mutation

	for i := 0; i < len(line); {
		tok := constantTokenAt(line, i)
		if tok == "" {
			i++
			continue
		}

		muts = append(muts, m.Mutation{
			Operator: m.OperatorConstant,
			LineNo:   lineNo,
			ColStart: i,
			ColEnd:   i + len(tok),
			Before:   tok,
			After:    constantReplacement[tok],
		})

		i += len(tok)
	}

	return muts
}

// constantTokenAt reports the numeral token starting at offset i, or "" when
// none matches there. "-1" is preferred over the bare digit when both start
// at i.
func constantTokenAt(line string, i int) string {
	for _, tok := range []string{"-1", "0", "1"} {
		if !hasTokenAt(line, i, tok) {
			continue
		}

		if isBoundary(line, i-1) && isBoundary(line, i+len(tok)) {
			return tok
		}
	}

	return ""
}

func hasTokenAt(line string, i int, tok string) bool {
	return i+len(tok) <= len(line) && line[i:i+len(tok)] == tok
}

// isBoundary reports whether the byte at index i (which may be out of range)
// terminates a numeral token: anything except a word character or a dot.
func isBoundary(line string, i int) bool {
	if i < 0 || i >= len(line) {
		return true
	}

	return !isWordByte(line[i]) && line[i] != '.'
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
