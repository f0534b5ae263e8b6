package model

// Path represents a file system path.
type Path string

// Source represents a file selected for mutation together with its line
// sequence. Lines retain their original terminators so that joining them
// reproduces the file content byte-for-byte.
type Source struct {
	// Path is the location the file was read from.
	Path Path
	// RelPath is the path relative to the scanned root, used in diff headers.
	RelPath Path
	// Hash is a stable fingerprint of the file content.
	Hash string
	// Lines is the ordered line sequence, 1-indexed by convention.
	Lines []string
}

// SplitLines splits content into lines, keeping the trailing '\n' on each
// line. A final line without a terminator is kept as-is. Joining the result
// reproduces content exactly.
func SplitLines(content []byte) []string {
	var lines []string

	start := 0

	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lines = append(lines, string(content[start:i+1]))
			start = i + 1
		}
	}

	if start < len(content) {
		lines = append(lines, string(content[start:]))
	}

	return lines
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) []byte {
	size := 0
	for _, line := range lines {
		size += len(line)
	}

	out := make([]byte, 0, size)
	for _, line := range lines {
		out = append(out, line...)
	}

	return out
}
