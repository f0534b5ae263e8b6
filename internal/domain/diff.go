package domain

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"

	m "github.com/mutline/mutline/internal/model"
)

// diffContextLines is the number of unchanged lines shown around each hunk.
const diffContextLines = 3

// RenderDiff renders a unified diff between an original and a mutated line
// sequence, labelled "a/<relPath>" and "b/<relPath>". Lines are expected to
// carry their terminators, so applying the diff to the original reproduces
// the mutated content byte-for-byte. Non-empty output always ends with a
// newline.
func RenderDiff(original, mutated []string, relPath m.Path) (string, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        original,
		B:        mutated,
		FromFile: "a/" + string(relPath),
		ToFile:   "b/" + string(relPath),
		Context:  diffContextLines,
	})
	if err != nil {
		return "", fmt.Errorf("render diff for %s: %w", relPath, err)
	}

	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	return text, nil
}

// ParsePatch parses a rendered unified diff back into its structured form.
// It is used to sanity-check patches before they are persisted.
func ParsePatch(text string) (*diff.FileDiff, error) {
	fd, err := diff.ParseFileDiff([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}

	return fd, nil
}

// PatchStat returns the number of added and deleted lines in a patch.
func PatchStat(text string) (added, deleted int, err error) {
	fd, err := ParsePatch(text)
	if err != nil {
		return 0, 0, err
	}

	stat := fd.Stat()

	return int(stat.Added + stat.Changed), int(stat.Deleted + stat.Changed), nil
}
