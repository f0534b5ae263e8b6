// Package adapter contains infrastructure adapters for the mutline CLI.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	m "github.com/mutline/mutline/internal/model"
)

// SourceFS abstracts the filesystem operations the workflow relies on when
// scanning target projects and staging mutant copies. It hides direct os
// access so the domain logic can be tested without touching the disk.
type SourceFS interface {
	// CollectFiles walks root and returns every regular file whose extension
	// is in extensions and whose path matches none of the exclude patterns.
	// Results are in walk order (lexical within each directory).
	CollectFiles(ctx context.Context, root m.Path, extensions []string, exclude []string) ([]m.Path, error)

	// ReadSource loads a file and splits it into a terminator-preserving
	// line sequence, recording its hash and root-relative path.
	ReadSource(ctx context.Context, root, path m.Path) (m.Source, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// CreateTempDir creates a scratch directory for one mutant trial.
	CreateTempDir(ctx context.Context, pattern string) (m.Path, error)

	// RemoveAll removes a directory and all its contents.
	RemoveAll(ctx context.Context, path m.Path) error

	// CopyDir recursively copies a directory tree, skipping VCS and vendor
	// directories.
	CopyDir(ctx context.Context, src, dst m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// LocalSourceFS backs SourceFS with the local filesystem.
type LocalSourceFS struct{}

// NewLocalSourceFS constructs a LocalSourceFS ready to be wired into the
// workflow.
func NewLocalSourceFS() *LocalSourceFS {
	return &LocalSourceFS{}
}

// CollectFiles walks root and filters by extension and exclude patterns.
func (a *LocalSourceFS) CollectFiles(ctx context.Context, root m.Path, extensions []string, exclude []string) ([]m.Path, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, expr := range exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	var files []m.Path

	err := filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if info.IsDir() {
			base := filepath.Base(path)
			if base == ".git" || base == "vendor" || base == "node_modules" || base == "__pycache__" {
				return filepath.SkipDir
			}

			return nil
		}

		if !hasExtension(path, extensions) {
			return nil
		}

		for _, re := range patterns {
			if re.MatchString(path) {
				return nil
			}
		}

		files = append(files, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)

	for _, want := range extensions {
		if ext == want {
			return true
		}
	}

	return false
}

// ReadSource loads path into a Source with hash and root-relative path.
func (a *LocalSourceFS) ReadSource(ctx context.Context, root, path m.Path) (m.Source, error) {
	if err := ctx.Err(); err != nil {
		return m.Source{}, err
	}

	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Source{}, fmt.Errorf("read %s: %w", path, err)
	}

	rel, err := a.RelPath(root, path)
	if err != nil {
		rel = path
	}

	return m.Source{
		Path:    path,
		RelPath: rel,
		Hash:    fmt.Sprintf("%x", sha256.Sum256(content)),
		Lines:   m.SplitLines(content),
	}, nil
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFS) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// CreateTempDir creates a scratch directory for one mutant trial.
func (a *LocalSourceFS) CreateTempDir(ctx context.Context, pattern string) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpDir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return "", err
	}

	return m.Path(tmpDir), nil
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFS) RemoveAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.RemoveAll(string(path))
}

// CopyDir recursively copies a directory tree.
func (a *LocalSourceFS) CopyDir(ctx context.Context, src, dst m.Path) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			base := filepath.Base(path)
			if base == ".git" || base == "vendor" || base == "node_modules" || base == "__pycache__" {
				return filepath.SkipDir
			}

			return os.MkdirAll(filepath.Join(string(dst), relPath), info.Mode())
		}

		return copyFile(path, filepath.Join(string(dst), relPath), info.Mode())
	})
}

func copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src is an internal project file path, not user input
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is an internal destination path, not user input
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFS) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
