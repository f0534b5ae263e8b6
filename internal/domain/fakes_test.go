package domain

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/mutline/mutline/internal/controller"
	m "github.com/mutline/mutline/internal/model"
)

// fakeSourceFS serves sources from an in-memory map and records every write.
type fakeSourceFS struct {
	mu sync.Mutex

	files    map[m.Path]string
	written  map[m.Path][]byte
	tempDirs int
	removed  []m.Path
	copied   [][2]m.Path

	collectErr error
	readErr    error
}

func newFakeSourceFS(files map[m.Path]string) *fakeSourceFS {
	return &fakeSourceFS{
		files:   files,
		written: make(map[m.Path][]byte),
	}
}

func (f *fakeSourceFS) CollectFiles(_ context.Context, _ m.Path, extensions []string, _ []string) ([]m.Path, error) {
	if f.collectErr != nil {
		return nil, f.collectErr
	}

	var found []m.Path

	for path := range f.files {
		for _, ext := range extensions {
			if filepath.Ext(string(path)) == ext {
				found = append(found, path)
				break
			}
		}
	}

	// Map iteration order is random; the real adapter walks lexically.
	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

func (f *fakeSourceFS) ReadSource(_ context.Context, root, path m.Path) (m.Source, error) {
	if f.readErr != nil {
		return m.Source{}, f.readErr
	}

	content, ok := f.files[path]
	if !ok {
		return m.Source{}, fmt.Errorf("no such file: %s", path)
	}

	rel, err := filepath.Rel(string(root), string(path))
	if err != nil {
		rel = string(path)
	}

	sum := sha256.Sum256([]byte(content))

	return m.Source{
		Path:    path,
		RelPath: m.Path(rel),
		Hash:    hex.EncodeToString(sum[:]),
		Lines:   m.SplitLines([]byte(content)),
	}, nil
}

func (f *fakeSourceFS) WriteFile(_ context.Context, path m.Path, content []byte, _ os.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.written[path] = content

	return nil
}

func (f *fakeSourceFS) CreateTempDir(_ context.Context, _ string) (m.Path, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.tempDirs++

	return m.Path(fmt.Sprintf("/tmp/trial-%d", f.tempDirs)), nil
}

func (f *fakeSourceFS) RemoveAll(_ context.Context, path m.Path) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removed = append(f.removed, path)

	return nil
}

func (f *fakeSourceFS) CopyDir(_ context.Context, src, dst m.Path) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.copied = append(f.copied, [2]m.Path{src, dst})

	return nil
}

func (f *fakeSourceFS) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	return m.Path(rel), err
}

// fakeRunner returns canned results, optionally blocking until the context
// expires to simulate a hung test suite.
type fakeRunner struct {
	output string
	failed bool
	err    error
	block  bool

	mu   sync.Mutex
	runs int
}

func (r *fakeRunner) Run(ctx context.Context, _ string, _ string) (string, bool, error) {
	r.mu.Lock()
	r.runs++
	r.mu.Unlock()

	if r.block {
		<-ctx.Done()
		return r.output, true, ctx.Err()
	}

	return r.output, r.failed, r.err
}

func (r *fakeRunner) runCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.runs
}

type fakeStore struct {
	mu      sync.Mutex
	saved   []m.TrialReport
	savedTo m.Path
	saveErr error
}

func (s *fakeStore) SaveReports(_ context.Context, dir m.Path, reports []m.TrialReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}

	s.savedTo = dir
	s.saved = append([]m.TrialReport(nil), reports...)

	return nil
}

func (s *fakeStore) LoadReports(_ context.Context, _ m.Path) ([]m.TrialReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saved, nil
}

type fakeUI struct {
	mu sync.Mutex

	candidates []controller.FileCandidates
	started    int
	progress   int
	summary    controller.TrialSummary
	finished   bool
	patches    []string
}

func (u *fakeUI) DisplayCandidates(_ context.Context, files []controller.FileCandidates) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.candidates = files

	return nil
}

func (u *fakeUI) TrialStarted(_ context.Context, total, _ int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.started = total
}

func (u *fakeUI) TrialProgress(_ context.Context, _ m.TrialReport, _, _ int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.progress++
}

func (u *fakeUI) TrialFinished(_ context.Context, summary controller.TrialSummary) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.summary = summary
	u.finished = true

	return nil
}

func (u *fakeUI) DisplayPatch(_ context.Context, text string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.patches = append(u.patches, text)

	return nil
}
