package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mutline/mutline/internal/model"
)

const reportFileName = "trials.yaml"

// ReportStore persists trial reports between runs.
type ReportStore interface {
	SaveReports(ctx context.Context, dir m.Path, reports []m.TrialReport) error
	LoadReports(ctx context.Context, dir m.Path) ([]m.TrialReport, error)
}

// reportDocument is the on-disk shape of a report file.
type reportDocument struct {
	GeneratedAt time.Time       `yaml:"generated_at"`
	Reports     []m.TrialReport `yaml:"reports"`
}

// YAMLReportStore stores reports as a single YAML document per reports dir.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReports writes all reports to <dir>/trials.yaml, creating dir if
// needed.
func (s *YAMLReportStore) SaveReports(ctx context.Context, dir m.Path, reports []m.TrialReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir %s: %w", dir, err)
	}

	doc := reportDocument{
		GeneratedAt: time.Now().UTC(),
		Reports:     reports,
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write reports to %s: %w", target, err)
	}

	return nil
}

// LoadReports reads reports previously written by SaveReports. A missing
// file yields an empty slice, not an error.
func (s *YAMLReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.TrialReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports from %s: %w", target, err)
	}

	var doc reportDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode reports from %s: %w", target, err)
	}

	return doc.Reports, nil
}
