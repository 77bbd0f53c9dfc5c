package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	m "cmock.dev/pkg/cmock/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists reroute reports.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.RerouteReport) error
	LoadReport(ctx context.Context, path m.Path) (m.RerouteReport, error)
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs the default YAML-backed ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to path, creating parent directories as needed.
func (s *YAMLReportStore) SaveReport(ctx context.Context, path m.Path, report m.RerouteReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range report.Targets {
		if report.Targets[i].Err != nil && report.Targets[i].Error == "" {
			report.Targets[i].Error = report.Targets[i].Err.Error()
		}
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return err
		}
	}

	return os.WriteFile(string(path), data, 0o600)
}

// LoadReport reads a report previously written by SaveReport.
func (s *YAMLReportStore) LoadReport(ctx context.Context, path m.Path) (m.RerouteReport, error) {
	var report m.RerouteReport

	if err := ctx.Err(); err != nil {
		return report, err
	}

	// #nosec G304 - report path is supplied by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return report, err
	}

	if err := yaml.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
