// Package domain implements the reroute, proxy generation and rename-map
// workflows on top of the adapter layer.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"cmock.dev/pkg/cmock/internal/adapter"
	"cmock.dev/pkg/cmock/internal/controller"
	m "cmock.dev/pkg/cmock/internal/model"
)

// RerouteArgs contains the arguments for rerouting object files to mocks.
type RerouteArgs struct {
	Mocks     []m.Path
	Objects   []m.Path
	Threads   int
	KeepGoing bool
	DryRun    bool
	Report    m.Path
}

// GenerateArgs contains the arguments for proxy generation and header checks.
type GenerateArgs struct {
	Headers []m.Path
	Output  m.Path
}

// RenameMapArgs contains the arguments for extracting a rename map from proxy sources.
type RenameMapArgs struct {
	Sources []m.Path
	Output  m.Path
}

// ShowReportArgs names a report written by a previous reroute --report run.
type ShowReportArgs struct {
	Report m.Path
}

// Workflow is the entry point used by the CLI.
type Workflow interface {
	Reroute(ctx context.Context, args RerouteArgs) error
	Generate(ctx context.Context, args GenerateArgs) error
	CheckHeaders(ctx context.Context, args GenerateArgs) error
	ExtractRenameMap(ctx context.Context, args RenameMapArgs) error
	ShowReport(ctx context.Context, args ShowReportArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	Planner
	Rewriter
	ProxyGenerator
	RenameMapExtractor
	prefix string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	planner Planner,
	rewriter Rewriter,
	generator ProxyGenerator,
	renameMaps RenameMapExtractor,
	prefix string,
) Workflow {
	return &workflow{
		ReportStore:        reportStore,
		UI:                 ui,
		Planner:            planner,
		Rewriter:           rewriter,
		ProxyGenerator:     generator,
		RenameMapExtractor: renameMaps,
		prefix:             prefix,
	}
}

// Reroute builds the mock registry once, then plans and rewrites every object
// file. Targets run on up to args.Threads workers. With KeepGoing a failing
// target does not stop the others and all failures are returned together.
func (w *workflow) Reroute(ctx context.Context, args RerouteArgs) error {
	registry, err := w.BuildRegistry(ctx, args.Mocks)
	if err != nil {
		slog.Error("Failed to build mock registry", "error", err)
		return fmt.Errorf("build mock registry: %w", err)
	}

	slog.Info("Built mock registry", "mocks", len(args.Mocks), "functions", registry.Len())

	args.Objects = uniqueTargets(args.Objects)

	results, runErr := w.rerouteTargets(ctx, args, registry)

	report := m.RerouteReport{
		Prefix:   w.prefix,
		Mocks:    args.Mocks,
		Registry: registry.Sorted(),
		DryRun:   args.DryRun,
		Targets:  results,
	}

	w.DisplayRerouteSummary(ctx, report)

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			slog.Error("Failed to save reroute report", "file", args.Report, "error", err)
			return errors.Join(runErr, fmt.Errorf("save report: %w", err))
		}
	}

	return runErr
}

func (w *workflow) rerouteTargets(ctx context.Context, args RerouteArgs, registry m.SymbolSet) ([]m.TargetResult, error) {
	results := make([]m.TargetResult, len(args.Objects))
	for i, target := range args.Objects {
		results[i] = m.TargetResult{Path: target, Status: m.StatusCanceled}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(args.Threads))

	for i, target := range args.Objects {
		group.Go(func() error {
			results[i] = w.rerouteTarget(groupCtx, target, registry, args.DryRun)
			if results[i].Err != nil && !args.KeepGoing {
				return results[i].Err
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}

	var errs []error

	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, result.Err)
		}
	}

	if len(errs) > 0 {
		return results, fmt.Errorf("%d of %d object files failed: %w", len(errs), len(results), errors.Join(errs...))
	}

	return results, nil
}

// uniqueTargets drops repeated object files so no file is rewritten twice,
// possibly by two concurrent objcopy processes. The first spelling is kept.
func uniqueTargets(objects []m.Path) []m.Path {
	seen := make(map[string]bool, len(objects))
	unique := make([]m.Path, 0, len(objects))

	for _, object := range objects {
		key := filepath.Clean(string(object))
		if seen[key] {
			slog.Debug("Skipping repeated object file", "file", object)
			continue
		}

		seen[key] = true
		unique = append(unique, object)
	}

	return unique
}

func (w *workflow) rerouteTarget(ctx context.Context, target m.Path, registry m.SymbolSet, dryRun bool) m.TargetResult {
	result := m.TargetResult{Path: target}

	if err := ctx.Err(); err != nil {
		result.Status = m.StatusCanceled
		result.Err = err
		result.Error = err.Error()

		return result
	}

	names, err := w.Plan(ctx, target, registry)
	if err != nil {
		return failedResult(result, err)
	}

	result.Rerouted = names.Sorted()

	switch {
	case names.Len() == 0:
		result.Status = m.StatusUnchanged
		return result
	case dryRun:
		result.Status = m.StatusPlanned
		return result
	}

	if err := w.Rewrite(ctx, target, names); err != nil {
		return failedResult(result, err)
	}

	slog.Info("Rerouted object file", "file", target, "symbols", len(result.Rerouted))

	result.Status = m.StatusRerouted

	return result
}

func failedResult(result m.TargetResult, err error) m.TargetResult {
	result.Status = m.StatusFailed
	result.Err = err
	result.Error = err.Error()

	return result
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

// Generate writes proxy sources for every header declaring a mockable class.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	outputs, err := w.GenerateProxies(ctx, args.Headers, args.Output)
	if err != nil {
		slog.Error("Failed to generate proxies", "error", err)
		return fmt.Errorf("generate proxies: %w", err)
	}

	w.DisplayGenerated(ctx, outputs)

	return nil
}

// CheckHeaders reports which proxy sources Generate would write.
func (w *workflow) CheckHeaders(ctx context.Context, args GenerateArgs) error {
	outputs, err := w.ProxyOutputs(ctx, args.Headers, args.Output)
	if err != nil {
		slog.Error("Failed to check headers", "error", err)
		return fmt.Errorf("check headers: %w", err)
	}

	w.DisplayCheckedHeaders(ctx, outputs)

	return nil
}

// ExtractRenameMap writes the rename map for the given proxy sources.
func (w *workflow) ExtractRenameMap(ctx context.Context, args RenameMapArgs) error {
	renames, err := w.WriteRenameMap(ctx, args.Sources, args.Output)
	if err != nil {
		slog.Error("Failed to extract rename map", "error", err)
		return fmt.Errorf("extract rename map: %w", err)
	}

	w.DisplayRenameMap(ctx, args.Output, len(renames))

	return nil
}

// ShowReport prints the summary of a saved reroute report. It fails when the
// saved run had failed targets, so scripts can check an old run's outcome.
func (w *workflow) ShowReport(ctx context.Context, args ShowReportArgs) error {
	report, err := w.LoadReport(ctx, args.Report)
	if err != nil {
		slog.Error("Failed to load reroute report", "file", args.Report, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	w.DisplayRerouteSummary(ctx, report)

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%s: %d of %d object files failed", args.Report, len(failed), len(report.Targets))
	}

	return nil
}
