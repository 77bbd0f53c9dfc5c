package domain_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cmock.dev/pkg/cmock/internal/adapter"
	adaptermocks "cmock.dev/pkg/cmock/internal/adapter/mocks"
	controllermocks "cmock.dev/pkg/cmock/internal/controller/mocks"
	"cmock.dev/pkg/cmock/internal/domain"
	domainmocks "cmock.dev/pkg/cmock/internal/domain/mocks"
	m "cmock.dev/pkg/cmock/internal/model"
)

type workflowFixture struct {
	inspector *fakeInspector
	renamer   *fakeRenamer
	ui        *controllermocks.MockUI
	store     *adaptermocks.MockReportStore
	workflow  domain.Workflow
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	inspector := newFakeInspector()
	renamer := newFakeRenamer(inspector)
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockReportStore(t)
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	wf := domain.NewWorkflow(
		store,
		ui,
		domain.NewPlanner(domain.NewSymbolExtractor(inspector, domain.DefaultPrefix)),
		domain.NewRewriter(fsAdapter, renamer, domain.DefaultPrefix, t.TempDir()),
		domain.NewProxyGenerator(fsAdapter),
		domain.NewRenameMapExtractor(fsAdapter, domain.DefaultPrefix),
		domain.DefaultPrefix,
	)

	return &workflowFixture{
		inspector: inspector,
		renamer:   renamer,
		ui:        ui,
		store:     store,
		workflow:  wf,
	}
}

// captureSummary records the report handed to the UI.
func (f *workflowFixture) captureSummary(report *m.RerouteReport) {
	f.ui.EXPECT().DisplayRerouteSummary(mock.Anything, mock.Anything).
		Run(func(_ context.Context, r m.RerouteReport) {
			*report = r
		}).
		Return().Once()
}

func statuses(report m.RerouteReport) map[m.Path]m.TargetStatus {
	out := make(map[m.Path]m.TargetStatus, len(report.Targets))
	for _, target := range report.Targets {
		out[target.Path] = target.Status
	}

	return out
}

func TestWorkflow_Reroute_Scenario(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_foo", "proxy_bar"}, nil)
	f.inspector.addObject("target.o", nil, []string{"foo", "baz"})

	var report m.RerouteReport
	f.captureSummary(&report)

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:     []m.Path{"mocks.o"},
		Objects:   []m.Path{"target.o"},
		Threads:   1,
		KeepGoing: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "foo proxy_foo\n", f.renamer.maps["target.o"])
	assert.Equal(t, []m.Symbol{"bar", "foo"}, report.Registry)
	require.Len(t, report.Targets, 1)
	assert.Equal(t, m.StatusRerouted, report.Targets[0].Status)
	assert.Equal(t, []m.Symbol{"foo"}, report.Targets[0].Rerouted)
	assert.Equal(t, domain.DefaultPrefix, report.Prefix)
}

func TestWorkflow_Reroute_SecondRunIsNoOp(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_foo", "proxy_bar"}, nil)
	f.inspector.addObject("target.o", nil, []string{"foo", "baz"})

	args := domain.RerouteArgs{Mocks: []m.Path{"mocks.o"}, Objects: []m.Path{"target.o"}, Threads: 1, KeepGoing: true}

	var first, second m.RerouteReport

	f.captureSummary(&first)
	require.NoError(t, f.workflow.Reroute(context.Background(), args))

	f.captureSummary(&second)
	require.NoError(t, f.workflow.Reroute(context.Background(), args))

	assert.Equal(t, 1, f.renamer.callCount())
	assert.Equal(t, m.StatusRerouted, first.Targets[0].Status)
	assert.Equal(t, m.StatusUnchanged, second.Targets[0].Status)
	assert.Empty(t, second.Targets[0].Rerouted)
}

func TestWorkflow_Reroute_RepeatedObjectIsRewrittenOnce(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_foo"}, nil)
	f.inspector.addObject("target.o", nil, []string{"foo"})

	var report m.RerouteReport
	f.captureSummary(&report)

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:     []m.Path{"mocks.o"},
		Objects:   []m.Path{"target.o", "./target.o", "target.o"},
		Threads:   4,
		KeepGoing: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.renamer.callCount())
	require.Len(t, report.Targets, 1)
	assert.Equal(t, m.Path("target.o"), report.Targets[0].Path)
	assert.Equal(t, m.StatusRerouted, report.Targets[0].Status)
}

func TestWorkflow_Reroute_TargetDefiningTheNameIsLeftAlone(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_foo"}, nil)
	f.inspector.addObject("impl.o", []string{"foo"}, []string{"printf"})

	var report m.RerouteReport
	f.captureSummary(&report)

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:   []m.Path{"mocks.o"},
		Objects: []m.Path{"impl.o"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, f.renamer.callCount())
	assert.Equal(t, m.StatusUnchanged, report.Targets[0].Status)
}

func TestWorkflow_Reroute_KeepGoingProcessesEveryTarget(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_open"}, nil)
	f.inspector.addObject("a.o", nil, []string{"open"})
	f.inspector.addObject("c.o", nil, []string{"open"})
	f.inspector.addObject("d.o", nil, []string{"close"})
	f.inspector.fail["b.o"] = errors.New("file truncated")

	var report m.RerouteReport
	f.captureSummary(&report)

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:     []m.Path{"mocks.o"},
		Objects:   []m.Path{"a.o", "b.o", "c.o", "d.o"},
		Threads:   3,
		KeepGoing: true,
	})
	require.Error(t, err)

	var extractionErr *m.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, m.Path("b.o"), extractionErr.Path)
	assert.Contains(t, err.Error(), "1 of 4 object files failed")

	assert.Equal(t, map[m.Path]m.TargetStatus{
		"a.o": m.StatusRerouted,
		"b.o": m.StatusFailed,
		"c.o": m.StatusRerouted,
		"d.o": m.StatusUnchanged,
	}, statuses(report))
	assert.Equal(t, 2, f.renamer.callCount())
	require.Len(t, report.Failed(), 1)
	assert.NotEmpty(t, report.Failed()[0].Error)
}

func TestWorkflow_Reroute_StopOnFirstError(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_open"}, nil)
	f.inspector.addObject("b.o", nil, []string{"open"})
	f.inspector.addObject("c.o", nil, []string{"open"})
	f.renamer.fail["a.o"] = errors.New("objcopy: a.o: bad section")
	f.inspector.addObject("a.o", nil, []string{"open"})

	var report m.RerouteReport
	f.captureSummary(&report)

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:     []m.Path{"mocks.o"},
		Objects:   []m.Path{"a.o", "b.o", "c.o"},
		Threads:   1,
		KeepGoing: false,
	})

	var rewriteErr *m.RewriteError
	require.ErrorAs(t, err, &rewriteErr)
	assert.Equal(t, m.Path("a.o"), rewriteErr.Path)

	assert.Equal(t, map[m.Path]m.TargetStatus{
		"a.o": m.StatusFailed,
		"b.o": m.StatusCanceled,
		"c.o": m.StatusCanceled,
	}, statuses(report))
	assert.Equal(t, 1, f.renamer.callCount())
}

func TestWorkflow_Reroute_DryRun(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_open"}, nil)
	f.inspector.addObject("a.o", nil, []string{"open"})

	var report m.RerouteReport
	f.captureSummary(&report)

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:   []m.Path{"mocks.o"},
		Objects: []m.Path{"a.o"},
		DryRun:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, f.renamer.callCount())
	assert.True(t, report.DryRun)
	assert.Equal(t, m.StatusPlanned, report.Targets[0].Status)
	assert.Equal(t, []m.Symbol{"open"}, report.Targets[0].Rerouted)
}

func TestWorkflow_Reroute_SavesReport(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_open"}, nil)
	f.inspector.addObject("a.o", nil, []string{"open"})

	var report m.RerouteReport
	f.captureSummary(&report)

	f.store.EXPECT().SaveReport(mock.Anything, m.Path("out/report.yaml"), mock.MatchedBy(func(r m.RerouteReport) bool {
		return len(r.Targets) == 1 && r.Targets[0].Status == m.StatusRerouted
	})).Return(nil).Once()

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:   []m.Path{"mocks.o"},
		Objects: []m.Path{"a.o"},
		Report:  "out/report.yaml",
	})
	require.NoError(t, err)
}

func TestWorkflow_Reroute_ReportFailureIsReturned(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.addObject("mocks.o", []string{"proxy_open"}, nil)
	f.inspector.addObject("a.o", nil, []string{"open"})

	var report m.RerouteReport
	f.captureSummary(&report)

	saveErr := errors.New("disk full")
	f.store.EXPECT().SaveReport(mock.Anything, m.Path("report.yaml"), mock.Anything).Return(saveErr).Once()

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:   []m.Path{"mocks.o"},
		Objects: []m.Path{"a.o"},
		Report:  "report.yaml",
	})
	assert.ErrorIs(t, err, saveErr)
}

func TestWorkflow_Reroute_RegistryFailure(t *testing.T) {
	f := newWorkflowFixture(t)
	f.inspector.fail["mocks.o"] = errors.New("not an object")

	err := f.workflow.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:   []m.Path{"mocks.o"},
		Objects: []m.Path{"a.o"},
	})

	var extractionErr *m.ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, m.Path("mocks.o"), extractionErr.Path)
	f.ui.AssertNotCalled(t, "DisplayRerouteSummary", mock.Anything, mock.Anything)
}

func TestWorkflow_Reroute_CanceledContext(t *testing.T) {
	f := newWorkflowFixture(t)

	var report m.RerouteReport
	f.captureSummary(&report)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.workflow.Reroute(ctx, domain.RerouteArgs{
		Objects:   []m.Path{"a.o", "b.o"},
		Threads:   2,
		KeepGoing: true,
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, map[m.Path]m.TargetStatus{
		"a.o": m.StatusCanceled,
		"b.o": m.StatusCanceled,
	}, statuses(report))
}

func TestWorkflow_Generate(t *testing.T) {
	f := newWorkflowFixture(t)
	widget := writeHeader(t, t.TempDir(), "Widget.h", widgetHeader)
	outDir := t.TempDir()

	f.ui.EXPECT().DisplayGenerated(mock.Anything, []m.Path{m.Path(filepath.Join(outDir, "Widget.cpp"))}).Return().Once()

	err := f.workflow.Generate(context.Background(), domain.GenerateArgs{
		Headers: []m.Path{widget},
		Output:  m.Path(outDir),
	})
	require.NoError(t, err)
}

func TestWorkflow_CheckHeaders(t *testing.T) {
	f := newWorkflowFixture(t)
	dir := t.TempDir()
	widget := writeHeader(t, dir, "Widget.h", widgetHeader)
	plain := writeHeader(t, dir, "Plain.h", plainHeader)

	f.ui.EXPECT().DisplayCheckedHeaders(mock.Anything, []m.Path{m.Path(filepath.Join("gen", "Widget.cpp"))}).Return().Once()

	err := f.workflow.CheckHeaders(context.Background(), domain.GenerateArgs{
		Headers: []m.Path{plain, widget},
		Output:  "gen",
	})
	require.NoError(t, err)
}

func TestWorkflow_Generate_ParseError(t *testing.T) {
	f := newWorkflowFixture(t)
	broken := writeHeader(t, t.TempDir(), "Broken.h", "struct Broken : CMockMocker<Broken> {\n")

	err := f.workflow.Generate(context.Background(), domain.GenerateArgs{
		Headers: []m.Path{broken},
		Output:  m.Path(t.TempDir()),
	})

	var parseErr *m.ParseError
	require.ErrorAs(t, err, &parseErr)
	f.ui.AssertNotCalled(t, "DisplayGenerated", mock.Anything, mock.Anything)
}

func TestWorkflow_ExtractRenameMap(t *testing.T) {
	f := newWorkflowFixture(t)
	dir := t.TempDir()
	source := writeHeader(t, dir, "Widget.cpp", "CMOCK_MOCK_FUNCTION(Widget, int, getValue, ());\nCMOCK_MOCK_FUNCTION(Widget, int, getValue, ());\n")
	out := m.Path(filepath.Join(dir, "rename.txt"))

	f.ui.EXPECT().DisplayRenameMap(mock.Anything, out, 1).Return().Once()

	err := f.workflow.ExtractRenameMap(context.Background(), domain.RenameMapArgs{
		Sources: []m.Path{source},
		Output:  out,
	})
	require.NoError(t, err)
}

func TestWorkflow_Reroute_PlansOnceAndRewritesPlannedNames(t *testing.T) {
	planner := domainmocks.NewMockPlanner(t)
	rewriter := domainmocks.NewMockRewriter(t)
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockReportStore(t)

	registry := symbols("foo", "bar")
	planned := symbols("foo")

	planner.EXPECT().BuildRegistry(mock.Anything, []m.Path{"mocks.o"}).Return(registry, nil).Once()
	planner.EXPECT().Plan(mock.Anything, m.Path("a.o"), registry).Return(planned, nil).Once()
	planner.EXPECT().Plan(mock.Anything, m.Path("b.o"), registry).Return(m.NewSymbolSet(), nil).Once()
	rewriter.EXPECT().Rewrite(mock.Anything, m.Path("a.o"), planned).Return(nil).Once()
	ui.EXPECT().DisplayRerouteSummary(mock.Anything, mock.MatchedBy(func(r m.RerouteReport) bool {
		return len(r.Targets) == 2 &&
			r.Targets[0].Path == "a.o" && r.Targets[0].Status == m.StatusRerouted &&
			r.Targets[1].Path == "b.o" && r.Targets[1].Status == m.StatusUnchanged
	})).Return().Once()

	wf := domain.NewWorkflow(store, ui, planner, rewriter, nil, nil, domain.DefaultPrefix)

	err := wf.Reroute(context.Background(), domain.RerouteArgs{
		Mocks:     []m.Path{"mocks.o"},
		Objects:   []m.Path{"a.o", "b.o"},
		Threads:   2,
		KeepGoing: true,
	})
	require.NoError(t, err)
}

func TestWorkflow_ShowReport(t *testing.T) {
	f := newWorkflowFixture(t)

	saved := m.RerouteReport{
		Prefix:   domain.DefaultPrefix,
		Registry: []m.Symbol{"open"},
		Targets:  []m.TargetResult{{Path: "a.o", Status: m.StatusRerouted, Rerouted: []m.Symbol{"open"}}},
	}

	f.store.EXPECT().LoadReport(mock.Anything, m.Path("reroute.yaml")).Return(saved, nil).Once()

	var shown m.RerouteReport
	f.captureSummary(&shown)

	require.NoError(t, f.workflow.ShowReport(context.Background(), domain.ShowReportArgs{Report: "reroute.yaml"}))
	assert.Equal(t, saved, shown)
}

func TestWorkflow_ShowReport_FailedTargets(t *testing.T) {
	f := newWorkflowFixture(t)

	f.store.EXPECT().LoadReport(mock.Anything, m.Path("reroute.yaml")).Return(m.RerouteReport{
		Targets: []m.TargetResult{
			{Path: "a.o", Status: m.StatusRerouted},
			{Path: "b.o", Status: m.StatusFailed, Error: "objcopy: b.o: bad value"},
		},
	}, nil).Once()

	var shown m.RerouteReport
	f.captureSummary(&shown)

	err := f.workflow.ShowReport(context.Background(), domain.ShowReportArgs{Report: "reroute.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 object files failed")
	assert.Len(t, shown.Failed(), 1)
}

func TestWorkflow_ShowReport_LoadFailure(t *testing.T) {
	f := newWorkflowFixture(t)

	loadErr := errors.New("open reroute.yaml: no such file or directory")
	f.store.EXPECT().LoadReport(mock.Anything, m.Path("reroute.yaml")).Return(m.RerouteReport{}, loadErr).Once()

	err := f.workflow.ShowReport(context.Background(), domain.ShowReportArgs{Report: "reroute.yaml"})
	require.ErrorIs(t, err, loadErr)
	f.ui.AssertNotCalled(t, "DisplayRerouteSummary", mock.Anything, mock.Anything)
}
