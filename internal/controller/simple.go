package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "cmock.dev/pkg/cmock/internal/model"
)

// CheckedHeadersSeparator joins the paths printed by checkHeaders so build
// systems can consume them as a list.
const CheckedHeadersSeparator = ";"

var statusStyles = map[m.TargetStatus]lipgloss.Style{
	m.StatusRerouted:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	m.StatusUnchanged: lipgloss.NewStyle().Faint(true),
	m.StatusPlanned:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	m.StatusFailed:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	m.StatusCanceled:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd   *cobra.Command
	color bool
}

// NewSimpleUI creates a new SimpleUI without colour.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayRerouteSummary prints one table row per target and the failures below it.
func (s *SimpleUI) DisplayRerouteSummary(ctx context.Context, report m.RerouteReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", s.renderRerouteTable(report))

	for _, failed := range report.Failed() {
		s.printf("%s: %s\n", failed.Path, failureMessage(failed))
	}
}

func (s *SimpleUI) renderRerouteTable(report m.RerouteReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target", "Rerouted", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	rerouted := 0

	for _, target := range report.Targets {
		if target.Status == m.StatusRerouted || target.Status == m.StatusPlanned {
			rerouted++
		}

		table.Append([]string{
			string(target.Path),
			fmt.Sprintf("%d", len(target.Rerouted)),
			s.formatStatus(target.Status),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Objects %d", len(report.Targets)),
		fmt.Sprintf("Mocks %d", len(report.Registry)),
		fmt.Sprintf("Rerouted %d", rerouted),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayGenerated prints every written proxy source on its own line.
func (s *SimpleUI) DisplayGenerated(ctx context.Context, outputs []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, output := range outputs {
		s.printf("%s\n", output)
	}
}

// DisplayCheckedHeaders prints the proxy sources generate would write, joined
// with CheckedHeadersSeparator and without a trailing newline.
func (s *SimpleUI) DisplayCheckedHeaders(ctx context.Context, outputs []m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	paths := make([]string, 0, len(outputs))
	for _, output := range outputs {
		paths = append(paths, string(output))
	}

	s.printf("%s", strings.Join(paths, CheckedHeadersSeparator))
}

// DisplayRenameMap prints where the rename map went.
func (s *SimpleUI) DisplayRenameMap(ctx context.Context, output m.Path, entries int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Wrote %d rename(s) to %s\n", entries, output)
}

func (s *SimpleUI) formatStatus(status m.TargetStatus) string {
	if !s.color {
		return string(status)
	}

	style, ok := statusStyles[status]
	if !ok {
		return string(status)
	}

	return style.Render(string(status))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func failureMessage(target m.TargetResult) string {
	if target.Error != "" {
		return target.Error
	}

	if target.Err != nil {
		return target.Err.Error()
	}

	return unknownFailureLabel
}

const unknownFailureLabel = "unknown error"
