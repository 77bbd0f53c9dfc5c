// Package controller provides output adapters for displaying cmock results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "cmock.dev/pkg/cmock/internal/model"
)

// UI defines the interface for reporting workflow results to the user.
type UI interface {
	DisplayRerouteSummary(ctx context.Context, report m.RerouteReport)
	DisplayGenerated(ctx context.Context, outputs []m.Path)
	DisplayCheckedHeaders(ctx context.Context, outputs []m.Path)
	DisplayRenameMap(ctx context.Context, output m.Path, entries int)
}

// NewUI returns the UI used by the CLI. Status labels are coloured when color is set.
func NewUI(cmd *cobra.Command, color bool) UI {
	ui := NewSimpleUI(cmd)
	ui.color = color

	return ui
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
