package cmd

import (
	"github.com/spf13/cobra"

	"cmock.dev/pkg/cmock/internal/domain"
	m "cmock.dev/pkg/cmock/internal/model"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [report file]",
		Short: "Show a report saved by reroute --report",
		Long: `Print the per-object summary table of a report written by reroute --report.
The command fails when the saved run had failed object files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.ShowReport(cmd.Context(), domain.ShowReportArgs{Report: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
