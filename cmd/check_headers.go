package cmd

import (
	"github.com/spf13/cobra"

	"cmock.dev/pkg/cmock/internal/domain"
	m "cmock.dev/pkg/cmock/internal/model"
)

var checkHeadersHeadersFlag []string
var checkHeadersOutputFlag string

// checkHeadersCmd represents the checkHeaders command.
var checkHeadersCmd = newCheckHeadersCmd()

func newCheckHeadersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkHeaders",
		Short: "Print the proxy sources generate would write",
		Long: `Scan the headers like generate does, without writing anything, and print
the would-be proxy source paths joined with ';' for build systems.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.CheckHeaders(cmd.Context(), domain.GenerateArgs{
				Headers: parsePaths(checkHeadersHeadersFlag),
				Output:  m.Path(checkHeadersOutputFlag),
			})
		},
	}

	configureHeaderFlags(cmd, &checkHeadersHeadersFlag, &checkHeadersOutputFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkHeadersCmd)
}
