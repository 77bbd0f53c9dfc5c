package cmd

import (
	"github.com/spf13/cobra"

	"cmock.dev/pkg/cmock/internal/domain"
	m "cmock.dev/pkg/cmock/internal/model"
)

var generateHeadersFlag []string
var generateOutputFlag string

const generateLongDescription = `Generate proxy sources for C++ headers declaring mockable classes.

A class is mockable when it names itself in CMockMocker<Class>. For every
header holding at least one mockable class, <output>/<header name>.cpp is
written with one CMOCK_MOCK_FUNCTION or CMOCK_MOCK_CONST_FUNCTION line per
MOCK_METHOD. Headers without a mockable class produce no file.`

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate proxy sources from mock headers",
		Long:  generateLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Generate(cmd.Context(), domain.GenerateArgs{
				Headers: parsePaths(generateHeadersFlag),
				Output:  m.Path(generateOutputFlag),
			})
		},
	}

	configureHeaderFlags(cmd, &generateHeadersFlag, &generateOutputFlag)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureHeaderFlags(cmd *cobra.Command, headers *[]string, output *string) {
	cmd.Flags().StringSliceVar(headers, headersFlagName, nil, "C++ headers declaring mockable classes")
	cmd.Flags().StringVarP(output, outputFlagName, "o", "", "directory receiving the proxy sources")
	cobra.CheckErr(cmd.MarkFlagRequired(headersFlagName))
	cobra.CheckErr(cmd.MarkFlagRequired(outputFlagName))
}
