package cmd

import (
	"github.com/spf13/cobra"

	"cmock.dev/pkg/cmock/internal/domain"
	m "cmock.dev/pkg/cmock/internal/model"
)

var renameMapOutputFlag string

// renameMapCmd represents the rename-map command.
var renameMapCmd = newRenameMapCmd()

func newRenameMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename-map [proxy sources...]",
		Short: "Write an objcopy rename map for generated proxy sources",
		Long: `Collect the function of every CMOCK_MOCK_FUNCTION and CMOCK_MOCK_CONST_FUNCTION
line in the given proxy sources and write "<name> <prefix><name>" lines,
sorted and without duplicates, for objcopy --redefine-syms.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.ExtractRenameMap(cmd.Context(), domain.RenameMapArgs{
				Sources: parsePaths(args),
				Output:  m.Path(renameMapOutputFlag),
			})
		},
	}

	cmd.Flags().StringVarP(&renameMapOutputFlag, outputFlagName, "o", "", "rename map file to write")
	cobra.CheckErr(cmd.MarkFlagRequired(outputFlagName))

	return cmd
}

func init() {
	rootCmd.AddCommand(renameMapCmd)
}
