package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cmock.dev/pkg/cmock/internal/adapter"
	"cmock.dev/pkg/cmock/internal/domain"
	m "cmock.dev/pkg/cmock/internal/model"
)

var rerouteMocksFlag []string
var rerouteObjectsFlag []string
var rerouteParallelFlag int
var rerouteKeepGoingFlag bool
var rerouteDryRunFlag bool
var rerouteReportFlag string
var rerouteInspectorFlag string

const rerouteLongDescription = `Reroute calls inside object files to mock implementations.

Every global text symbol named <prefix><name> in a mock object file registers
<name> as mocked. Each object file's undefined references to mocked names are
then renamed in place to <prefix><name>, so the final link resolves them to
the mocks. References an object file defines itself are never touched.

Lists may be given space separated, comma separated or by repeating the flag:
  cmock reroute --mocks SystemMock.o --objects a.o b.o`

// rerouteCmd represents the reroute command.
var rerouteCmd = newRerouteCmd()

func newRerouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reroute",
		Short: "Reroute undefined references of object files to mocks",
		Long:  rerouteLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wf, err := resolveWorkflow(cmd)
			if err != nil {
				return err
			}

			return wf.Reroute(cmd.Context(), domain.RerouteArgs{
				Mocks:     parsePaths(rerouteMocksFlag),
				Objects:   parsePaths(rerouteObjectsFlag),
				Threads:   viper.GetInt(parallelConfigKey),
				KeepGoing: viper.GetBool(keepGoingConfigKey),
				DryRun:    rerouteDryRunFlag,
				Report:    m.Path(rerouteReportFlag),
			})
		},
	}

	configureRerouteFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(rerouteCmd)
}

func configureRerouteFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&rerouteMocksFlag, mocksFlagName, nil, "mock object files defining <prefix><name> functions")
	cmd.Flags().StringSliceVar(&rerouteObjectsFlag, objectsFlagName, nil, "object files to rewrite in place")
	cobra.CheckErr(cmd.MarkFlagRequired(mocksFlagName))
	cobra.CheckErr(cmd.MarkFlagRequired(objectsFlagName))

	cmd.Flags().IntVarP(&rerouteParallelFlag, parallelFlagName, "p", defaultParallel, "number of object files rewritten in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.Flags().BoolVar(&rerouteKeepGoingFlag, keepGoingFlagName, defaultKeepGoing, "keep rewriting the remaining object files after a failure")
	bindFlagToConfig(cmd.Flags().Lookup(keepGoingFlagName), keepGoingConfigKey)

	cmd.Flags().StringVar(&rerouteInspectorFlag, inspectorFlagName, defaultInspector,
		"symbol table reader: "+adapter.InspectorNm+" (binutils) or "+adapter.InspectorELF+" (in-process, ELF only)")
	bindFlagToConfig(cmd.Flags().Lookup(inspectorFlagName), inspectorConfigKey)

	cmd.Flags().BoolVar(&rerouteDryRunFlag, dryRunFlagName, false, "plan and report without rewriting any object file")
	cmd.Flags().StringVar(&rerouteReportFlag, reportFlagName, "", "write a YAML report of the run to this file")
}
