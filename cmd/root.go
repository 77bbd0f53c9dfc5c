// Package cmd provides the root command and CLI setup for cmock.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cmock.dev/pkg/cmock/internal/adapter"
	"cmock.dev/pkg/cmock/internal/controller"
	"cmock.dev/pkg/cmock/internal/domain"
	m "cmock.dev/pkg/cmock/internal/model"
)

// workflow overrides the workflow built from configuration. Tests swap it
// for a mock.
var workflow domain.Workflow

var prefixFlag string
var logFileFlag string
var verboseFlag bool

const rootLongDescription = `cmock mocks native functions and class methods in compiled object files.

It reroutes undefined references of object files to the prefixed mock
implementations found in mock object files, generates proxy sources for
C++ headers declaring mockable classes, and extracts rename maps from
generated proxies. Reports saved by reroute --report can be shown again
with the report command.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "cmock",
		Short:         "Mock native functions in compiled object files",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&prefixFlag, prefixFlagName, domain.DefaultPrefix, "prefix distinguishing mock implementations from the real functions")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(prefixFlagName), prefixConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "path of the rotated log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// resolveWorkflow returns the overriding workflow, or builds one from the
// current configuration.
func resolveWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	return buildWorkflow(cmd)
}

func buildWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	prefix := viper.GetString(prefixConfigKey)
	if strings.TrimSpace(prefix) == "" {
		return nil, errors.New("prefix must not be empty")
	}

	runner := adapter.NewLocalCommandRunner(toolTimeout())

	inspector, err := adapter.NewSymbolInspector(viper.GetString(inspectorConfigKey), runner, viper.GetString(nmToolConfigKey))
	if err != nil {
		return nil, err
	}

	fsAdapter := adapter.NewLocalSourceFSAdapter()
	renamer := adapter.NewObjcopyRenamer(runner, viper.GetString(objcopyConfigKey))
	ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))

	return domain.NewWorkflow(
		adapter.NewReportStore(),
		ui,
		domain.NewPlanner(domain.NewSymbolExtractor(inspector, prefix)),
		domain.NewRewriter(fsAdapter, renamer, prefix, viper.GetString(tempDirConfigKey)),
		domain.NewProxyGenerator(fsAdapter),
		domain.NewRenameMapExtractor(fsAdapter, prefix),
		prefix,
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetArgs(expandListFlags(os.Args[1:], mocksFlagName, objectsFlagName, headersFlagName))

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
