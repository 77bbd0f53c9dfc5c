package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// buildVersion returns the module version and VCS revision embedded by the Go toolchain.
func buildVersion() (version, revision, goVersion string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion, "", ""
	}

	version = info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			revision = setting.Value
		}
	}

	return version, revision, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the cmock build version, its VCS revision and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, revision, goVersion := buildVersion()

			cmd.Println("cmock version\t", version)

			if revision != "" {
				cmd.Println("revision\t", revision)
			}

			if goVersion != "" {
				cmd.Println("go version\t", goVersion)
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
