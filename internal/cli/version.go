package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ryuk2git/infogain/internal/style"
)

// Build-time variables (set by goreleaser or build scripts)
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Example: `
  infogain version               # Show basic version info
  infogain version --output json # Show version info as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// VersionInfo represents version information
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func showVersion(w io.Writer) error {
	info := VersionInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	switch viper.GetString("output") {
	case "json":
		return style.PrintJSON(w, info)
	case "yaml":
		return style.PrintYAML(w, info)
	default:
		_, err := fmt.Fprintf(w, "%s (commit: %s, built: %s, go: %s)\n", info.Version, info.Commit, info.Date, info.GoVersion)
		return err
	}
}
