package cli

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"runtime"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ryuk2git/infogain/internal/style"
)

var (
	// Global flags
	cfgFile      string
	logLevel     string
	outputFormat string
	quiet        bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "infogain",
	Short: "Score dataset columns by information gain",
	Long: `infogain reads a comma-delimited dataset, takes one column as the
classification target and reports how much each remaining column reduces the
target's entropy. The column with the highest gain is the first split a greedy
decision-tree learner would choose.

Entropy is normalized with a logarithm whose base is the number of distinct
labels in a column, so every value lies between 0 and 1.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return fang.Execute(context.Background(), rootCmd, fang.WithColorSchemeFunc(func(lightDark lipgloss.LightDarkFunc) fang.ColorScheme {
		return fang.ColorScheme{
			Base:           style.PrimaryTextColor,
			Title:          style.AccentColor,
			Description:    style.PrimaryTextColor,
			Codeblock:      style.CodeColor,
			Program:        style.AccentColor,
			DimmedArgument: style.MutedColor,
			Comment:        style.MutedColor,
			Flag:           style.InfoColor,
			FlagDefault:    style.MutedColor,
			Command:        style.SuccessColor,
			QuotedString:   style.WarningColor,
			Argument:       style.PrimaryTextColor,
			Help:           style.InfoColor,
			Dash:           style.MutedColor,
			ErrorHeader:    [2]color.Color{style.ErrorColor, style.ErrorBgColor},
			ErrorDetails:   style.ErrorColor,
		}
	}))
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.infogain/config.yaml)")
	flags.StringVar(&logLevel, "log-level", "disabled", "log level (debug, info, warn, error)")
	flags.StringVar(&outputFormat, "output", "text", "output format (text, json, yaml)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	// Dataset flags are shared by every command that reads a file
	flags.IntP("target", "t", 0, "index of the target column (0-based)")
	flags.IntP("rows", "n", 0, "number of rows to read (0 reads all)")
	flags.Bool("header", false, "treat the first row as column names")
	flags.String("comma", ",", "field delimiter")
	flags.IntP("workers", "w", runtime.GOMAXPROCS(0), "columns scored concurrently")

	for _, key := range []string{"log-level", "output", "quiet", "target", "rows", "header", "comma", "workers"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.infogain")
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath(".infogain")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("INFOGAIN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if !viper.GetBool("quiet") {
			style.Info(os.Stderr, fmt.Sprintf("Using config file: %s", viper.ConfigFileUsed()))
		}
	}
}

// initLogging configures the global logger
func initLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch viper.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	if viper.GetString("output") == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
