package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ryuk2git/infogain/internal/style"
	"github.com/Ryuk2git/infogain/pkg/selection"
)

// gainCmd represents the gain command
var gainCmd = &cobra.Command{
	Use:   "gain [file]",
	Short: "Report the information gain of every feature column",
	Long: `Report the information gain of every feature column against the target column.

Gains are listed in column order unless --sort is given. The column with the
highest gain is highlighted; ties go to the earliest column.`,
	Example: `
  infogain gain agaricus-lepiota.csv                  # target is column 0
  infogain gain data.csv --target 4 --rows 100       # first 100 rows, target column 4
  infogain gain data.csv --header --sort --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGain(cmd, args[0])
	},
}

var sortByGain bool

func init() {
	rootCmd.AddCommand(gainCmd)

	gainCmd.Flags().BoolVarP(&sortByGain, "sort", "s", false, "order columns by descending gain")
}

func runGain(cmd *cobra.Command, path string) error {
	ds, err := loadDataset(path)
	if err != nil {
		return err
	}

	report, err := selection.ScoreDataset(cmd.Context(), ds, selection.WithWorkers(viper.GetInt("workers")))
	if err != nil {
		return err
	}
	if sortByGain {
		report.Columns = report.Ranked()
	}

	w := cmd.OutOrStdout()
	switch viper.GetString("output") {
	case "json":
		return style.PrintJSON(w, report)
	case "yaml":
		return style.PrintYAML(w, report)
	default:
		printGainTable(w, report)
		return nil
	}
}

func printGainTable(w io.Writer, report *selection.Report) {
	rows := make([][]string, len(report.Columns))
	best := -1
	for i, c := range report.Columns {
		rows[i] = []string{strconv.Itoa(c.Index), c.Name, strconv.FormatFloat(c.Gain, 'f', 6, 64)}
		if c.Index == report.Best {
			best = i
		}
	}
	style.Table(w, []string{"#", "column", "gain"}, rows, best)

	if best >= 0 && !viper.GetBool("quiet") {
		c := report.Columns[best]
		fmt.Fprintln(w)
		style.Success(w, fmt.Sprintf("best split: %s (gain %s over %d rows, target %s)",
			c.Name, strconv.FormatFloat(c.Gain, 'f', 6, 64), report.Rows, report.Target))
	}
}
