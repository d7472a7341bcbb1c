package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ryuk2git/infogain/internal/style"
	"github.com/Ryuk2git/infogain/pkg/selection"
)

// entropyCmd represents the entropy command
var entropyCmd = &cobra.Command{
	Use:   "entropy [file]",
	Short: "Report the normalized entropy of every column",
	Long: `Report the number of distinct labels and the normalized entropy of every
feature column and of the target column. Columns with a single label have
entropy 0; evenly spread columns have entropy 1.`,
	Example: `
  infogain entropy data.csv --target 4
  infogain entropy data.csv --header --output yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEntropy(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(entropyCmd)
}

func runEntropy(cmd *cobra.Command, path string) error {
	ds, err := loadDataset(path)
	if err != nil {
		return err
	}
	columns := selection.Entropies(ds)

	w := cmd.OutOrStdout()
	switch viper.GetString("output") {
	case "json":
		return style.PrintJSON(w, columns)
	case "yaml":
		return style.PrintYAML(w, columns)
	default:
		printEntropyTable(w, columns)
		return nil
	}
}

func printEntropyTable(w io.Writer, columns []selection.ColumnEntropy) {
	rows := make([][]string, len(columns))
	target := -1
	for i, c := range columns {
		name := c.Name
		if c.Target {
			name += " (target)"
			target = i
		}
		rows[i] = []string{name, strconv.Itoa(c.Labels), strconv.FormatFloat(c.Entropy, 'f', 6, 64)}
	}
	style.Table(w, []string{"column", "labels", "entropy"}, rows, target)
}
