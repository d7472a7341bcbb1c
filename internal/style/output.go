package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

var (
	// Color palette
	ErrorColor   = lipgloss.Color("#FF6B6B")
	ErrorBgColor = lipgloss.Color("#3D2020")
	WarningColor = lipgloss.Color("#FFA726")
	SuccessColor = lipgloss.Color("#66BB6A")
	InfoColor    = lipgloss.Color("#42A5F5")
	MutedColor   = lipgloss.Color("#6C757D")
	AccentColor  = lipgloss.Color("#7C3AED")
	CodeColor    = lipgloss.Color("#D4D4D4")

	PrimaryTextColor = lipgloss.Color("#E4E4E7")

	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(InfoColor).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(MutedColor)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	BestStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)
)

// PrintJSON writes data as indented JSON.
func PrintJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// PrintYAML writes data as YAML.
func PrintYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return encoder.Close()
}

// Table renders rows under headers with padded columns. Rows listed in
// highlight are rendered with BestStyle.
func Table(w io.Writer, headers []string, rows [][]string, highlight ...int) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	marked := make(map[int]bool, len(highlight))
	for _, h := range highlight {
		marked[h] = true
	}

	fmt.Fprintln(w, HeaderStyle.Render(padRow(headers, widths)))
	sep := make([]string, len(widths))
	for i, n := range widths {
		sep[i] = strings.Repeat("-", n)
	}
	fmt.Fprintln(w, MutedStyle.Render(padRow(sep, widths)))
	for i, row := range rows {
		line := padRow(row, widths)
		if marked[i] {
			line = BestStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

func padRow(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%-*s", widths[i], cell)
	}
	return strings.TrimRight(b.String(), " ")
}

func SuccessIcon() string {
	return SuccessStyle.Render("✓")
}

// Info prints an info message with styling
func Info(w io.Writer, message string) {
	icon := InfoStyle.Render("ℹ")
	msg := lipgloss.NewStyle().Foreground(InfoColor).Render(message)
	fmt.Fprintf(w, "%s %s\n", icon, msg)
}

// Success prints a success message with styling
func Success(w io.Writer, message string) {
	msg := lipgloss.NewStyle().Foreground(SuccessColor).Render(message)
	fmt.Fprintf(w, "%s %s\n", SuccessIcon(), msg)
}
