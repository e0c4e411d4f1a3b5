package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/theme"
	"github.com/matzehuels/plotlib/pkg/ticks"
)

func (c *CLI) ticksCommand() *cobra.Command {
	var (
		target    int
		themeName string
	)

	cmd := &cobra.Command{
		Use:   "ticks MIN MAX",
		Short: "Print the axis ticks chosen for a data range",
		Long: `Print the nice-number ticks and labels an axis would show for the range
MIN..MAX, using the label formatting of a theme.`,
		Example: `  plotlib ticks 0 2000
  plotlib ticks -- -0.37 1.2 --target 8`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, hi, err := parseRange(args[0], args[1])
			if err != nil {
				return err
			}
			name := firstNonEmpty(themeName, c.Config.Theme, theme.NameDefault)
			t, ok := theme.ByName(name)
			if !ok {
				return errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q", name)
			}
			scale := ticks.Nice(lo, hi, target, t.AxisFormat().TickFormat())

			printKeyValue("range", fmt.Sprintf("%g .. %g", scale.Lo, scale.Hi))
			printKeyValue("step", strconv.FormatFloat(scale.Step, 'g', -1, 64))
			printNewline()
			fmt.Fprintln(stdout, tickTable(scale))
			return nil
		},
	}

	cmd.Flags().IntVarP(&target, "target", "n", 5, "approximate number of ticks")
	cmd.Flags().StringVar(&themeName, "theme", "", "theme whose label format is used")

	return cmd
}

func parseRange(a, b string) (float64, float64, error) {
	lo, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid MIN %q", a)
	}
	hi, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid MAX %q", b)
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "range must be finite, got %s .. %s", a, b)
	}
	return lo, hi, nil
}

func tickTable(s ticks.Scale) string {
	rows := make([][]string, len(s.Ticks))
	for i, tk := range s.Ticks {
		rows[i] = []string{strconv.FormatFloat(tk.Value, 'g', -1, 64), tk.Label}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Value", "Label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 1 {
				return StyleNumber
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
