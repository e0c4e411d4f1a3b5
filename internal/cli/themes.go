package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotlib/pkg/errors"
	"github.com/matzehuels/plotlib/pkg/theme"
)

func (c *CLI) themesCommand() *cobra.Command {
	var pick, save bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List theme presets",
		Long: `List the built-in theme presets with their fonts and palettes.

With --pick, choose a theme interactively. --save stores the choice as the
default theme in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !pick {
				fmt.Fprintln(stdout, renderThemeTable())
				return nil
			}
			model, err := tea.NewProgram(NewThemePickerModel(c.Config.Theme)).Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "theme picker")
			}
			selected := model.(ThemePickerModel).Selected
			if selected == nil {
				printInfo("No theme selected")
				return nil
			}
			printSuccess("Selected %s", selected.Name())
			if !save {
				printNextStep("Render with it", fmt.Sprintf("plotlib render FILE --theme %s", selected.Name()))
				return nil
			}
			c.Config.Theme = selected.Name()
			path := c.configFile()
			if err := SaveConfig(path, c.Config); err != nil {
				return err
			}
			printFile(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&pick, "pick", false, "choose a theme interactively")
	cmd.Flags().BoolVar(&save, "save", false, "store the picked theme in the config file")

	return cmd
}

func renderThemeTable() string {
	names := theme.Names()
	rows := make([][]string, len(names))
	for i, name := range names {
		t, _ := theme.ByName(name)
		rows[i] = themeRow(t)
	}
	return themeTable(rows).
		Headers(themeHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
