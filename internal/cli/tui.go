package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/plotlib/pkg/theme"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// ThemePickerModel is the bubbletea model for interactive theme selection.
type ThemePickerModel struct {
	Themes   []theme.Theme
	Cursor   int
	Selected *theme.Theme
}

// NewThemePickerModel lists every preset, starting at current when it
// names one.
func NewThemePickerModel(current string) ThemePickerModel {
	names := theme.Names()
	m := ThemePickerModel{Themes: make([]theme.Theme, 0, len(names))}
	for i, name := range names {
		t, _ := theme.ByName(name)
		m.Themes = append(m.Themes, t)
		if name == current {
			m.Cursor = i
		}
	}
	return m
}

func (m ThemePickerModel) Init() tea.Cmd {
	return nil
}

func (m ThemePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Themes)-1 {
			m.Cursor++
		}
	case "enter":
		if len(m.Themes) > 0 {
			t := m.Themes[m.Cursor]
			m.Selected = &t
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m ThemePickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Theme"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Themes))
	for i, t := range m.Themes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = append([]string{cursor}, themeRow(t)...)
	}

	t := themeTable(rows).
		Headers(append([]string{""}, themeHeaders...)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Themes))))
	return b.String()
}

var themeHeaders = []string{"Theme", "Font", "Title", "Background", "Palette"}

// themeRow describes t in the columns of themeHeaders.
func themeRow(t theme.Theme) []string {
	fonts, colors := t.Fonts(), t.Colors()
	return []string{
		t.Name(),
		fonts.Family,
		fmt.Sprintf("%gpx", fonts.TitleSize),
		swatch(colors.Background) + " " + theme.FormatColor(colors.Background),
		paletteSwatches(colors.Palette, 10),
	}
}

func themeTable(rows [][]string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...)
}
