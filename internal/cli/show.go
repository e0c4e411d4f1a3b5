package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/plotlib/pkg/io"
	"github.com/matzehuels/plotlib/pkg/plot"
	"github.com/matzehuels/plotlib/pkg/window"
)

func (c *CLI) showCommand() *cobra.Command {
	var (
		themeName     string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Open a plot document in a window",
		Long:  `Open a plot document in an interactive window. The plot is redrawn on resize; Esc or Q closes it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := window.CheckDisplay(); err != nil {
				return err
			}
			doc, err := pkgio.ReadFile(args[0])
			if err != nil {
				return err
			}
			if t := firstNonEmpty(themeName, c.Config.Theme); t != "" {
				doc.Theme = t
			}
			p, err := doc.Build()
			if err != nil {
				return err
			}
			w, h := doc.Size(firstPositive(c.Config.Width, plot.DefaultWidth), firstPositive(c.Config.Height, plot.DefaultHeight))
			w, h = firstPositive(width, w), firstPositive(height, h)

			loggerFromContext(cmd.Context()).Debug("opening window", "title", p.Title(), "width", w, "height", h)
			return p.Show(plot.WithSize(w, h))
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "theme preset, overriding the document")
	cmd.Flags().IntVar(&width, "width", 0, "initial window width")
	cmd.Flags().IntVar(&height, "height", 0, "initial window height")

	return cmd
}
