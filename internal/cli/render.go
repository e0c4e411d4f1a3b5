package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotlib/pkg/errors"
	pkgio "github.com/matzehuels/plotlib/pkg/io"
	"github.com/matzehuels/plotlib/pkg/pipeline"
	"github.com/matzehuels/plotlib/pkg/sink"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output  string
	formats string
	theme   string
	width   int
	height  int
	noCache bool
	refresh bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render plot documents to image files",
		Long: `Render TOML or JSON plot documents to PNG, JPEG, SVG or PDF.

Each input writes <name>.<format> next to itself. With a single input and a
single format, -o names the output file and its extension selects the format
when -f is not given. Otherwise -o names a directory.`,
		Example: `  plotlib render chart.toml -o chart.png
  plotlib render a.toml b.json -f svg,pdf -o out/
  plotlib render chart.toml --theme dark --width 1200 --height 800`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or directory")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "comma-separated output formats: "+strings.Join(sink.Formats(), ", "))
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme preset, overriding the document")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height in pixels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, inputs []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	formats := c.resolveFormats(opts, len(inputs))
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}
	// Several files per input force -o to be a directory.
	multi := len(inputs) > 1 || len(formats) > 1

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	written := 0
	for _, input := range inputs {
		doc, err := pkgio.ReadFile(input)
		if err != nil {
			return err
		}
		// Flags beat the document, which beats the config file.
		doc.Width = firstPositive(doc.Width, c.Config.Width)
		doc.Height = firstPositive(doc.Height, c.Config.Height)

		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
		spinner.Start()
		result, err := runner.Execute(ctx, doc, pipeline.Options{
			Formats: formats,
			Width:   opts.width,
			Height:  opts.height,
			Theme:   firstNonEmpty(opts.theme, c.Config.Theme),
			Refresh: opts.refresh,
			Logger:  logger,
		})
		if err != nil {
			spinner.StopWithError("Failed " + input)
			return fmt.Errorf("%s: %w", input, err)
		}
		spinner.StopWithSuccess("Rendered " + input)
		printRenderStats(result.Stats.SeriesCount, result.Stats.Width, result.Stats.Height, result.CacheInfo.RenderHit)
		for _, format := range sortedKeys(result.Artifacts) {
			path := outputPath(input, opts.output, format, multi)
			if err := writeArtifact(path, result.Artifacts[format]); err != nil {
				return err
			}
			printFile(path)
			written++
		}
	}
	prog.done(fmt.Sprintf("Wrote %d files", written))
	return nil
}

// resolveFormats picks formats from the flag, then from the -o extension
// for single-file runs, then from the config.
func (c *CLI) resolveFormats(opts renderOpts, inputs int) []string {
	if opts.formats != "" {
		return parseFormats(opts.formats)
	}
	if inputs == 1 && opts.output != "" {
		if ext := filepath.Ext(opts.output); ext != "" && sink.IsValid(ext) {
			return []string{strings.TrimPrefix(ext, ".")}
		}
	}
	if len(c.Config.Formats) > 0 {
		return c.Config.Formats
	}
	return []string{pipeline.DefaultFormat}
}

// outputPath returns where the format artifact of input is written.
func outputPath(input, output, format string, multi bool) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + "." + format
	switch {
	case output == "":
		return filepath.Join(filepath.Dir(input), name)
	case multi || strings.HasSuffix(output, string(filepath.Separator)) || isDir(output):
		return filepath.Join(output, name)
	default:
		return output
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func firstPositive(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
