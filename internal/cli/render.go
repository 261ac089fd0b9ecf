package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/seqdraw/pkg/config"
	"github.com/matzehuels/seqdraw/pkg/drawio"
	"github.com/matzehuels/seqdraw/pkg/errors"
	"github.com/matzehuels/seqdraw/pkg/layout"
)

// outputExt is the extension of generated documents.
const outputExt = ".drawio"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output string // output file path; derived from the input when empty
	config string // TOML config file; built-in defaults when empty
}

// newRenderCmd creates the render command, which writes a draw.io document
// for a layout file.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a sequence diagram layout to a draw.io document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .drawio extension)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML file with [position] and [style] options")

	return cmd
}

// outputPath derives the document path from the input file when output is
// empty, replacing the input's extension with .drawio.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputExt
}

// runRender loads the config and layout, then writes the document.
// A layout with nothing to draw is reported as a warning, not an error.
func runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.config != "" {
		logger.Debugf("Loaded config %s", opts.config)
	}

	m, err := layout.ImportJSON(input)
	if err != nil {
		return err
	}
	stats := m.Stats()
	logger.Infof("Loaded layout: %d lifelines, %d activations, %d messages",
		stats.Lifelines, stats.Activations, stats.Messages)

	path := outputPath(opts.output, input)
	if err := generate(ctx, cfg, m, path); err != nil {
		if errors.Is(err, errors.ErrCodePreconditionNotMet) {
			printWarning(cmd.OutOrStdout(), "%s, nothing drawn", errors.UserMessage(err))
			return nil
		}
		return err
	}

	prog.done("Rendered " + path)
	out := cmd.OutOrStdout()
	printSuccess(out, "Generated diagram")
	printFile(out, path)
	printStats(out,
		statCount{stats.Lifelines, "lifelines"},
		statCount{stats.Activations, "activations"},
		statCount{stats.Messages, "messages"},
	)
	return nil
}

func generate(ctx context.Context, cfg *config.Config, m *layout.Model, path string) error {
	g := drawio.New(cfg, drawio.WithLogger(loggerFromContext(ctx)))
	return g.GenerateFile(ctx, m, path)
}
