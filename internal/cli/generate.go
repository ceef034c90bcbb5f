package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/crossnames/internal/config"
	cerrors "github.com/matzehuels/crossnames/pkg/errors"
	pkgio "github.com/matzehuels/crossnames/pkg/io"
	"github.com/matzehuels/crossnames/pkg/pipeline"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	format          string
	output          string
	gridSize        int
	maxPermutations int
	workers         int
	timeout         time.Duration
	noCache         bool
	refresh         bool
	interactive     bool
	crop            bool
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate NAME...",
		Short: "Find every crossword layout of the given names",
		Long: `Generate tries every ordering of the names, places the first one across the
middle of the grid, and crosses each following name with an earlier one.
Every ordering that places all names yields one layout.`,
		Example: `  crossnames generate anna bob clara
  crossnames generate anna bob --format json -o layouts.json
  crossnames generate anna bob clara dave --workers 4 --interactive`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pkgio.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", pkgio.FormatText, "output format: text, json, yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file (format from extension)")
	cmd.Flags().IntVar(&opts.gridSize, "grid-size", 0, "grid side length (default from config, 20)")
	cmd.Flags().IntVar(&opts.maxPermutations, "max-permutations", 0, "stop after this many orderings (0 = all)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "evaluate orderings on this many goroutines")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "give up after this long (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse layouts in the terminal")
	cmd.Flags().BoolVar(&opts.crop, "crop", true, "trim blank rows and columns in text output")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, names []string, opts generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	popts := pipelineOptions(cmd, cfg, opts)

	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	var spinner *Spinner
	if isTerminal(os.Stderr) {
		spinner = newSpinner(ctx, "Searching layouts...")
	}
	spinner.Start()
	result, err := runner.Generate(ctx, names, popts)
	spinner.Stop()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		if cerrors.Is(err, cerrors.ErrCodeTimeout) {
			printWarning("Search timed out; try fewer names or a larger --timeout")
		}
		return err
	}
	prog.done(fmt.Sprintf("Found %d layouts", len(result.Layouts)))
	printStats(result)

	if len(result.Layouts) == 0 {
		printWarning("No layout places every name")
		return nil
	}

	if opts.interactive {
		_, err := tea.NewProgram(newBrowserModel(result), tea.WithContext(ctx), tea.WithAltScreen()).Run()
		return err
	}

	if opts.output != "" {
		if err := pkgio.Export(result.Layouts, opts.output); err != nil {
			return err
		}
		printSuccess("Wrote %d layouts", len(result.Layouts))
		printFile(opts.output)
		return nil
	}

	if opts.format == pkgio.FormatText {
		return pkgio.WriteText(cmd.OutOrStdout(), result.Layouts, pkgio.TextOptions{Header: true, Crop: opts.crop})
	}
	return pkgio.Write(cmd.OutOrStdout(), result.Layouts, opts.format)
}

// pipelineOptions layers changed flags over the configuration.
func pipelineOptions(cmd *cobra.Command, cfg *config.Config, opts generateOpts) pipeline.Options {
	p := pipeline.Options{
		GridSize:        cfg.GridSize,
		MaxWords:        cfg.MaxWords,
		MaxPermutations: cfg.MaxPermutations,
		Workers:         cfg.Workers,
		Timeout:         cfg.Timeout,
		Refresh:         opts.refresh,
	}

	flags := cmd.Flags()
	if flags.Changed("grid-size") {
		p.GridSize = opts.gridSize
	}
	if flags.Changed("max-permutations") {
		p.MaxPermutations = opts.maxPermutations
	}
	if flags.Changed("workers") {
		p.Workers = opts.workers
	}
	if flags.Changed("timeout") {
		p.Timeout = opts.timeout
	}
	return p
}

// isTerminal reports whether f is attached to a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
