package cli

import (
	"net"

	"github.com/spf13/cobra"

	"github.com/matzehuels/crossnames/internal/server"
	"github.com/matzehuels/crossnames/pkg/pipeline"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr      string
	staticDir string
	noCache   bool
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout API and web page over HTTP",
		Long: `Serve exposes POST /generate, which takes {"names": [...]} and returns every
layout as a matrix of one-character strings, plus GET /healthz. Any other GET
is answered from the static directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :3000)")
	cmd.Flags().StringVar(&opts.staticDir, "static", "", "directory of static files (default from config, public)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.staticDir != "" {
		cfg.Server.StaticDir = opts.staticDir
	}

	runner, err := c.newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	printKeyValue("Listening", "http://localhost"+displayAddr(cfg.Server.Addr))
	printKeyValue("Static", cfg.Server.StaticDir)
	printKeyValue("Cache", cacheLabel(cfg.Cache.Backend, opts.noCache))

	srv := server.New(runner, server.Options{
		Addr:       cfg.Server.Addr,
		StaticDir:  cfg.Server.StaticDir,
		CORSOrigin: cfg.Server.CORSOrigin,
		RateLimit:  cfg.Server.RateLimit,
		Generate: pipeline.Options{
			GridSize:        cfg.GridSize,
			MaxWords:        cfg.MaxWords,
			MaxPermutations: cfg.MaxPermutations,
			Workers:         cfg.Workers,
			Timeout:         cfg.Timeout,
		},
		Logger: c.Logger,
	})
	return srv.ListenAndServe(ctx)
}

// displayAddr keeps only the ":port" part of a host:port address.
func displayAddr(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return ":" + port
	}
	return addr
}

func cacheLabel(backend string, disabled bool) string {
	if disabled || backend == "none" {
		return "disabled"
	}
	if backend == "" {
		return "file"
	}
	return backend
}
