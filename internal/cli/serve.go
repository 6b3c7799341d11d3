package cli

import (
	"github.com/spf13/cobra"

	"github.com/jwinther/homeplan/internal/api"
	"github.com/jwinther/homeplan/pkg/config"
	"github.com/jwinther/homeplan/pkg/pipeline"
	"github.com/jwinther/homeplan/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the homeplan HTTP API server",
		Long: `Run the homeplan HTTP API server.

Plans are created with POST /api/v1/plans and retrieved as JSON, SVG or a
Graphviz adjacency graph. The plan store backend (memory, redis or mongo)
is selected in the config file; the default keeps plans in memory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			st, err := store.Open(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close(ctx) }()

			cacheStore, err := newCache(noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(cacheStore, nil, cfg.Generator(), logger)
			defer runner.Close()

			logger.Info("starting api", "addr", cfg.Server.Addr, "store", cfg.Store.Backend)
			srv := api.NewServer(st, runner, logger)
			return srv.ListenAndServe(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}
