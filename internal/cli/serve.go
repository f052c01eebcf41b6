package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dsaviz/internal/server"
	"github.com/matzehuels/dsaviz/pkg/observability"
)

// serveCommand starts the HTTP and WebSocket server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		metrics bool
		origins []string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sequences and playback sessions over HTTP",
		Long: `Start an HTTP server exposing the algorithm catalog, sequence
generation, frame rendering and WebSocket playback sessions.

Flags override the [server] section of the config file.`,
		Example: `  dsaviz serve
  dsaviz serve --addr 127.0.0.1:9000 --metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Server
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Addr
			}
			if !cmd.Flags().Changed("metrics") {
				metrics = cfg.Metrics
			}

			runner := c.newRunner(cmd.Context(), noCache)
			defer runner.Close()

			opts := server.Options{Addr: addr, AllowedOrigins: origins}
			if metrics {
				reg := prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
				observability.NewMetrics(reg).Install()
				defer observability.Reset()
				opts.Gatherer = reg
			}

			st := c.status()
			st.info("Serving on %s", addr)
			if metrics {
				st.detail("Metrics at %s/metrics", addr)
			}
			return server.New(runner, c.Logger, opts).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "expose Prometheus metrics at /metrics")
	cmd.Flags().StringSliceVar(&origins, "allow-origin", nil, "allowed WebSocket origins (default any)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
