package main

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/vango-dev/vrt/internal/config"
	"github.com/vango-dev/vrt/pkg/host/memhost"
	"github.com/vango-dev/vrt/pkg/render"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	logLevel   string
	format     string
	metrics    bool
}

// env is everything a command needs to render.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *render.Metrics
}

// loadEnv reads the configuration, applies flag overrides and builds the
// logger and metrics. Logs go to stderr.
func loadEnv(opts *globalOptions, stderr io.Writer) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.LoadOrDefault(".")
	}
	if err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.metrics {
		cfg.Metrics.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := cfg.Level()
	e := &env{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
	if cfg.Metrics.Enabled {
		e.registry = prometheus.NewRegistry()
		e.metrics = render.NewMetrics(
			render.WithRegistry(e.registry),
			render.WithNamespace(cfg.Metrics.Namespace),
		)
	}
	return e, nil
}

// newRoot creates an in-memory host and a root rendering into its container.
func (e *env) newRoot() (*memhost.Host, *render.Root) {
	categories, _ := e.cfg.Categories()
	h := memhost.New()
	root := render.NewRoot(h, h.Root(),
		render.WithLogger(e.logger),
		render.WithMetrics(e.metrics),
		render.WithEvents(categories...),
	)
	return h, root
}

// writeMetrics prints the collected metrics in the Prometheus text format.
func (e *env) writeMetrics(w io.Writer) error {
	if e.registry == nil {
		return nil
	}
	families, err := e.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
