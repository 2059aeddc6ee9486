package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/counterspace/internal/adapters/render"
	"github.com/okian/counterspace/internal/app"
	"github.com/okian/counterspace/internal/config"
	"github.com/okian/counterspace/internal/domain/model"
	"github.com/okian/counterspace/internal/domain/surfacegen"
	"github.com/okian/counterspace/internal/fixture"
	"github.com/okian/counterspace/internal/optimize"
	"github.com/okian/counterspace/pkg/logger"
	"github.com/okian/counterspace/pkg/metrics"
)

// Metrics server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// The demo analyzes this player of the synthetic match.
var demoSubject = model.PlayerRef{Team: model.TeamHome, ID: 5}

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Expose Prometheus metrics while the analysis runs.
	srv := startMetricsServer(ctx, cfg.MetricsAddr, log)
	defer stopMetricsServer(srv, log)

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "analysis failed", logger.Error(err))
	}
}

// run performs the full demo analysis over the synthetic match: team space on
// the baseline, a presence counterfactual and the positional search.
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	gen := surfacegen.NewInMemoryModel(surfacegen.WithValueWeighting(cfg.ValueWeighted))

	params := surfacegen.DefaultParams()
	for k, v := range cfg.ModelParams {
		params[k] = v
	}

	analysis, err := app.New(ctx, gen, fixture.Match(), fixture.Event(model.TeamHome), demoSubject,
		app.WithFieldDimensions(model.FieldDimensions{Length: cfg.FieldLength, Width: cfg.FieldWidth}),
		app.WithGridCellsX(cfg.GridCellsX),
		app.WithParams(params),
		app.WithLogger(log.Named("analysis")),
	)
	if err != nil {
		return err
	}
	log.Info(ctx, "analysis context ready",
		logger.String("id", analysis.ID().String()),
		logger.String("subject", analysis.Subject().String()),
		logger.Float64("team_space_m2", analysis.TeamSpace()),
	)

	// How much space does the subject generate just by being on the pitch?
	created, err := analysis.SpaceCreated(ctx, model.Presence{})
	if err != nil {
		return err
	}
	log.Info(ctx, "presence counterfactual evaluated",
		logger.String("subject", analysis.Subject().String()),
		logger.Float64("space_created_m2", created),
	)

	delta, err := analysis.Difference(ctx, model.Presence{})
	if err != nil {
		return err
	}
	r := render.NewTextRenderer(os.Stdout)
	if err := r.Render(ctx, delta, render.Annotation{
		Difference: true,
		Presence:   true,
		Title:      "space generated by " + analysis.Subject().String(),
	}); err != nil {
		return err
	}

	// Where (and moving how) would the subject generate the most space?
	opt := optimize.New(analysis,
		optimize.WithSeed(cfg.SamplerSeed),
		optimize.WithParallelism(cfg.Parallelism),
		optimize.WithLogger(log.Named("optimize")),
	)
	best, err := opt.Run(ctx, optimize.Budget{
		LocationTrials: cfg.LocationTrials,
		VelocityTrials: cfg.VelocityTrials,
		SizeOfGrid:     cfg.SizeOfGrid,
		MaxSpeed:       cfg.MaxSpeed,
	})
	if err != nil {
		return err
	}
	vx, vy := best.Velocity()
	log.Info(ctx, "optimal relocation found",
		logger.Float64("dx", best.DX), logger.Float64("dy", best.DY),
		logger.Float64("vx", vx), logger.Float64("vy", vy),
		logger.Float64("space_gain_m2", best.Score),
	)
	return nil
}

// startMetricsServer serves the Prometheus registry on addr in the background.
func startMetricsServer(ctx context.Context, addr string, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting metrics server", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "metrics server failed", logger.Error(err))
		}
	}()
	return srv
}

func stopMetricsServer(srv *http.Server, log logger.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "metrics server shutdown failed", logger.Error(err))
	}
}
