// Package daemon wires the RIB and its collaborators into a runnable
// process: config loading, logging, the single dispatch loop, expiration,
// readvertise, metrics, and the status/metrics HTTP server. cmd's run
// subcommand is a thin cobra shell around Start.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	slogmulti "github.com/samber/slog-multi"

	"github.com/encodeous/tint"

	"github.com/ndnfwd/ribd/config"
	"github.com/ndnfwd/ribd/expiry"
	"github.com/ndnfwd/ribd/fib"
	"github.com/ndnfwd/ribd/httpstatus"
	"github.com/ndnfwd/ribd/metrics"
	"github.com/ndnfwd/ribd/readvertise"
	"github.com/ndnfwd/ribd/rib"

	"github.com/ndnfwd/ribd/env"
)

// Options configures a Start call; every field has a usable zero value.
type Options struct {
	ConfigPath string
	ListenAddr string // empty disables the status/metrics HTTP server
	Verbose    bool
	// FibUpdater overrides the RIB's FibUpdater. If nil, a loopback updater
	// is used that accepts every update with no inherited-route delta —
	// the real forwarder's FIB-programming path is an external
	// collaborator this daemon doesn't implement (spec §1).
	FibUpdater rib.FibUpdater
}

func newLogger(cfg config.LogCfg, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		}),
	}
	if cfg.Path != "" {
		f, err := os.OpenFile(cfg.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err == nil {
			handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
		}
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

func loopbackFibUpdater() rib.FibUpdater {
	return &fib.Func{
		Compute: func(rib.RibUpdateBatch) ([]rib.RibUpdate, error) {
			return nil, nil
		},
	}
}

// Start loads configuration, assembles the RIB and its collaborators, and
// blocks the calling goroutine running the Env's dispatch loop until ctx
// is cancelled or a SIGINT/SIGTERM is received.
func Start(ctx context.Context, opts Options) error {
	cfg := config.Config{}
	if opts.ConfigPath != "" {
		var err error
		cfg, err = config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg.Readvertise.RefreshInterval = config.DefaultRefreshInterval
	}

	log := newLogger(cfg.Log, opts.Verbose)

	ctx, cancel := context.WithCancelCause(ctx)
	e, _ := env.New(ctx)

	r := rib.New()
	r.SetMaxQueueDepth(cfg.Queue.MaxDepth)

	fibUpdater := opts.FibUpdater
	if fibUpdater == nil {
		fibUpdater = loopbackFibUpdater()
	}

	registry := prometheus.NewRegistry()
	collectors := metrics.New(registry)
	r.SetFibUpdater(&metrics.InstrumentedFibUpdater{Next: fibUpdater, Collectors: collectors})
	sampleMetrics := metrics.Attach(collectors, r)

	sched := expiry.NewScheduler(r, e, 0)
	r.SetExpirationScheduler(sched)

	policy := readvertise.NewHostToGatewayFromConfig(cfg.Readvertise, readvertise.StaticKeyChain{})
	readvertise.Attach(r, policy, &readvertise.LoggingAdvertiser{Log: log})

	var srv *http.Server
	if opts.ListenAddr != "" {
		ln, err := net.Listen("tcp", opts.ListenAddr)
		if err != nil {
			return fmt.Errorf("listening on %s: %w", opts.ListenAddr, err)
		}
		srv = &http.Server{Handler: httpstatus.NewRouter(e, r, registry)}
		go func() {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("status server stopped", "error", err)
			}
		}()
		log.Info("status server listening", "addr", ln.Addr().String())
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigc:
			cancel(fmt.Errorf("received signal %s", sig))
		case <-ctx.Done():
		}
	}()

	const metricsSampleInterval = 5 * time.Second
	var sample func()
	sample = func() {
		sampleMetrics()
		e.AfterFunc(metricsSampleInterval, sample)
	}
	sample()
	sched.Start()

	log.Info("ribd started", "refresh_interval_s", cfg.Readvertise.RefreshInterval)
	e.Run()
	log.Info("ribd stopped", "reason", context.Cause(ctx))

	if srv != nil {
		_ = srv.Close()
	}
	return nil
}
