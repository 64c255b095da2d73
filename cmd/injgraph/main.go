// Command injgraph resolves a component manifest and prints the resulting
// binding table, compressions, multibindings, allocation plan and
// construction order, or serves them over HTTP.
//
// Usage:
//
//	injgraph [-manifest path] [-serve addr] [-log-level lvl] [-dependency-check=false]
//
// Configuration errors are printed to stderr and exit with status 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/katalvlaran/injgraph"
	"github.com/katalvlaran/injgraph/inspect"
	"github.com/katalvlaran/injgraph/internal/diag"
	"github.com/katalvlaran/injgraph/manifest"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run is main without the process plumbing.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// 1. Configuration and logging
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// 2. Manifest
	doc, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return err
	}
	s, err := doc.Storage()
	if err != nil {
		return errorc.With(err, errorc.String(diag.KeyPath, cfg.Manifest))
	}

	// 3. Resolution
	opts := []injgraph.Option{injgraph.WithLogger(log)}
	if !cfg.DependencyCheck {
		opts = append(opts, injgraph.WithoutDependencyCheck())
	}
	res, err := injgraph.Resolve(s, opts...)
	if err != nil {
		return err
	}
	report := inspect.NewReport(res)

	// 4. Output
	if cfg.Addr == "" {
		return inspect.WriteText(stdout, report)
	}

	return serve(ctx, cfg.Addr, inspect.Router(report, log), log)
}

// serve runs the report server until ctx is done.
func serve(ctx context.Context, addr string, h http.Handler, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("serving report", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")

		return srv.Shutdown(shutdownCtx)
	}
}
