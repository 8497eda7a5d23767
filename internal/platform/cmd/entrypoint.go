// Package cmd holds the startup plumbing shared by launchboard commands:
// config parsing, telemetry around the run loop, and the process exit path.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/louisbranch/launchboard/internal/platform/config"
	"github.com/louisbranch/launchboard/internal/platform/otel"
)

// Service identifiers used for telemetry resources and log prefixes.
const (
	ServiceDashboard    = "dashboard"
	ServiceLaunchImport = "launch-import"
)

// telemetryFlushTimeout bounds span export when a command exits.
const telemetryFlushTimeout = 5 * time.Second

// BindFunc registers flags on fs whose defaults are the env-derived values
// already in cfg.
type BindFunc[T any] func(fs *flag.FlagSet, cfg *T)

// Command describes one launchboard executable.
type Command[T any] struct {
	Service string
	Parse   func(fs *flag.FlagSet, args []string) (T, error)
	Run     func(ctx context.Context, cfg T) error
}

// ParseConfig loads env values into cfg, binds flags seeded with them and
// parses args. Flags win over env.
func ParseConfig[T any](cfg *T, fs *flag.FlagSet, args []string, bind BindFunc[T]) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs tracing for service, executes run and flushes
// pending spans before returning run's error.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()

	return run(ctx)
}

// LogPrefix returns the bracketed upper-case log prefix for service.
func LogPrefix(service string) string {
	return "[" + strings.ToUpper(strings.TrimSpace(service)) + "] "
}

// Main parses the process arguments, runs c until SIGINT or SIGTERM, and
// exits non-zero when parsing or running fails.
func Main[T any](c Command[T]) {
	cfg, err := c.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix(LogPrefix(c.Service))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = RunWithTelemetry(ctx, c.Service, func(ctx context.Context) error {
		return c.Run(ctx, cfg)
	})
	stop()
	if err != nil {
		config.Exitf("%s: %v", c.Service, err)
	}
}
