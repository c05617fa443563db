// Command validate checks values against a rule chain built from VALIDATE_*
// settings. Values come from the arguments, or from stdin (one per line)
// when no arguments are given.
//
// Stdin is read as a stream: each line is checked and reported as soon as it
// arrives, so the command can sit at the end of an open-ended pipe such as
// `tail -f`. SIGINT or SIGTERM stops it before the next value, even while it
// is waiting for input.
//
// Exit status is 0 when every value passes, 1 when any value fails, 2
// when the configuration can't be loaded (or input/output fails) and 130
// when interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/amp-labs/amp-validator/build"
	"github.com/amp-labs/amp-validator/envutil"
	"github.com/amp-labs/amp-validator/logger"
	"github.com/amp-labs/amp-validator/shutdown"
	"github.com/amp-labs/amp-validator/spans"
	"github.com/amp-labs/amp-validator/telemetry"
)

const (
	appName = "validate"

	exitOK          = 0
	exitInvalid     = 1
	exitConfig      = 2
	exitInterrupted = 130
)

// buildInfo is set with -ldflags "-X main.buildInfo=<json>".
var buildInfo string //nolint:gochecknoglobals

func main() {
	ctx, stop := shutdown.SetupHandler(context.Background())

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(appName, flag.ContinueOnError)
	flags.SetOutput(stderr)

	envFile := flags.String("env-file", "", "load settings from a .env, .json or .yaml file")
	asJSON := flags.Bool("json", false, "print one JSON object per value")
	showVersion := flags.Bool("version", false, "print the version and exit")

	if err := flags.Parse(args); err != nil {
		return exitConfig
	}

	if *showVersion {
		info, _ := build.Parse(buildInfo)
		_, _ = fmt.Fprintf(stdout, "%s %s\n", appName, info)

		return exitOK
	}

	if *envFile != "" {
		var err error

		ctx, err = envutil.WithEnvFile(ctx, *envFile)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)

			return exitConfig
		}
	}

	log, err := logger.ConfigureLogging(ctx, appName, logger.WithOutput(stderr))
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)

		return exitConfig
	}

	ctx = logger.WithLogger(logger.WithSubsystem(ctx, appName), log)

	telCfg, err := telemetry.LoadConfigFromEnv(ctx, "cli")
	if err != nil {
		log.Error("error loading telemetry config", "error", err)

		return exitConfig
	}

	if err := telemetry.Initialize(ctx, telCfg); err != nil {
		log.Error("error initializing telemetry", "error", err)

		return exitConfig
	}

	// Flush spans on the way out, or as soon as a signal arrives, whichever
	// comes first.
	flushTelemetry := sync.OnceFunc(func() {
		if err := telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Warn("error shutting down telemetry", "error", err)
		}
	})

	shutdown.BeforeShutdown(flushTelemetry)
	defer flushTelemetry()

	ctx = spans.WithTracer(ctx, telemetry.Tracer(appName))

	cfg, err := loadConfig(ctx)
	if err != nil {
		log.Error("error loading rule configuration", "error", err)

		return exitConfig
	}

	var next nextValue
	if values := flags.Args(); len(values) > 0 {
		next = argValues(values)
	} else {
		next = stdinValues(ctx, stdin)
	}

	validator := cfg.validator()
	status := exitOK

	for index := 0; ; index++ {
		if ctx.Err() != nil {
			log.Warn("interrupted, skipping remaining values")

			return exitInterrupted
		}

		value, ok, err := next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Warn("interrupted while waiting for input")

				return exitInterrupted
			}

			log.Error("error reading stdin", "error", err)

			return exitConfig
		}

		if !ok {
			return status
		}

		res, err := checkValue(ctx, validator, index, value, stdout, *asJSON)
		if err != nil {
			log.Error("error writing output", "error", err)

			return exitConfig
		}

		if res.IsFailure() {
			status = exitInvalid
		}
	}
}
