// Command balldraw draws lottery numbers the way a ball machine does.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/MJE43/ball-draw-go/internal/cli"
	"github.com/MJE43/ball-draw-go/internal/config"
	"github.com/MJE43/ball-draw-go/internal/draw"
	"github.com/MJE43/ball-draw-go/internal/engine"
	"github.com/MJE43/ball-draw-go/internal/logging"
)

const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	argv0 := "balldraw"
	if len(args) > 0 {
		argv0 = args[0]
		args = args[1:]
	}

	opts, err := cli.Parse(args)
	if err != nil {
		if errors.Is(err, cli.ErrUnknownOption) {
			fmt.Fprintf(stderr, "%v - %s --help for help\n", err, argv0)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return exitFailure
	}
	if opts.Help {
		fmt.Fprint(stdout, cli.Usage(argv0))
		return exitOK
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	log, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	if err := drawGame(opts, cfg, stdout, log); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func drawGame(opts cli.Options, cfg config.Config, stdout io.Writer, log zerolog.Logger) error {
	version := engine.GetVersionInfo()
	log.Debug().
		Str("version", version.Version).
		Str("commit", version.GitCommit).
		Str("entropy_path", cfg.EntropyPath).
		Msg("starting")

	pool, err := engine.LoadEntropy(cfg.EntropyPath)
	if err != nil {
		return err
	}
	log.Debug().Str("pool_fingerprint", pool.Fingerprint()).Msg("entropy loaded")

	prng := engine.NewPRNG(pool, engine.PRNGOptions{
		Policy: cfg.ReseedPolicy(),
		Logger: log,
	})

	eng, err := draw.NewEngine(prng, draw.Options{
		RoundDivisor:    cfg.RoundDivisor,
		ReshuffleRounds: cfg.ReshuffleRounds,
		Logger:          log,
	})
	if err != nil {
		return err
	}

	presentation := draw.PresentationPlain
	if opts.Starred {
		presentation = draw.PresentationStarred
	}

	_, err = draw.NewRunner(eng, stdout, presentation, log).Run(draw.RunConfig{
		Game:   opts.Game,
		Draws:  opts.Draws,
		Warmup: opts.Warmup,
	})
	return err
}
