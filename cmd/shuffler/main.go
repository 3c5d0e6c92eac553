// shuffler deals a deck through a shuffle routine and prints the result.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/katalvlaran/shuffler/routine"
)

// defaultSteps is the classic dealer routine: riffle, cut three, flip.
const defaultSteps = "riffle; put_back 3; reverse"

var (
	version   = "dev"
	gitCommit string
)

func fullVersion() string {
	if gitCommit == "" {
		return version
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func main() {
	app := cli.App{
		Version: fullVersion(),
		Name:    "shuffler",
		Usage:   "Deal a deck through riffle / put_back / reverse / remove_middle / random routines",
		Flags: []cli.Flag{
			sizeFlag,
			cardsFlag,
			routineFlag,
			stepsFlag,
			repeatFlag,
			seedFlag,
			verbosityFlag,
			traceFlag,
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// config is the resolved command line.
type config struct {
	size        int
	faces       bool
	routineFile string
	steps       string
	repeat      int
	repeatSet   bool
	seed        uint64
	trace       bool
}

func readConfig(ctx *cli.Context) config {
	return config{
		size:        ctx.Int(sizeFlag.Name),
		faces:       ctx.Bool(cardsFlag.Name),
		routineFile: ctx.String(routineFlag.Name),
		steps:       ctx.String(stepsFlag.Name),
		repeat:      ctx.Int(repeatFlag.Name),
		repeatSet:   ctx.IsSet(repeatFlag.Name),
		seed:        ctx.Uint64(seedFlag.Name),
		trace:       ctx.Bool(traceFlag.Name),
	}
}

func newLogger(verbosity string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(verbosity)
	if err != nil {
		return nil, errors.Wrap(err, "-verbosity")
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "shuffler",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	logger.SetLevel(lvl)
	return logger, nil
}

func run(ctx *cli.Context) error {
	logger, err := newLogger(ctx.String(verbosityFlag.Name))
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cards, err := deal(sigCtx, readConfig(ctx), logger)
	if err != nil {
		return err
	}
	return writeDeck(os.Stdout, cards, stdoutIsTerminal())
}

// loadRoutine picks the routine file if given, the inline steps otherwise,
// and applies the --repeat override.
func loadRoutine(cfg config) (routine.Routine, error) {
	var (
		r   routine.Routine
		err error
	)
	if cfg.routineFile != "" {
		if r, err = routine.LoadFile(cfg.routineFile); err != nil {
			return routine.Routine{}, errors.Wrap(err, "-routine")
		}
	} else {
		if r, err = routine.Parse(cfg.steps); err != nil {
			return routine.Routine{}, errors.Wrap(err, "-steps")
		}
	}
	if cfg.repeatSet {
		if cfg.repeat < 1 {
			return routine.Routine{}, errors.Errorf("-repeat: must be at least 1, got %d", cfg.repeat)
		}
		r.Repeat = cfg.repeat
	}
	return r, nil
}

// deal builds the deck, runs the routine and renders the result.
func deal(ctx context.Context, cfg config, logger *log.Logger) ([]string, error) {
	size := cfg.size
	if cfg.faces {
		size = standardDeckSize
	}
	if size < 0 {
		return nil, errors.Errorf("-size: must not be negative, got %d", size)
	}

	r, err := loadRoutine(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.seed
	if seed == 0 && r.NeedsSource() {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("dealing", "cards", size, "routine", r.String(), "rounds", r.Rounds())
	if r.NeedsSource() {
		logger.Info("random source", "seed", seed)
	}

	deck := newDeck(size)
	opts := []routine.Option{
		routine.WithContext(ctx),
		routine.WithSeed(seed),
	}
	if cfg.trace {
		opts = append(opts, routine.WithOnStep(func(round, index int, st routine.Step) {
			logger.Debug("step",
				"round", round+1,
				"index", index+1,
				"op", st.String(),
				"deck", strings.Join(render(deck, cfg.faces), " "))
		}))
	}

	if err := routine.Run(r, deck, opts...); err != nil {
		return nil, errors.Wrap(err, "run routine")
	}
	logger.Debug("done")
	return render(deck, cfg.faces), nil
}
