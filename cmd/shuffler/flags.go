package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	sizeFlag = cli.IntFlag{
		Name:   "size",
		Value:  52,
		Usage:  "number of cards in the deck (values 1..size)",
		EnvVar: "SHUFFLER_SIZE",
	}
	cardsFlag = cli.BoolFlag{
		Name:   "cards",
		Usage:  "deal a standard 52-card deck and print card faces",
		EnvVar: "SHUFFLER_CARDS",
	}
	routineFlag = cli.StringFlag{
		Name:   "routine",
		Usage:  "path to a YAML routine file (overrides --steps)",
		EnvVar: "SHUFFLER_ROUTINE",
	}
	stepsFlag = cli.StringFlag{
		Name:   "steps",
		Value:  defaultSteps,
		Usage:  "inline routine, e.g. \"riffle; put_back 3; reverse\"",
		EnvVar: "SHUFFLER_STEPS",
	}
	repeatFlag = cli.IntFlag{
		Name:   "repeat",
		Usage:  "number of rounds (overrides the routine's repeat)",
		EnvVar: "SHUFFLER_REPEAT",
	}
	seedFlag = cli.Uint64Flag{
		Name:   "seed",
		Usage:  "seed for random steps (0 picks one from the clock)",
		EnvVar: "SHUFFLER_SEED",
	}
	verbosityFlag = cli.StringFlag{
		Name:   "verbosity",
		Value:  "info",
		Usage:  "log level (debug|info|warn|error)",
		EnvVar: "SHUFFLER_VERBOSITY",
	}
	traceFlag = cli.BoolFlag{
		Name:  "trace",
		Usage: "log the deck after every step (debug level)",
	}
)
