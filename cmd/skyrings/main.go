//go:build !android

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"skyrings/internal/config"
	"skyrings/internal/game"
	"skyrings/internal/headless"
	"skyrings/internal/term"
)

func main() {
	var (
		configPath string
		seed       uint64
		mute       bool
		termMode   bool
		dumpTuning bool
		hcfg       headless.Config
		headlessOn bool
	)
	flag.StringVar(&configPath, "config", "", "YAML tuning file (default $"+config.EnvConfig+").")
	flag.Uint64Var(&seed, "seed", 0, "Ring field seed (default $"+config.EnvSeed+" or the clock).")
	flag.BoolVar(&mute, "mute", false, "Disable sound.")
	flag.BoolVar(&termMode, "term", false, "Play in the terminal.")
	flag.BoolVar(&headlessOn, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.BoolVar(&hcfg.Autopilot, "autopilot", false, "Steer automatically in headless mode.")
	flag.BoolVar(&dumpTuning, "dump-tuning", false, "Print the effective tuning as YAML and exit.")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "mute":
			cfg.Mute = mute
		}
	})

	if dumpTuning {
		out, err := config.MarshalTuning(cfg.Tuning)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	switch {
	case headlessOn:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		res, err := headless.Run(ctx, cfg, hcfg)
		fmt.Println(res)
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	case termMode:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := term.Run(ctx, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

	default:
		if err := game.RunDesktop(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
