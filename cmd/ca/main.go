package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"ca-player/internal/app"
	"ca-player/pkg/core"
	"ca-player/pkg/player"
	_ "ca-player/pkg/sims/briansbrain"
	_ "ca-player/pkg/sims/elementary"
	_ "ca-player/pkg/sims/life"

	"github.com/logrusorgru/aurora"
)

func main() {
	cfg, err := app.Load("ca", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	params, err := cfg.ParamMap()
	if err != nil {
		logger.Error("bad sim parameters", "err", err)
		os.Exit(2)
	}
	if params == nil {
		params = map[string]string{}
	}
	if _, ok := params["seed"]; !ok {
		params["seed"] = strconv.FormatInt(cfg.Seed, 10)
	}

	sim, err := core.NewSim(cfg.Sim, params)
	if err != nil {
		logger.Error("cannot build sim", "err", err)
		os.Exit(2)
	}

	opts := []player.Option{
		player.WithCellSize(cfg.CellSize),
		player.WithDelay(cfg.Delay()),
		player.WithLogger(logger),
		player.WithTitle("ca-player | " + sim.Name),
	}
	if cfg.Terminal {
		opts = append(opts, player.WithTerminal())
	}
	if cfg.FPS {
		opts = append(opts, player.WithFPS())
	}

	start := time.Now()
	err = player.PlaySim(sim, opts...)
	if errors.Is(err, player.ErrNoGUI) {
		fmt.Fprintln(os.Stderr, "The window build of ca requires the ebiten build tag.")
		fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/ca`, or pass --terminal.")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("session failed", "sim", sim.Name, "err", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%s %s after %s\n", aurora.Green("finished"), aurora.Bold(sim.Name), time.Since(start).Round(time.Millisecond))
}
