// Command cratersim-tui shows a cratering run live in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"cratersim/internal/app"
	"cratersim/internal/core"
	_ "cratersim/internal/sims/craters"
	"cratersim/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Lookup(cfg.Sim, cfg.Overrides.Map())
	if err != nil {
		fmt.Fprintln(os.Stderr, "cratersim-tui:", err)
		os.Exit(2)
	}
	sim.Reset(cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cratersim-tui:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "cratersim-tui:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = tui.New(screen, sim, cfg.Seed).Run(ctx)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "cratersim-tui:", err)
		os.Exit(1)
	}
}
