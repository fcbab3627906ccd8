package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samvad-hq/apex-legends-go/internal/app"
	"github.com/samvad-hq/apex-legends-go/internal/config"
	"github.com/samvad-hq/apex-legends-go/internal/logger"
	"github.com/samvad-hq/apex-legends-go/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "apexstats: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	log.DebugObj("apexstats starting", "config", cfg.Redacted())

	player := cfg.PlayerName
	if len(os.Args) > 1 {
		player = strings.Join(os.Args[1:], " ")
	}
	if strings.TrimSpace(player) == "" {
		return errors.New("no player given (pass a name or set PLAYER_NAME)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lookup, err := app.NewLookup(cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize lookup", "error", err.Error())
		return err
	}
	defer lookup.Close()

	report, runErr := lookup.Run(ctx, player)
	if report == nil {
		return fmt.Errorf("lookup: %w", runErr)
	}
	if err := render.Write(os.Stdout, cfg.OutputFormat, report); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if runErr != nil {
		return fmt.Errorf("lookup incomplete: %w", runErr)
	}
	return nil
}
