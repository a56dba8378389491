package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/console"
	"github.com/vancomm/minesweeper/internal/mines"
)

// readLines feeds r into a channel line by line. The goroutine is not
// stopped on shutdown since a blocked read cannot be interrupted.
func readLines(r io.Reader, logger *slog.Logger) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			logger.Error("unable to read input", slog.Any("error", err))
		}
	}()
	return lines
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "unable to load .env: %s\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger(os.Stderr)
	mines.Log = logger

	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewGame()
	if err != nil {
		logger.Error("failed to read game config", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Debug("config",
		slog.String("difficulty", cfg.Difficulty),
		slog.String("params", cfg.Params.String()),
		slog.Bool("seeded", cfg.Seeded()),
	)

	session, err := console.NewSession(cfg.Params, os.Stdout,
		console.WithRand(cfg.Rand()),
		console.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to start session", slog.Any("error", err))
		os.Exit(1)
	}

	lines := readLines(os.Stdin, logger)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer stop()
		return session.Serve(gCtx, lines)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return session.Close()
	})

	err = g.Wait()
	switch {
	case err == nil, errors.Is(err, console.ErrQuit):
		logger.Debug("bye")
	default:
		logger.Info("exit reason", slog.Any("error", err))
	}
}
