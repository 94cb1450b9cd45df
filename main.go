package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"circlegame/internal/config"
	"circlegame/internal/logger"
	"circlegame/internal/loop"
	"circlegame/internal/terminal"
)

// Log file used by the terminal backend when no output is configured,
// since the screen owns the tty
const terminalLogFile = "circlegame.log"

func main() {
	var (
		configPath string
		backend    string
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "Optional YAML config file")
	flag.StringVar(&backend, "backend", "", "Backend: 'ebiten' or 'terminal' (overrides config)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if backend != "" {
		cfg.Backend = backend
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Backend == config.BackendTerminal && cfg.Log.Output == "" {
		cfg.Log.Output = terminalLogFile
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
		os.Exit(1)
	}
	log.Info("starting", zap.String("backend", cfg.Backend), zap.String("config", configPath))

	ctrl := loop.New(cfg, log)

	switch cfg.Backend {
	case config.BackendTerminal:
		err = runTerminal(cfg, ctrl, log)
	default:
		err = runEbiten(cfg, ctrl)
	}
	ctrl.Shutdown()

	if err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}

func runEbiten(cfg config.Config, ctrl *loop.Controller) error {
	// 1. Window Setup
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.TPS)

	// 2. Initialize Game
	game := NewGame(cfg, ctrl)

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

func runTerminal(cfg config.Config, ctrl *loop.Controller, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return terminal.New(screen, ctrl, cfg, log).Run(ctx)
}
