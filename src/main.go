package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"elevsim/src/config"
	"elevsim/src/controller"
	"elevsim/src/dispatcher"
	"elevsim/src/elev"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	envPath := flag.String("env", ".env", "Path to a .env file with ELEVSIM_* overrides")
	script := flag.Bool("script", false, "Run the scripted requests from the config instead of the keyboard controller")
	verbose := flag.Bool("v", false, "Log at debug level")
	flag.Parse()

	if err := run(*configPath, *envPath, *script, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "elevsim:", err)
		os.Exit(1)
	}
}

func run(configPath, envPath string, script, verbose bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	cfg, err := config.ApplyEnv(cfg, envPath)
	if err != nil {
		return err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logFile, err := elev.InitLogger(level, cfg.LogFile, script)
	if err != nil {
		return err
	}
	defer logFile.Close()

	runID := uuid.New()
	slog.SetDefault(slog.Default().With("run", runID.String()))
	slog.Info("Starting elevsim", "floors", cfg.Building.Floors, "elevators", cfg.Building.Elevators, "capacity", cfg.Building.Capacity)

	building, err := dispatcher.New(cfg.Building)
	if err != nil {
		return err
	}

	if script {
		report, err := controller.RunScript(building, cfg.Script)
		fmt.Println(report)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return controller.New(building, os.Stdout, cfg.TickInterval).Run(ctx)
}
