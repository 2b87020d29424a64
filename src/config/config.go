package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"elevsim/src/types"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	NumFloors        = 10
	NumElevators     = 3
	ElevatorCapacity = 8
	WaitTicks        = 5
	DoorTicks        = 2
	MoveTicks        = 1
	TickInterval     = 500 * time.Millisecond
	LogFile          = "elevsim.log"
	MaxScriptTicks   = 1000
)

// Timing holds the per-phase durations of an elevator, counted in ticks.
type Timing struct {
	WaitTicks int `yaml:"waitTicks"`
	DoorTicks int `yaml:"doorTicks"`
	MoveTicks int `yaml:"moveTicks"`
}

type Building struct {
	Floors    int    `yaml:"floors"`
	Elevators int    `yaml:"elevators"`
	Capacity  int    `yaml:"capacity"`
	Timing    Timing `yaml:"timing"`
}

type ScriptedRequest struct {
	Tick  int `yaml:"tick"`
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Script drives a headless run. StopTick < 0 means the system is never stopped explicitly.
type Script struct {
	Requests []ScriptedRequest `yaml:"requests"`
	StopTick int               `yaml:"stopTick"`
	MaxTicks int               `yaml:"maxTicks"`
}

type Config struct {
	Building     Building      `yaml:"building"`
	TickInterval time.Duration `yaml:"tickInterval"`
	LogLevel     string        `yaml:"logLevel"`
	LogFile      string        `yaml:"logFile"`
	Script       Script        `yaml:"script"`
}

func DefaultTiming() Timing {
	return Timing{WaitTicks: WaitTicks, DoorTicks: DoorTicks, MoveTicks: MoveTicks}
}

func Default() Config {
	return Config{
		Building: Building{
			Floors:    NumFloors,
			Elevators: NumElevators,
			Capacity:  ElevatorCapacity,
			Timing:    DefaultTiming(),
		},
		TickInterval: TickInterval,
		LogLevel:     "info",
		LogFile:      LogFile,
		Script:       Script{StopTick: -1, MaxTicks: MaxScriptTicks},
	}
}

func (t Timing) Validate() error {
	if t.WaitTicks < 1 || t.DoorTicks < 1 || t.MoveTicks < 1 {
		return fmt.Errorf("%w: tick counts must be positive, got wait=%d door=%d move=%d",
			types.ErrInvalidArgument, t.WaitTicks, t.DoorTicks, t.MoveTicks)
	}
	return nil
}

// Load decodes a YAML file on top of the defaults. Fields absent from the file keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	// An empty or comment-only file has no document and keeps the defaults.
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with ELEVSIM_* entries from a .env file. A missing file leaves cfg untouched.
func ApplyEnv(cfg Config, path string) (Config, error) {
	envFile, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read env file %s: %w", path, err)
	}

	ints := map[string]*int{
		"ELEVSIM_FLOORS":     &cfg.Building.Floors,
		"ELEVSIM_ELEVATORS":  &cfg.Building.Elevators,
		"ELEVSIM_CAPACITY":   &cfg.Building.Capacity,
		"ELEVSIM_WAIT_TICKS": &cfg.Building.Timing.WaitTicks,
		"ELEVSIM_DOOR_TICKS": &cfg.Building.Timing.DoorTicks,
		"ELEVSIM_MOVE_TICKS": &cfg.Building.Timing.MoveTicks,
	}
	for key, field := range ints {
		value, ok := envFile[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", key, err)
		}
		*field = n
	}

	if value, ok := envFile["ELEVSIM_TICK_INTERVAL"]; ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			return cfg, fmt.Errorf("ELEVSIM_TICK_INTERVAL: %w", err)
		}
		cfg.TickInterval = d
	}
	if value, ok := envFile["ELEVSIM_LOG_LEVEL"]; ok {
		cfg.LogLevel = value
	}
	if value, ok := envFile["ELEVSIM_LOG_FILE"]; ok {
		cfg.LogFile = value
	}
	return cfg, nil
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", types.ErrInvalidArgument, level)
}
