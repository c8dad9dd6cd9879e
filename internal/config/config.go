package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys. Flags override them.
const (
	EnvPuzzle   = "WORDRING_PUZZLE"
	EnvSeed     = "WORDRING_SEED"
	EnvFPS      = "WORDRING_FPS"
	EnvLog      = "WORDRING_LOG"
	EnvLogLevel = "LOG_LEVEL"
)

const (
	DefaultFPS      = 60
	DefaultLogLevel = "info"
)

type Config struct {
	PuzzlePath string // empty means the built-in puzzle
	Seed       int64  // 0 means time-based
	FPS        int
	LogFile    string // empty discards logs
	LogLevel   string
	SkipIntro  bool
}

// LookupFunc reports the value of an environment key.
type LookupFunc func(key string) (string, bool)

// WithDotEnv returns a lookup that consults env first and then the values
// read from the .env file at path. A missing file is not an error.
func WithDotEnv(env LookupFunc, path string) (LookupFunc, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return env, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return func(key string) (string, bool) {
		if v, ok := env(key); ok && v != "" {
			return v, ok
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

type seedFlag int64

func (s *seedFlag) String() string {
	if *s == 0 {
		return "random"
	}
	return fmt.Sprint(int64(*s))
}

func (s *seedFlag) Set(v string) error {
	if v == "random" || v == "" {
		*s = 0
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q (use an integer or 'random')", v)
	}
	*s = seedFlag(n)
	return nil
}

type fpsFlag int

func (f *fpsFlag) String() string {
	return fmt.Sprint(int(*f))
}

func (f *fpsFlag) Set(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid fps %q: %w", v, err)
	}
	if n < 1 || n > 240 {
		return fmt.Errorf("fps must be between 1 and 240, got %d", n)
	}
	*f = fpsFlag(n)
	return nil
}

// Load builds the configuration from defaults, then the environment, then
// command line flags.
func Load(args []string, env LookupFunc, output io.Writer) (*Config, error) {
	seed := seedFlag(0)
	fps := fpsFlag(DefaultFPS)
	cfg := &Config{LogLevel: DefaultLogLevel}

	if v, ok := env(EnvPuzzle); ok {
		cfg.PuzzlePath = v
	}
	if v, ok := env(EnvLog); ok {
		cfg.LogFile = v
	}
	if v, ok := env(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := env(EnvSeed); ok {
		if err := seed.Set(v); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvSeed, err)
		}
	}
	if v, ok := env(EnvFPS); ok && v != "" {
		if err := fps.Set(v); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvFPS, err)
		}
	}

	fset := flag.NewFlagSet("word-ring", flag.ContinueOnError)
	fset.SetOutput(output)

	fset.StringVar(&cfg.PuzzlePath, "puzzle", cfg.PuzzlePath, "Puzzle file to play (default: built-in)")
	fset.StringVar(&cfg.PuzzlePath, "p", cfg.PuzzlePath, "Puzzle file to play (shorthand)")

	fset.Var(&seed, "seed", "Shuffle seed, or 'random'")
	fset.Var(&fps, "fps", "Animation frames per second")

	fset.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Write logs to this file")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	fset.BoolVar(&cfg.SkipIntro, "skip-intro", false, "Start playing without the start screen")
	fset.BoolVar(&cfg.SkipIntro, "si", false, "Start playing without the start screen (shorthand)")

	fset.Usage = func() {
		fmt.Fprintf(output, "Usage: word-ring [options]\n")
		fmt.Fprintf(output, "\nOptions:\n")
		fmt.Fprintf(output, "    -p, --puzzle=FILE      Puzzle file to play (default: built-in GOLD puzzle)\n")
		fmt.Fprintf(output, "        --seed=N|random    Shuffle seed\n")
		fmt.Fprintf(output, "        --fps=N            Animation frames per second (default %d)\n", DefaultFPS)
		fmt.Fprintf(output, "        --log=FILE         Write logs to FILE\n")
		fmt.Fprintf(output, "        --log-level=LEVEL  Log level (default %s)\n", DefaultLogLevel)
		fmt.Fprintf(output, "   -si, --skip-intro       Start playing without the start screen\n")
		fmt.Fprintf(output, "    -h, --help             Show this help message\n")
		fmt.Fprintf(output, "\nEnvironment (also read from .env): %s, %s, %s, %s, %s\n",
			EnvPuzzle, EnvSeed, EnvFPS, EnvLog, EnvLogLevel)
	}

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	if fset.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fset.Args(), " "))
	}

	cfg.Seed = int64(seed)
	cfg.FPS = int(fps)
	return cfg, nil
}
