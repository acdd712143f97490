package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvCellSize    = "FROG_CELL_SIZE"
	EnvColumns     = "FROG_COLUMNS"
	EnvRows        = "FROG_ROWS"
	EnvCycleLength = "FROG_CYCLE_LENGTH"
	EnvTickMS      = "FROG_TICK_MS"
	EnvGrowEvery   = "FROG_GROW_EVERY"
	EnvGrowBy      = "FROG_GROW_BY"
)

// DefaultEnvFile is the dotenv file consulted by the executable
const DefaultEnvFile = ".env"

// ApplyEnv overlays FROG_* variables onto c
// Values come from envFile (when it exists) with the process environment
// taking precedence
func (c *Config) ApplyEnv(envFile string) error {
	vars := make(map[string]string)
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read env file %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}

	targets := []struct {
		name string
		dst  *int
	}{
		{EnvCellSize, &c.Board.CellSize},
		{EnvColumns, &c.Board.Columns},
		{EnvRows, &c.Board.Rows},
		{EnvCycleLength, &c.Frog.CycleLength},
		{EnvTickMS, &c.Session.TickMS},
		{EnvGrowEvery, &c.Session.GrowEvery},
		{EnvGrowBy, &c.Session.GrowBy},
	}

	for _, t := range targets {
		raw, ok := os.LookupEnv(t.name)
		if !ok {
			raw, ok = vars[t.name]
		}
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, t.name, raw)
		}
		*t.dst = v
	}
	return nil
}
