package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/yourusername/go-exam-gen/generator"
)

const (
	defaultBatchSize  = 1000
	defaultResultsCSV = "load_results.csv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// GenConfig controls generation and loading.
type GenConfig struct {
	RecordCount int
	Seed        int64
	SeedSet     bool // false when Seed was derived from the clock
	OutputPath  string
	BatchSize   int
	ResultsCSV  string
}

// LoadGenConfig reads EXAM_* variables, after loading .env if present.
// Entries in overrides win over the environment and are validated in its
// place, so a bad environment value does not matter once overridden.
func LoadGenConfig(overrides map[string]string) (GenConfig, error) {
	_ = godotenv.Load()
	return ParseGenConfig(WithOverrides(os.Getenv, overrides))
}

// WithOverrides returns a lookup that consults overrides before getenv.
func WithOverrides(getenv func(string) string, overrides map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := overrides[key]; ok {
			return v
		}
		return getenv(key)
	}
}

func ParseGenConfig(getenv func(string) string) (GenConfig, error) {
	cfg := GenConfig{
		RecordCount: generator.DefaultCount,
		Seed:        time.Now().UnixNano(),
		OutputPath:  getenv("EXAM_OUTPUT"),
		BatchSize:   defaultBatchSize,
		ResultsCSV:  defaultResultsCSV,
	}

	var err error
	if cfg.RecordCount, err = positiveInt(getenv, "EXAM_RECORD_COUNT", cfg.RecordCount); err != nil {
		return GenConfig{}, err
	}
	if cfg.BatchSize, err = positiveInt(getenv, "EXAM_BATCH_SIZE", cfg.BatchSize); err != nil {
		return GenConfig{}, err
	}
	if v := getenv("EXAM_SEED"); v != "" {
		cfg.Seed, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			return GenConfig{}, fmt.Errorf("%w: EXAM_SEED=%q: %v", ErrInvalidConfig, v, err)
		}
		cfg.SeedSet = true
	}
	if v := getenv("EXAM_RESULTS_CSV"); v != "" {
		cfg.ResultsCSV = v
	}
	return cfg, nil
}

// Validate rejects values that would make a run meaningless.
func (cfg GenConfig) Validate() error {
	if cfg.RecordCount <= 0 {
		return fmt.Errorf("%w: record count must be positive, got %d", ErrInvalidConfig, cfg.RecordCount)
	}
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidConfig, cfg.BatchSize)
	}
	return nil
}

func positiveInt(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, key, n)
	}
	return n, nil
}
