package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/yourusername/go-exam-gen/benchmark"
	"github.com/yourusername/go-exam-gen/config"
	"github.com/yourusername/go-exam-gen/generator"
	"log"
	"os"
	"time"
)

// flagEnv maps command-line flags to the EXAM_* variables they override.
var flagEnv = map[string]string{
	"count": "EXAM_RECORD_COUNT",
	"seed":  "EXAM_SEED",
	"o":     "EXAM_OUTPUT",
	"batch": "EXAM_BATCH_SIZE",
	"csv":   "EXAM_RESULTS_CSV",
}

type options struct {
	load      string
	fresh     bool
	overrides map[string]string
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Fatal(err)
	}
}

func run(args []string) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.LoadGenConfig(opts.overrides)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.load != "" {
		return runLoad(cfg, opts.load, opts.fresh)
	}
	return runGenerate(cfg)
}

// parseArgs collects only the flags given explicitly, so unset flags leave
// the environment in charge.
func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("exam-gen", flag.ContinueOnError)
	fs.Int("count", generator.DefaultCount, "number of insert statements to generate")
	fs.Int64("seed", 0, "rng seed (defaults to the clock)")
	fs.String("o", "", "output file (defaults to stdout)")
	fs.Int("batch", 1000, "rows per insert transaction when loading")
	fs.String("csv", "load_results.csv", "csv file receiving load latency results")
	flagLoad := fs.String("load", "", "load a generated file into postgres instead of generating")
	flagFresh := fs.Bool("fresh", false, "truncate the results csv and recreate the database before loading")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected arguments %v", config.ErrInvalidConfig, fs.Args())
	}

	opts := options{load: *flagLoad, fresh: *flagFresh, overrides: map[string]string{}}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagEnv[f.Name]; ok {
			opts.overrides[key] = f.Value.String()
		}
	})
	return opts, nil
}

func runGenerate(cfg config.GenConfig) (err error) {
	out := os.Stdout
	if cfg.OutputPath != "" {
		f, cerr := os.Create(cfg.OutputPath)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		out = f
	}

	if !cfg.SeedSet {
		log.Printf("using seed %d", cfg.Seed)
	}
	return generator.Generate(out, generator.NewSource(cfg.Seed), cfg.RecordCount)
}

func runLoad(cfg config.GenConfig, path string, fresh bool) error {
	dbCfg := config.LoadDBConfig()
	if !dbCfg.Configured() {
		return fmt.Errorf("%w: DB_HOST is required to load", config.ErrInvalidConfig)
	}
	if fresh {
		if err := config.DropAndRecreateDatabase(dbCfg); err != nil {
			return err
		}
	}

	db, err := config.Open(dbCfg)
	if err != nil {
		return err
	}
	if err := config.Migrate(db); err != nil {
		return err
	}
	if !fresh {
		if err := config.TruncateExams(db); err != nil {
			return err
		}
	}

	log.Printf("📥 reading %s", path)
	records, err := benchmark.LoadInputRecords(path)
	if err != nil {
		return fmt.Errorf("failed to load input records: %w", err)
	}

	startedAt := time.Now()
	summary, err := benchmark.LoadExams(db, records, cfg.BatchSize)
	if err != nil {
		return err
	}

	log.Printf("📊 Loaded %d records in %s", len(records), summary.Total)
	log.Printf("⏱️ Per-batch latency (%d rows/batch):", cfg.BatchSize)
	log.Printf("  - p50: %s", summary.P50)
	log.Printf("  - p90: %s", summary.P90)
	log.Printf("  - p99: %s", summary.P99)
	log.Printf("  - maxTime: %s", summary.Max)

	if _, err := benchmark.RecordRun(db, path, len(records), cfg.BatchSize, startedAt, summary); err != nil {
		return err
	}
	_, statErr := os.Stat(cfg.ResultsCSV)
	return benchmark.WriteCSV(summary, len(records), cfg.ResultsCSV, fresh || os.IsNotExist(statErr))
}
