package benchmark

import (
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"github.com/yourusername/go-exam-gen/db/schemas/exam/models"
	"github.com/yourusername/go-exam-gen/generator"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"log"
	"time"
)

func ToExam(r generator.Record) models.Exam {
	return models.Exam{
		Sid:       r.ID,
		Name:      r.Name,
		Maths:     r.Maths,
		Physics:   r.Physics,
		Chemistry: r.Chemistry,
		Biology:   r.Biology,
	}
}

// LoadExams inserts records in batches of batchSize, one transaction per
// batch, and returns the per-batch latency summary. The first failing batch
// aborts the load.
func LoadExams(db *gorm.DB, records []generator.Record, batchSize int) (Summary, error) {
	if batchSize <= 0 {
		return Summary{}, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	totalBatches := (len(records) + batchSize - 1) / batchSize
	durations := make([]time.Duration, 0, totalBatches)
	batch := make([]models.Exam, 0, batchSize)
	nextReport := totalBatches / 10

	startTotal := time.Now()
	for batchNum := 0; batchNum < totalBatches; batchNum++ {
		start := batchNum * batchSize
		end := min(start+batchSize, len(records))

		batch = batch[:0]
		for _, r := range records[start:end] {
			batch = append(batch, ToExam(r))
		}

		t0 := time.Now()
		err := db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&batch).Error
		})
		durations = append(durations, time.Since(t0))
		if err != nil {
			return Summarize(durations, time.Since(startTotal)), fmt.Errorf("batch %d (ids %d-%d): %w", batchNum, records[start].ID, records[end-1].ID, err)
		}

		if batchNum >= nextReport && nextReport > 0 {
			log.Printf("⏳ loaded %d/%d batches", batchNum+1, totalBatches)
			nextReport += totalBatches / 10
		}
	}

	return Summarize(durations, time.Since(startTotal)), nil
}

// RecordRun stores the outcome of a load in load_runs.
func RecordRun(db *gorm.DB, sourcePath string, records, batchSize int, startedAt time.Time, s Summary) (models.LoadRun, error) {
	stats, err := json.Marshal(s)
	if err != nil {
		return models.LoadRun{}, err
	}

	run := models.LoadRun{
		ID:         uuid.New(),
		SourcePath: sourcePath,
		Records:    records,
		BatchSize:  batchSize,
		StartedAt:  startedAt,
		TotalMs:    s.Total.Milliseconds(),
		Stats:      datatypes.JSON(stats),
	}
	if err := db.Create(&run).Error; err != nil {
		return run, fmt.Errorf("record load run: %w", err)
	}
	return run, nil
}
