package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LoadRun is one execution of the loader against the database.
type LoadRun struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	SourcePath string         `gorm:"column:source_path;size:512"`
	Records    int            `gorm:"column:records"`
	BatchSize  int            `gorm:"column:batch_size"`
	StartedAt  time.Time      `gorm:"column:started_at"`
	TotalMs    int64          `gorm:"column:total_ms"`
	Stats      datatypes.JSON `gorm:"type:jsonb;column:stats"`
}

func (LoadRun) TableName() string {
	return "load_runs"
}
