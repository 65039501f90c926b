package model

import "time"

// ActivityRecord is the persisted form of one finalized correlation entry.
type ActivityRecord struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Timestamp       time.Time `gorm:"column:timestamp;index"`
	Kind            string    `gorm:"column:kind"`
	Request         string    `gorm:"column:request"`
	Reply           string    `gorm:"column:reply"`
	Score           *int      `gorm:"column:score"`
	Action          string    `gorm:"column:action"`
	DurationSeconds *float64  `gorm:"column:duration_seconds"`
}

func (ActivityRecord) TableName() string {
	return "activity_records"
}
