package ports

import (
	"context"
	"time"
)

// ActivityRecord is one finalized request/reply correlation entry.
type ActivityRecord struct {
	ID              string
	Timestamp       time.Time
	Kind            string
	Request         string
	Reply           string
	Score           *int
	Action          string
	DurationSeconds *float64
}

// ActivityRecordRepository is the append-only activity sink.
type ActivityRecordRepository interface {
	Append(ctx context.Context, record ActivityRecord) error
	ListLatest(ctx context.Context, limit int) ([]ActivityRecord, error)
}
