package gormrepo

import (
	"context"

	"armbridge/internal/adapter/repo/gorm/model"
	"armbridge/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRecordRepo struct {
	db *gorm.DB
}

func NewActivityRecordRepo(db *gorm.DB) ActivityRecordRepo {
	return ActivityRecordRepo{db: db}
}

func (r ActivityRecordRepo) Append(ctx context.Context, record ports.ActivityRecord) error {
	m := model.ActivityRecord{
		ID:              record.ID,
		Timestamp:       record.Timestamp,
		Kind:            record.Kind,
		Request:         record.Request,
		Reply:           record.Reply,
		Score:           record.Score,
		Action:          record.Action,
		DurationSeconds: record.DurationSeconds,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r ActivityRecordRepo) ListLatest(ctx context.Context, limit int) ([]ports.ActivityRecord, error) {
	rows := []model.ActivityRecord{}
	query := r.db.WithContext(ctx).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "timestamp"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.ActivityRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.ActivityRecord{
			ID:              row.ID,
			Timestamp:       row.Timestamp,
			Kind:            row.Kind,
			Request:         row.Request,
			Reply:           row.Reply,
			Score:           row.Score,
			Action:          row.Action,
			DurationSeconds: row.DurationSeconds,
		})
	}
	return out, nil
}
