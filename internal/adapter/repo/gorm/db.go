package gormrepo

import (
	"fmt"

	"armbridge/internal/adapter/repo/gorm/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&model.ActivityRecord{}); err != nil {
		return nil, fmt.Errorf("migrate activity_records: %w", err)
	}
	return db, nil
}
