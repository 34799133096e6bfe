package database

import (
	"errors"

	"staff-portal/internal/models"
	"staff-portal/internal/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot — storage.Slot поверх таблицы kv_entries.
type Slot struct {
	db *gorm.DB
}

var _ storage.Slot = (*Slot)(nil)

func NewSlot(db *gorm.DB) *Slot {
	return &Slot{db: db}
}

func (s *Slot) Get(key string) (string, error) {
	var e models.Entry
	err := s.db.Where("key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", storage.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

func (s *Slot) Set(key, value string) error {
	e := models.Entry{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

func (s *Slot) Remove(key string) error {
	return s.db.Where("key = ?", key).Delete(&models.Entry{}).Error
}
