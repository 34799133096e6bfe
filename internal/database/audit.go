package database

import (
	"log"

	"staff-portal/internal/models"

	"gorm.io/gorm"
)

// Audit пишет журнал действий. С nil-базой (драйвер memory) ничего не делает.
type Audit struct {
	db *gorm.DB
}

func NewAudit(db *gorm.DB) *Audit {
	return &Audit{db: db}
}

// helper для записи в журнал аудита
func (a *Audit) Record(actor models.Identity, entity, entityID, action, details string) {
	if a == nil || a.db == nil {
		return
	}
	record := models.AuditLog{
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		Entity:     entity,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
	}
	if err := a.db.Create(&record).Error; err != nil {
		log.Printf("failed to write audit log: %v", err)
	}
}

func (a *Audit) List(limit int) ([]models.AuditLog, error) {
	if a == nil || a.db == nil {
		return []models.AuditLog{}, nil
	}
	var logs []models.AuditLog
	err := a.db.Order("created_at desc").Order("id desc").Limit(limit).Find(&logs).Error
	return logs, err
}
