package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	ActorID    int64  `gorm:"index" json:"actorId"`
	ActorEmail string `gorm:"size:255" json:"actorEmail"`

	Entity   string `gorm:"size:50;not null" json:"entity"` // "account", "department", "employee", "request"
	EntityID string `gorm:"size:64" json:"entityId"`
	Action   string `gorm:"size:50;not null" json:"action"` // "create", "update", "delete", "cancel"
	Details  string `gorm:"type:text" json:"details"`
}
