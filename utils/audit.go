package utils

import (
	"time"

	"olympus-app/models"

	"gorm.io/gorm"
)

// InsertAuditLog records a staff-triggered state change. Failures are
// swallowed by callers; the audit trail never blocks the main write.
func InsertAuditLog(db *gorm.DB, refNo, entity, action, detail string, actor int) error {
	entry := models.AuditLog{
		RefNo:     refNo,
		Entity:    entity,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
		CreatedBy: actor,
	}
	return db.Create(&entry).Error
}

// ActorID pulls the authenticated user id out of fiber locals, tolerating
// the float64 the JWT claims produce.
func ActorID(v interface{}) int {
	switch id := v.(type) {
	case float64:
		return int(id)
	case int:
		return id
	default:
		return 0
	}
}
