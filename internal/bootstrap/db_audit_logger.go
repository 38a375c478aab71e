package bootstrap

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type auditLogRow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action     string    `gorm:"type:varchar(60);not null;index"`
	EntityType string    `gorm:"type:varchar(60);not null"`
	EntityID   string    `gorm:"type:varchar(60);not null;index"`
	Detail     string    `gorm:"type:varchar(255)"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

func (auditLogRow) TableName() string {
	return "audit_logs"
}

// DBAuditLogger persists domain audit records; operational events still go to
// the process log only.
type DBAuditLogger struct {
	db *gorm.DB
}

func NewDBAuditLogger(db *gorm.DB) *DBAuditLogger {
	return &DBAuditLogger{db: db}
}

func (l *DBAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}

func (l *DBAuditLogger) Record(ctx context.Context, entry AuditEntry) error {
	return l.db.WithContext(ctx).Create(&auditLogRow{
		ID:         uuid.New(),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Detail:     entry.Detail,
		OccurredAt: entry.OccurredAt,
	}).Error
}
