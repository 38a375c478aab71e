package bootstrap

import (
	"context"
	"time"
)

// AuditLog is an operational audit event (server lifecycle, config changes).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditEntry is a domain audit record tied to one entity.
type AuditEntry struct {
	Action     string
	EntityType string
	EntityID   string
	Detail     string
	OccurredAt time.Time
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
	Record(ctx context.Context, entry AuditEntry) error
}
