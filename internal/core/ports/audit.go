package ports

import (
	"context"
	"time"
)

// AuditEvent records a security-relevant action (login, logout, role
// approval). Events for the same subject email are processed in order.
type AuditEvent struct {
	Type      string    `json:"type" bson:"type"`
	Email     string    `json:"email" bson:"email"`
	ActorID   string    `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Detail    string    `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// AuditRecorder persists audit events.
type AuditRecorder interface {
	Record(ctx context.Context, event AuditEvent) error
}
