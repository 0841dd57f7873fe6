package domain

import "time"

// AuditRecord logs a mutation event on a domain entity.
type AuditRecord struct {
	ID         string
	UserID     string
	EntityType EntityType
	EntityID   string
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
