package entity

import "time"

// AuditLog entrada del registro de auditoría. Before/After guardan JSON serializado.
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	Entity    string
	EntityID  string
	Before    string
	After     string
	Timestamp time.Time
}
