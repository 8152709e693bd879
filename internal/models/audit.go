package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditStatus is the outcome of an authorization decision.
type AuditStatus string

const (
	AuditAllowed AuditStatus = "allowed"
	AuditDenied  AuditStatus = "denied"
)

// AuditEvent records a single authorization decision.
//
// Audit events are append-only, they are never mutated or deleted
// through the application.
type AuditEvent struct {
	DefaultModel
	UserID    uuid.UUID   `json:"userId"`
	Role      Role        `json:"role"`
	IP        string      `json:"ip"`
	Path      string      `json:"path"`
	Resource  string      `json:"resource"`
	Action    string      `json:"action"`
	Status    AuditStatus `json:"status"`
	Reason    string      `json:"reason"`
	Timestamp time.Time   `json:"timestamp"`
}

// BeforeSave sets the decision timestamp when it is unset.
func (a *AuditEvent) BeforeSave(_ *gorm.DB) error {
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().In(time.UTC)
	} else {
		a.Timestamp = a.Timestamp.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamp to use UTC as timezone, not +0000.
func (a *AuditEvent) AfterFind(_ *gorm.DB) error {
	a.Timestamp = a.Timestamp.In(time.UTC)
	return nil
}
