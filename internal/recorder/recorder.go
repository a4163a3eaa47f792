// Package recorder keeps an append-only audit trail of payments and backups
// for later analysis. Recording is advisory: failures are logged by the
// caller and never fail the operation being recorded.
package recorder

import "github.com/jayantaf631991/debt-dashboard/internal/models"

// BackupEvent records one automatic or manual backup.
type BackupEvent struct {
	Namespace string
	Path      string
	Trigger   string // "scheduled" or "manual"
	SizeBytes int64
}

// Recorder persists the audit trail.
type Recorder interface {
	RecordPayment(entry models.PaymentLogEntry) error
	RecordBackup(evt BackupEvent) error
	Close() error
}

// NoopRecorder discards everything. Used when no sqlite path is configured.
type NoopRecorder struct{}

// NewNoopRecorder returns a recorder that discards all events.
func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPayment(models.PaymentLogEntry) error { return nil }
func (n *NoopRecorder) RecordBackup(BackupEvent) error             { return nil }
func (n *NoopRecorder) Close() error                               { return nil }
