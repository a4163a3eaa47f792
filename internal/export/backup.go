// Package export implements the user-facing file formats: full backup JSON,
// CSV transaction history, and the bulk-import account template.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

// BackupVersion is the current backup format version.
const BackupVersion = 1

// Backup is the full-state backup envelope.
type Backup struct {
	Version   int             `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
	Data      models.AppState `json:"data"`
}

// NewBackup wraps the state in a backup envelope stamped now.
func NewBackup(state models.AppState, now time.Time) Backup {
	return Backup{Version: BackupVersion, Timestamp: now, Data: state}
}

// Marshal renders the backup as indented JSON.
func (b Backup) Marshal() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

// ParseBackup reads a backup file back into application state. Re-importing
// an exported backup reproduces the accounts, expenses and payment logs
// field for field.
func ParseBackup(data []byte) (*models.AppState, error) {
	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	if b.Version == 0 {
		return nil, fmt.Errorf("parse backup: missing version")
	}
	return &b.Data, nil
}
