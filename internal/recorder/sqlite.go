package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/jayantaf631991/debt-dashboard/internal/models"
)

// SQLiteRecorder persists the audit trail to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log *logrus.Logger
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string, log *logrus.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external tools can read while the dashboard writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS payment_history (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			payment_id     TEXT,
			account_id     TEXT,
			account_name   TEXT,
			amount         REAL,
			kind           TEXT,
			balance_before REAL,
			balance_after  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payment_ts ON payment_history(timestamp)`,

		`CREATE TABLE IF NOT EXISTS backup_history (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			namespace  TEXT,
			path       TEXT,
			trigger_by TEXT,
			size_bytes INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_backup_ts ON backup_history(timestamp)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RecordPayment appends a payment log entry to the audit trail.
func (r *SQLiteRecorder) RecordPayment(entry models.PaymentLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.db.Exec(
		`INSERT INTO payment_history
			(timestamp, payment_id, account_id, account_name, amount, kind, balance_before, balance_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Date.Unix(), entry.ID, entry.AccountID, entry.AccountName,
		entry.Amount.InexactFloat64(), string(entry.Kind),
		entry.BalanceBefore.InexactFloat64(), entry.BalanceAfter.InexactFloat64(),
	)
	return err
}

// RecordBackup appends a backup event to the audit trail.
func (r *SQLiteRecorder) RecordBackup(evt BackupEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.db.Exec(
		`INSERT INTO backup_history (timestamp, namespace, path, trigger_by, size_bytes)
		VALUES (?, ?, ?, ?, ?)`,
		time.Now().Unix(), evt.Namespace, evt.Path, evt.Trigger, evt.SizeBytes,
	)
	return err
}

// Close closes the database handle.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
