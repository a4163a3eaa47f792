// Package scheduler runs the automatic backups. Advisory only: it reads the
// current state at fire time and never touches the ledger.
package scheduler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jayantaf631991/debt-dashboard/internal/export"
	"github.com/jayantaf631991/debt-dashboard/internal/ledger"
	"github.com/jayantaf631991/debt-dashboard/internal/notify"
	"github.com/jayantaf631991/debt-dashboard/internal/recorder"
)

// Scheduler writes a backup file at fixed times of day.
type Scheduler struct {
	cron      *cron.Cron
	ctrl      *ledger.Controller
	rec       recorder.Recorder
	sender    *notify.Sender // nil when SMTP is not configured
	log       *logrus.Logger
	namespace string
	backupDir string
}

// NewScheduler creates a backup scheduler.
func NewScheduler(ctrl *ledger.Controller, rec recorder.Recorder, sender *notify.Sender, log *logrus.Logger, namespace, backupDir string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		ctrl:      ctrl,
		rec:       rec,
		sender:    sender,
		log:       log,
		namespace: namespace,
		backupDir: backupDir,
	}
}

// RegisterAll registers one backup job per cron spec.
func (s *Scheduler) RegisterAll(specs []string) error {
	for _, spec := range specs {
		if _, err := s.cron.AddFunc(spec, func() { s.runBackup("scheduled") }); err != nil {
			return fmt.Errorf("register backup job %q: %w", spec, err)
		}
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("backup scheduler started")
}

// Stop stops the cron scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("backup scheduler stopped")
}

// RunNow triggers a manual backup immediately.
func (s *Scheduler) RunNow() {
	s.runBackup("manual")
}

func (s *Scheduler) runBackup(trigger string) {
	path, size, err := s.writeBackup()
	if err != nil {
		s.log.Errorf("backup failed: %v", err)
		return
	}
	s.log.Infof("backup written: %s (%d bytes)", path, size)

	if err := s.rec.RecordBackup(recorder.BackupEvent{
		Namespace: s.namespace,
		Path:      path,
		Trigger:   trigger,
		SizeBytes: size,
	}); err != nil {
		s.log.Warnf("audit record failed for backup %s: %v", path, err)
	}

	if s.sender != nil {
		if err := s.sender.SendBackup(s.namespace, path); err != nil {
			s.log.Warnf("backup notification failed: %v", err)
		}
	}
}

func (s *Scheduler) writeBackup() (string, int64, error) {
	if err := os.MkdirAll(s.backupDir, 0755); err != nil {
		return "", 0, fmt.Errorf("create backup dir: %w", err)
	}
	now := time.Now()
	backup := export.NewBackup(s.ctrl.State(), now)
	data, err := backup.Marshal()
	if err != nil {
		return "", 0, fmt.Errorf("marshal backup: %w", err)
	}
	name := fmt.Sprintf("%s-backup-%s.json", s.namespace, now.Format("20060102-150405"))
	path := filepath.Join(s.backupDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", 0, fmt.Errorf("write backup: %w", err)
	}
	return path, int64(len(data)), nil
}
