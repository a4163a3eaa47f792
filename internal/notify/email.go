// Package notify sends backup notification emails. Entirely optional: when
// SMTP is not configured the sender is nil and nothing is sent.
package notify

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// SMTPConfig holds the outgoing mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Sender sends backup notifications via SMTP.
type Sender struct {
	cfg SMTPConfig
	log *logrus.Logger
}

// NewSender creates an email sender.
func NewSender(cfg SMTPConfig, log *logrus.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

// SendBackup mails the backup file as an attachment.
func (s *Sender) SendBackup(namespace, path string) error {
	e := email.NewEmail()
	e.From = s.cfg.From
	e.To = []string{s.cfg.To}
	e.Subject = fmt.Sprintf("Debt dashboard backup: %s (%s)", namespace, time.Now().Format("2006-01-02 15:04"))
	e.Text = []byte(fmt.Sprintf("Automatic backup of dashboard %q written to %s.", namespace, path))
	if _, err := e.AttachFile(path); err != nil {
		return fmt.Errorf("attach backup: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("send backup email: %w", err)
	}
	s.log.Infof("backup email sent to %s", s.cfg.To)
	return nil
}
