package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/medichq/medic-api/internal/model"
)

// Config holds SMTP settings. An empty host disables sending.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Service sends operational alert mail.
type Service interface {
	SendEmergencyAlert(e *model.Emergency) error
}

// NewService returns an SMTP sender, or a no-op sender when no host is
// configured.
func NewService(cfg Config) Service {
	if cfg.Host == "" {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		to:     cfg.To,
	}
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func (s *smtpService) SendEmergencyAlert(e *model.Emergency) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", fmt.Sprintf("Emergency dispatched: %s", e.Type))
	m.SetBody("text/plain", fmt.Sprintf(
		"Emergency %s has been dispatched.\n\nType: %s\nLocation: %s\nContact: %s\nDescription: %s\n",
		e.ID, e.Type, e.Location, e.Phone, e.Description,
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send emergency alert: %w", err)
	}
	return nil
}

type noopService struct{}

func (n *noopService) SendEmergencyAlert(e *model.Emergency) error { return nil }
