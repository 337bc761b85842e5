package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/avolkov/webauth/config"
)

type SMTPMailer struct {
	host         string
	port         int
	username     string
	password     string
	from         string
	resetURLBase string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:         cfg.SMTPHost,
		port:         cfg.SMTPPort,
		username:     cfg.SMTPUsername,
		password:     cfg.SMTPPassword,
		from:         cfg.MailFrom,
		resetURLBase: cfg.ResetURLBase,
	}
}

func (m *SMTPMailer) SendPasswordResetEmail(_ context.Context, email, token string) error {
	link := ResetLink(m.resetURLBase, token)

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + email,
		"Subject: Password reset",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"A password reset was requested for your account.",
		"Follow the link to choose a new password: " + link,
		"",
		"If you did not request this, ignore this message.",
	}, "\r\n")

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	if err := smtp.SendMail(addr, auth, m.from, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", m.host, err)
	}
	return nil
}

// ResetLink builds the emailed URL carrying the raw token as a path parameter.
func ResetLink(base, token string) string {
	return strings.TrimRight(base, "/") + "/password/reset/" + token
}
