package mailer

import (
	"context"

	"github.com/avolkov/webauth/internal/logging"
)

// LogMailer stands in for SMTP in development: it logs the reset link instead
// of sending it. Selected when no mail host is configured.
type LogMailer struct {
	log          logging.Logger
	resetURLBase string
}

func NewLogMailer(log logging.Logger, resetURLBase string) *LogMailer {
	return &LogMailer{log: log, resetURLBase: resetURLBase}
}

func (m *LogMailer) SendPasswordResetEmail(ctx context.Context, email, token string) error {
	m.log.Info(ctx, "password reset link (mail transport disabled)",
		"email", email, "link", ResetLink(m.resetURLBase, token))
	return nil
}
