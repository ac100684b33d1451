package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/pkg/config"
	"github.com/akunal1/smart-resume-backend/pkg/logger"
)

// NewChainFromConfig enables every transport whose credentials are complete,
// in the order SendGrid, SES, SMTP, Gmail OAuth2.
func NewChainFromConfig(ctx context.Context, cfg config.MailConfig, fromName string, log *zap.Logger) *Chain {
	l := logger.Component(log, "mail")
	var ts []Transport
	if cfg.SendGridAPIKey != "" && cfg.SendGridFromEmail != "" {
		ts = append(ts, NewSendGridTransport(cfg.SendGridAPIKey, cfg.SendGridFromEmail, fromName))
	}
	if cfg.AWSRegion != "" && cfg.SESFromEmail != "" {
		t, err := NewSESTransport(ctx, cfg.AWSRegion, cfg.SESFromEmail, fromName)
		if err != nil {
			l.Warn("ses transport disabled", zap.Error(err))
		} else {
			ts = append(ts, t)
		}
	}
	if cfg.SMTPUser != "" && cfg.SMTPPass != "" {
		ts = append(ts, NewSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, fromName))
	}
	if cfg.GmailSender != "" && cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" && cfg.GoogleRefreshToken != "" {
		ts = append(ts, NewGmailOAuth2Transport(cfg.GmailSender, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRefreshToken, fromName))
	}
	return NewChain(log, ts...)
}
