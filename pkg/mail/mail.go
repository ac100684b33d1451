// Package mail delivers outgoing email through an ordered list of transports.
package mail

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/pkg/apperr"
	"github.com/akunal1/smart-resume-backend/pkg/logger"
	"github.com/akunal1/smart-resume-backend/pkg/metrics"
)

type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a transport-independent email. The sender address is chosen
// by each transport.
type Message struct {
	To          []string
	ReplyTo     string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
	// Category tags the message for providers that support it.
	Category string
}

// Receipt identifies a delivered message.
type Receipt struct {
	MessageID string
	Transport string
}

// Sender is the port used by the scheduling use cases.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Transport is one delivery mechanism.
type Transport interface {
	Name() string
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Chain tries transports in order; the first success wins.
type Chain struct {
	transports []Transport
	log        *zap.Logger
}

func NewChain(log *zap.Logger, transports ...Transport) *Chain {
	return &Chain{transports: transports, log: logger.Component(log, "mail")}
}

// Transports lists the configured transport names in order.
func (c *Chain) Transports() []string {
	out := make([]string, len(c.transports))
	for i, t := range c.transports {
		out[i] = t.Name()
	}
	return out
}

func (c *Chain) Send(ctx context.Context, msg Message) (Receipt, error) {
	if len(c.transports) == 0 {
		return Receipt{}, apperr.Configuration("email transport")
	}
	if len(msg.To) == 0 {
		return Receipt{}, apperr.Validation("email has no recipients", "")
	}

	var errs []error
	for _, t := range c.transports {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		r, err := t.Send(ctx, msg)
		if err == nil {
			metrics.MailDeliveries.WithLabelValues(t.Name(), "sent").Inc()
			if r.Transport == "" {
				r.Transport = t.Name()
			}
			c.log.Info("email sent",
				zap.String("transport", r.Transport),
				zap.String("message_id", r.MessageID),
				zap.Int("recipients", len(msg.To)),
			)
			return r, nil
		}
		metrics.MailDeliveries.WithLabelValues(t.Name(), "failed").Inc()
		c.log.Warn("email transport failed, trying next", zap.String("transport", t.Name()), zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", t.Name(), err))
	}
	return Receipt{}, apperr.MailSend(errors.Join(errs...))
}
