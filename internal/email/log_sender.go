package email

import (
	"context"

	"priyasi-storefront/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogSender logs messages instead of delivering them. It stands in for Resend
// when no API key is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) (string, error) {
	id := "log-" + uuid.NewString()
	logger.FromCtx(ctx).Info("email not delivered, no provider configured",
		zap.String("id", id),
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return id, nil
}
