// Package notifier is the default EventSink: it writes every ledger event
// to the structured log. Delivery is fire-and-forget.
package notifier

import (
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"

	"lendpool/core"
)

type logSink struct{}

// New new log-backed event sink
func New() core.EventSink {
	return &logSink{}
}

func (s *logSink) Notify(ctx context.Context, event *core.Event) {
	logger.FromContext(ctx).WithFields(logrus.Fields{
		"event":    string(event.Type),
		"user_id":  event.UserID,
		"asset_id": event.AssetID,
		"amount":   event.Amount,
	}).Infoln("ledger event")
}
