package messaging

import (
	"context"

	"github.com/zauwn/secret-santa/pkg/logging"
)

// DryRunSender previews messages instead of sending them.
type DryRunSender struct {
	logger *logging.Logger
}

// NewDryRunSender creates a preview-only sender.
func NewDryRunSender(logger *logging.Logger) *DryRunSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &DryRunSender{logger: logger}
}

var _ Sender = (*DryRunSender)(nil)

// SendSMS logs but doesn't send.
func (s *DryRunSender) SendSMS(ctx context.Context, to, body string) error {
	s.logger.Info("dry run: would send sms", "to", to, "body", body)
	return nil
}
