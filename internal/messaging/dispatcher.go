package messaging

import (
	"context"
	"fmt"
	"sort"

	"github.com/zauwn/secret-santa/pkg/logging"
)

// Dispatcher delivers a fully composed message map. Delivery is best
// effort: a failing recipient never stops the remaining sends, and the
// run fails at the end with the aggregate count.
type Dispatcher struct {
	sender        Sender
	countryPrefix string
	logger        *logging.Logger
}

// NewDispatcher creates a dispatcher for the given sender.
func NewDispatcher(sender Sender, countryPrefix string, logger *logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{sender: sender, countryPrefix: countryPrefix, logger: logger}
}

// DispatchAll sends every message, in sorted key order so runs are
// reproducible, and returns an aggregate error when any send failed.
func (d *Dispatcher) DispatchAll(ctx context.Context, messages map[string]string) error {
	if d.sender == nil {
		return fmt.Errorf("messaging: no sender configured")
	}

	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	failed := 0
	for _, key := range keys {
		to := NormalizePhone(key, d.countryPrefix)
		if err := d.sender.SendSMS(ctx, to, messages[key]); err != nil {
			d.logger.Error("failed to send sms", "to", redact(to), "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("messaging: %d of %d messages failed", failed, len(messages))
	}
	d.logger.Info("all messages dispatched", "count", len(messages))
	return nil
}
