package messaging

import "context"

// Sender delivers one composed SMS to one recipient.
type Sender interface {
	SendSMS(ctx context.Context, to, body string) error
}
