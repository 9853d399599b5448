package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"github.com/zauwn/secret-santa/pkg/logging"
)

// snsAPI is the minimal AWS SNS interface required by SNSSender.
// *sns.Client from aws-sdk-go-v2 satisfies this interface.
type snsAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSender publishes SMS messages through AWS SNS.
type SNSSender struct {
	api      snsAPI
	senderID string
	logger   *logging.Logger
}

// NewSNSSender builds a sender. senderID is optional; IDs longer than 11
// characters may be truncated by carriers, so those only draw a warning.
func NewSNSSender(api snsAPI, senderID string, logger *logging.Logger) *SNSSender {
	if logger == nil {
		logger = logging.Default()
	}
	if len(senderID) > 11 {
		logger.Warn("sns sender id longer than 11 chars, carriers may truncate it", "sender_id", senderID)
	}
	return &SNSSender{api: api, senderID: senderID, logger: logger}
}

var _ Sender = (*SNSSender)(nil)

// SendSMS publishes a single SMS.
func (s *SNSSender) SendSMS(ctx context.Context, to, body string) error {
	if s.api == nil {
		return errors.New("messaging: sns client not initialized")
	}
	if to == "" {
		return errors.New("messaging: to required")
	}
	if strings.TrimSpace(body) == "" {
		return errors.New("messaging: body required")
	}

	in := &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(body),
	}
	if s.senderID != "" {
		in.MessageAttributes = map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(s.senderID),
			},
		}
	}

	out, err := s.api.Publish(ctx, in)
	if err != nil {
		return fmt.Errorf("messaging: sns publish to %s: %w", redact(to), err)
	}
	s.logger.Info("sns sms sent", "to", redact(to), "message_id", aws.ToString(out.MessageId))
	return nil
}
