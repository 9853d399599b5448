package messaging

import "github.com/zauwn/secret-santa/pkg/logging"

const (
	// ProviderDryRun previews messages on the log instead of sending.
	ProviderDryRun = "dryrun"
	// ProviderSNS sends live SMS through AWS SNS.
	ProviderSNS = "sns"
)

// SenderConfig selects and configures the outbound sender.
type SenderConfig struct {
	DryRun   bool
	SenderID string
}

// BuildSender instantiates a Sender for the run. It returns the sender, the
// provider that was selected, and a reason when no sender could be built.
// Dry-run mode never needs an SNS client.
func BuildSender(cfg SenderConfig, client snsAPI, logger *logging.Logger) (Sender, string, string) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.DryRun {
		return NewDryRunSender(logger), ProviderDryRun, ""
	}
	if client == nil {
		return nil, "", "SNS client not configured; provide AWS credentials or enable SANTA_DRY_RUN"
	}
	return NewSNSSender(client, cfg.SenderID, logger), ProviderSNS, ""
}
