package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/joho/godotenv"

	appconfig "github.com/zauwn/secret-santa/internal/config"
	"github.com/zauwn/secret-santa/internal/draw"
	"github.com/zauwn/secret-santa/internal/messaging"
	"github.com/zauwn/secret-santa/internal/roster"
	"github.com/zauwn/secret-santa/pkg/logging"
)

// Distinct exit codes so automation can tell a bad roster from bad luck
// from bad delivery credentials.
const (
	exitRosterFailed     = 1
	exitAssignmentFailed = 2
	exitDeliveryFailed   = 3
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting secret santa run",
		"roster", cfg.RosterFile,
		"year", cfg.Year,
		"budget", cfg.Budget+cfg.Coin,
		"dry_run", cfg.DryRun,
	)

	participants, err := roster.LoadFile(cfg.RosterFile, logger)
	if err != nil {
		logger.Error("failed to load roster", "error", err)
		os.Exit(exitRosterFailed)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	assignment, err := draw.Generate(participants, cfg.MaxAttempts, rng)
	if err != nil {
		var infeasible *draw.InfeasibleError
		if errors.As(err, &infeasible) {
			logger.Error("no valid assignment for this roster",
				"attempts", infeasible.Attempts,
				"hint", "group sizes may be too skewed",
			)
		} else {
			logger.Error("assignment failed", "error", err)
		}
		os.Exit(exitAssignmentFailed)
	}
	logger.Info("assignment computed", "participants", len(participants), "seed", seed)

	messages, err := messaging.Compose(assignment, messaging.Params{
		Budget: cfg.Budget,
		Coin:   cfg.Coin,
		Year:   cfg.Year,
	}, logger)
	if err != nil {
		// Compose only fails on bad roster data (a santa without a phone)
		// or a broken announcement template; both mean the run input needs
		// fixing, so they share the roster exit code.
		logger.Error("failed to compose messages", "error", err)
		os.Exit(exitRosterFailed)
	}

	ctx := context.Background()

	var client *sns.Client
	if !cfg.DryRun {
		awsCfg, err := appconfig.LoadAWS(ctx, cfg)
		if err != nil {
			logger.Error("failed to load AWS config", "error", err)
			os.Exit(exitDeliveryFailed)
		}
		client = sns.NewFromConfig(awsCfg)
	}

	sender, provider, reason := messaging.BuildSender(messaging.SenderConfig{
		DryRun:   cfg.DryRun,
		SenderID: cfg.SNSSenderID,
	}, client, logger)
	if sender == nil {
		logger.Error("no sms sender available", "reason", reason)
		os.Exit(exitDeliveryFailed)
	}
	logger.Info("sms sender selected", "provider", provider)

	dispatcher := messaging.NewDispatcher(sender, cfg.CountryPrefix, logger)
	if err := dispatcher.DispatchAll(ctx, messages); err != nil {
		logger.Error("delivery failed", "error", err)
		os.Exit(exitDeliveryFailed)
	}

	logger.Info("secret santa run complete", "messages", len(messages))
}
