package points

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/sammyshakes/solana-points-go/pkg/ledger"
)

const (
	DefaultAirdropAmount   uint64 = 2_000_000_000
	DefaultAirdropAttempts        = 5
)

type FunderConfig struct {
	Amount   uint64
	Attempts int
	Logger   zerolog.Logger
}

// Funder requests faucet credits and retries failed attempts without delay.
type Funder struct {
	ledger   ledger.Client
	amount   uint64
	attempts int
	logger   zerolog.Logger
}

// NewFunder creates a new Funder.
func NewFunder(client ledger.Client, config FunderConfig) (*Funder, error) {
	if client == nil {
		return nil, fmt.Errorf("ledger client is required")
	}
	amount := config.Amount
	if amount == 0 {
		amount = DefaultAirdropAmount
	}
	attempts := config.Attempts
	if attempts == 0 {
		attempts = DefaultAirdropAttempts
	}
	if attempts < 0 {
		return nil, fmt.Errorf("attempts must be positive, got %d", attempts)
	}

	return &Funder{
		ledger:   client,
		amount:   amount,
		attempts: attempts,
		logger:   config.Logger,
	}, nil
}

// Amount returns the raw amount requested per attempt.
func (funder *Funder) Amount() uint64 {
	return funder.amount
}

// Fund requests an airdrop to address and waits for confirmation. Each
// attempt covers both steps. When every attempt fails the returned
// FundingExhaustedError wraps the last error.
func (funder *Funder) Fund(ctx context.Context, address string) (FundResult, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return FundResult{}, fmt.Errorf("address is required")
	}
	if err := ctx.Err(); err != nil {
		return FundResult{}, err
	}

	attempt := 0
	signature := ""
	operation := func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		attempt++
		requested, err := funder.ledger.RequestAirdrop(ctx, trimmed, funder.amount)
		if err != nil {
			if errors.Is(err, ledger.ErrUnsupported) {
				return backoff.Permanent(err)
			}
			return fmt.Errorf("airdrop request failed: %w", err)
		}
		if err := funder.ledger.ConfirmTransaction(ctx, requested); err != nil {
			return fmt.Errorf("airdrop confirmation failed: %w", err)
		}
		signature = requested
		return nil
	}
	notify := func(err error, _ time.Duration) {
		funder.logger.Warn().Err(err).Int("attempt", attempt).Int("attempts", funder.attempts).Msg("airdrop attempt failed")
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(funder.attempts-1)),
		ctx,
	)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if errors.Is(err, ledger.ErrUnsupported) {
			return FundResult{}, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return FundResult{}, ctxErr
		}
		return FundResult{}, NewFundingExhaustedError(trimmed, attempt, err)
	}

	return FundResult{
		Address:   trimmed,
		Amount:    ledger.TokenAmount{Amount: funder.amount, Decimals: ledger.DefaultDecimals},
		Signature: signature,
		Attempts:  attempt,
	}, nil
}
