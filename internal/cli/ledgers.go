package cli

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/ledger/hts"
	"github.com/sammyshakes/solana-points-go/pkg/ledger/solana"
	"github.com/sammyshakes/solana-points-go/pkg/shared"
)

// LedgerFactory builds the ledger driver selected by the configuration.
type LedgerFactory func(config shared.Config, logger zerolog.Logger) (ledger.Client, error)

// NewLedger is the default LedgerFactory.
func NewLedger(config shared.Config, logger zerolog.Logger) (ledger.Client, error) {
	switch config.Ledger {
	case shared.LedgerHedera:
		operator, err := shared.OperatorConfigFromEnv()
		if err != nil {
			return nil, fmt.Errorf("hedera operator: %w", err)
		}
		return hts.NewClient(hts.Config{
			Network:            config.HederaNetwork,
			OperatorAccountID:  operator.AccountID,
			OperatorPrivateKey: operator.PrivateKey,
			MirrorBaseURL:      config.HederaMirrorURL,
			MirrorAPIKey:       config.HederaMirrorAPIKey,
			Logger:             logger.With().Str("ledger", hts.LedgerName).Logger(),
		})
	case shared.LedgerSolana, "":
		return solana.NewClient(solana.Config{
			Endpoint:       config.SolanaNetwork,
			ConfirmTimeout: config.ConfirmTimeout,
			Logger:         logger.With().Str("ledger", solana.LedgerName).Logger(),
		})
	default:
		return nil, fmt.Errorf("unsupported ledger %q", config.Ledger)
	}
}

func nativeUnit(ledgerName string) string {
	if ledgerName == hts.LedgerName {
		return "HBAR"
	}
	return "SOL"
}
