package points

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/registry"
)

// Aggregator reads token balances across the registered brand mints.
type Aggregator struct {
	ledger   ledger.Client
	registry *registry.Registry
	logger   zerolog.Logger
}

// NewAggregator creates a new Aggregator.
func NewAggregator(client ledger.Client, mints *registry.Registry, logger zerolog.Logger) *Aggregator {
	return &Aggregator{ledger: client, registry: mints, logger: logger}
}

// GetTokenBalance returns the wallet's balance of mint. Any lookup failure
// yields 0.
func (aggregator *Aggregator) GetTokenBalance(ctx context.Context, mint string, wallet string) float64 {
	record := registry.MintRecord{Address: mint}
	if aggregator.registry != nil {
		if found, ok, err := aggregator.registry.FindByAddress(mint); err == nil && ok {
			record = found
		}
	}
	return aggregator.balanceOf(ctx, record, wallet)
}

// GetAllBalances returns the wallet's balance for every registry record in
// registry order. With hideZero, zero balances are left out.
func (aggregator *Aggregator) GetAllBalances(ctx context.Context, wallet string, hideZero bool) (*BalanceMap, error) {
	records, err := aggregator.registry.LoadAll()
	if err != nil {
		return nil, err
	}

	balances := NewBalanceMap()
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		balance := aggregator.balanceOf(ctx, record, wallet)
		if hideZero && balance == 0 {
			continue
		}
		balances.Set(record.Name, balance)
	}
	return balances, nil
}

func (aggregator *Aggregator) balanceOf(ctx context.Context, record registry.MintRecord, wallet string) float64 {
	amount, err := aggregator.ledger.TokenBalance(ctx, ledger.TokenBalanceParams{
		Mint:           record.Address,
		Wallet:         wallet,
		TokenProgramID: record.TokenProgramID,
	})
	if err != nil {
		aggregator.logger.Debug().Err(err).Str("mint", record.Address).Str("wallet", wallet).Msg("balance lookup failed, reporting 0")
		return 0
	}
	return amount.Float64()
}
