package ledger

import (
	"math"

	"github.com/sammyshakes/solana-points-go/pkg/keystore"
)

// DefaultDecimals is used for new mints when no precision is requested.
const DefaultDecimals uint8 = 9

// TokenAmount is a raw amount together with its mint precision.
type TokenAmount struct {
	Amount   uint64
	Decimals uint8
}

// Float64 returns the amount divided by 10^Decimals.
func (amount TokenAmount) Float64() float64 {
	return float64(amount.Amount) / math.Pow10(int(amount.Decimals))
}

// String returns the exact decimal rendering.
func (amount TokenAmount) String() string {
	return FormatAmount(amount.Amount, amount.Decimals)
}

// IsZero reports whether the raw amount is zero.
func (amount TokenAmount) IsZero() bool {
	return amount.Amount == 0
}

type CreateMintParams struct {
	Name           string
	Symbol         string
	URI            string
	Decimals       *uint8
	TokenProgramID string
}

type CreateMintResult struct {
	Address        string
	TokenProgramID string
	Decimals       uint8
	Signature      string
}

type MintToParams struct {
	Mint           string
	Recipient      string
	Amount         uint64
	TokenProgramID string
}

// BurnParams burns from Holder's token account. A zero Holder burns from
// the authority's own account.
type BurnParams struct {
	Mint           string
	Holder         keystore.Keypair
	Amount         uint64
	TokenProgramID string
}

type TransferParams struct {
	Mint           string
	Owner          keystore.Keypair
	Recipient      string
	Amount         uint64
	TokenProgramID string
}

type TokenBalanceParams struct {
	Mint           string
	Wallet         string
	TokenProgramID string
}

type TxResult struct {
	Signature string
	// Account is the account a burn debited. Empty for other operations.
	Account string
}

type MintInfo struct {
	Address        string
	Decimals       uint8
	Supply         uint64
	MintAuthority  string
	TokenProgramID string
}

type Metadata struct {
	Name   string
	Symbol string
	URI    string
}
