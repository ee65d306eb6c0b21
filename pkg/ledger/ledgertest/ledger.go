// Package ledgertest provides an in-memory ledger.Client for tests and dry
// runs. It keeps mints, token balances and native balances in maps and can
// be told to fail airdrops, confirmations or balance lookups.
package ledgertest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/sammyshakes/solana-points-go/pkg/keystore"
	"github.com/sammyshakes/solana-points-go/pkg/ledger"
)

const NativeDecimals uint8 = 9

type mintState struct {
	info     ledger.MintInfo
	metadata ledger.Metadata
}

// Ledger is a concurrency-safe in-memory ledger.
type Ledger struct {
	mu sync.Mutex

	mints      map[string]*mintState
	balances   map[string]map[string]uint64
	native     map[string]uint64
	signatures map[string]struct{}
	sequence   int

	airdropErrors []error
	confirmErrors []error
	balanceErrors map[string]error
	treasury      string

	AirdropCalls int
	BalanceCalls int
}

var _ ledger.Client = (*Ledger)(nil)

// New creates a new Ledger.
func New() *Ledger {
	return &Ledger{
		mints:         map[string]*mintState{},
		balances:      map[string]map[string]uint64{},
		native:        map[string]uint64{},
		signatures:    map[string]struct{}{},
		balanceErrors: map[string]error{},
	}
}

// SetTreasury makes burns without a holder debit address instead of the
// authority, the way a treasury-based ledger does.
func (fake *Ledger) SetTreasury(address string) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.treasury = address
}

// FailAirdrops queues errors returned by the next airdrop requests, one per
// call. Once the queue is drained airdrops succeed.
func (fake *Ledger) FailAirdrops(errs ...error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.airdropErrors = append(fake.airdropErrors, errs...)
}

// FailConfirmations queues errors returned by the next confirmations.
func (fake *Ledger) FailConfirmations(errs ...error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.confirmErrors = append(fake.confirmErrors, errs...)
}

// FailBalance makes every TokenBalance call for mint return err.
func (fake *Ledger) FailBalance(mint string, err error) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.balanceErrors[mint] = err
}

// AddMint registers a mint without a transaction.
func (fake *Ledger) AddMint(address string, decimals uint8, metadata ledger.Metadata) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.mints[address] = &mintState{
		info: ledger.MintInfo{
			Address:  address,
			Decimals: decimals,
		},
		metadata: metadata,
	}
}

// SetBalance sets a raw token balance, creating the token account.
func (fake *Ledger) SetBalance(mint string, wallet string, amount uint64) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.holders(mint)[wallet] = amount
}

// SetNativeBalance sets a raw native balance.
func (fake *Ledger) SetNativeBalance(address string, amount uint64) {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.native[address] = amount
}

func (fake *Ledger) Name() string {
	return "memory"
}

func (fake *Ledger) AddressOf(keypair keystore.Keypair) (string, error) {
	if keypair.IsZero() {
		return "", fmt.Errorf("keypair is required")
	}
	return keypair.Address(), nil
}

func (fake *Ledger) ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ledger.NewInvalidAddressError(address, "address is required")
	}
	return nil
}

func (fake *Ledger) NativeBalance(ctx context.Context, address string) (ledger.TokenAmount, error) {
	if err := ctx.Err(); err != nil {
		return ledger.TokenAmount{}, err
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return ledger.TokenAmount{Amount: fake.native[address], Decimals: NativeDecimals}, nil
}

func (fake *Ledger) RequestAirdrop(ctx context.Context, address string, amount uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()

	fake.AirdropCalls++
	if len(fake.airdropErrors) > 0 {
		err := fake.airdropErrors[0]
		fake.airdropErrors = fake.airdropErrors[1:]
		return "", err
	}
	fake.native[address] += amount
	return fake.nextSignature(), nil
}

func (fake *Ledger) ConfirmTransaction(ctx context.Context, signature string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()

	if len(fake.confirmErrors) > 0 {
		err := fake.confirmErrors[0]
		fake.confirmErrors = fake.confirmErrors[1:]
		return err
	}
	if _, exists := fake.signatures[signature]; !exists {
		return ledger.NewQueryError("confirm transaction", signature, ledger.ErrAccountNotFound)
	}
	return nil
}

func (fake *Ledger) CreateMint(ctx context.Context, authority keystore.Keypair, params ledger.CreateMintParams) (ledger.CreateMintResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.CreateMintResult{}, err
	}
	if authority.IsZero() {
		return ledger.CreateMintResult{}, fmt.Errorf("authority is required")
	}
	decimals := ledger.DefaultDecimals
	if params.Decimals != nil {
		decimals = *params.Decimals
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()

	fake.sequence++
	address := fmt.Sprintf("mint-%d", fake.sequence)
	fake.mints[address] = &mintState{
		info: ledger.MintInfo{
			Address:        address,
			Decimals:       decimals,
			MintAuthority:  authority.Address(),
			TokenProgramID: params.TokenProgramID,
		},
		metadata: ledger.Metadata{Name: params.Name, Symbol: params.Symbol, URI: params.URI},
	}
	return ledger.CreateMintResult{
		Address:        address,
		TokenProgramID: params.TokenProgramID,
		Decimals:       decimals,
		Signature:      fake.nextSignature(),
	}, nil
}

func (fake *Ledger) MintTo(ctx context.Context, authority keystore.Keypair, params ledger.MintToParams) (ledger.TxResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.TxResult{}, err
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()

	state, err := fake.mint(params.Mint)
	if err != nil {
		return ledger.TxResult{}, err
	}
	if state.info.MintAuthority != "" && state.info.MintAuthority != authority.Address() {
		return ledger.TxResult{}, fmt.Errorf("%s is not the mint authority of %s", authority.Address(), params.Mint)
	}
	fake.holders(params.Mint)[params.Recipient] += params.Amount
	state.info.Supply += params.Amount
	return ledger.TxResult{Signature: fake.nextSignature()}, nil
}

func (fake *Ledger) Burn(ctx context.Context, authority keystore.Keypair, params ledger.BurnParams) (ledger.TxResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.TxResult{}, err
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()

	source := authority.Address()
	if !params.Holder.IsZero() {
		source = params.Holder.Address()
	} else if fake.treasury != "" {
		source = fake.treasury
	}

	state, err := fake.mint(params.Mint)
	if err != nil {
		return ledger.TxResult{}, err
	}
	if err := fake.debit(params.Mint, source, params.Amount); err != nil {
		return ledger.TxResult{}, err
	}
	state.info.Supply -= params.Amount
	return ledger.TxResult{Signature: fake.nextSignature(), Account: source}, nil
}

func (fake *Ledger) Transfer(ctx context.Context, payer keystore.Keypair, params ledger.TransferParams) (ledger.TxResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.TxResult{}, err
	}
	if params.Owner.IsZero() {
		return ledger.TxResult{}, fmt.Errorf("owner is required")
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()

	if _, err := fake.mint(params.Mint); err != nil {
		return ledger.TxResult{}, err
	}
	if err := fake.debit(params.Mint, params.Owner.Address(), params.Amount); err != nil {
		return ledger.TxResult{}, err
	}
	fake.holders(params.Mint)[params.Recipient] += params.Amount
	return ledger.TxResult{Signature: fake.nextSignature()}, nil
}

func (fake *Ledger) TokenBalance(ctx context.Context, params ledger.TokenBalanceParams) (ledger.TokenAmount, error) {
	if err := ctx.Err(); err != nil {
		return ledger.TokenAmount{}, err
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()

	fake.BalanceCalls++
	if err, exists := fake.balanceErrors[params.Mint]; exists {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, err)
	}
	state, exists := fake.mints[params.Mint]
	if !exists {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Mint, ledger.ErrAccountNotFound)
	}
	amount, exists := fake.balances[params.Mint][params.Wallet]
	if !exists {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, ledger.ErrAccountNotFound)
	}
	return ledger.TokenAmount{Amount: amount, Decimals: state.info.Decimals}, nil
}

func (fake *Ledger) MintInfo(ctx context.Context, mint string) (ledger.MintInfo, error) {
	if err := ctx.Err(); err != nil {
		return ledger.MintInfo{}, err
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()

	state, err := fake.mint(mint)
	if err != nil {
		return ledger.MintInfo{}, err
	}
	return state.info, nil
}

func (fake *Ledger) TokenMetadata(ctx context.Context, mint string) (ledger.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return ledger.Metadata{}, err
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()

	state, err := fake.mint(mint)
	if err != nil {
		return ledger.Metadata{}, err
	}
	return state.metadata, nil
}

func (fake *Ledger) mint(address string) (*mintState, error) {
	state, exists := fake.mints[address]
	if !exists {
		return nil, ledger.NewQueryError("mint info", address, ledger.ErrAccountNotFound)
	}
	return state, nil
}

func (fake *Ledger) holders(mint string) map[string]uint64 {
	holders, exists := fake.balances[mint]
	if !exists {
		holders = map[string]uint64{}
		fake.balances[mint] = holders
	}
	return holders
}

func (fake *Ledger) debit(mint string, wallet string, amount uint64) error {
	holders := fake.holders(mint)
	balance, exists := holders[wallet]
	if !exists {
		return ledger.NewQueryError("token balance", wallet, ledger.ErrAccountNotFound)
	}
	if balance < amount {
		return fmt.Errorf("insufficient funds: %s holds %d, needs %d", wallet, balance, amount)
	}
	holders[wallet] = balance - amount
	return nil
}

func (fake *Ledger) nextSignature() string {
	fake.sequence++
	signature := fmt.Sprintf("sig-%d", fake.sequence)
	fake.signatures[signature] = struct{}{}
	return signature
}
