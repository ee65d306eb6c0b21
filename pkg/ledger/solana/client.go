package solana

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/metaplex/token_metadata"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
	"github.com/rs/zerolog"

	"github.com/sammyshakes/solana-points-go/pkg/keystore"
	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/registry"
	"github.com/sammyshakes/solana-points-go/pkg/shared"
)

const (
	LedgerName = "solana"

	// LamportDecimals is the precision of native SOL balances.
	LamportDecimals uint8 = 9

	defaultConfirmTimeout = 60 * time.Second
	defaultPollInterval   = 500 * time.Millisecond
)

type Config struct {
	Endpoint       string
	ConfirmTimeout time.Duration
	PollInterval   time.Duration
	Logger         zerolog.Logger
}

type Client struct {
	rpc            rpcAPI
	endpoint       string
	confirmTimeout time.Duration
	pollInterval   time.Duration
	logger         zerolog.Logger
}

var _ ledger.Client = (*Client)(nil)

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	endpoint, err := shared.ResolveSolanaEndpoint(config.Endpoint)
	if err != nil {
		return nil, err
	}
	return newClientWithRPC(newSDKRPC(endpoint), endpoint, config), nil
}

func newClientWithRPC(api rpcAPI, endpoint string, config Config) *Client {
	confirmTimeout := config.ConfirmTimeout
	if confirmTimeout <= 0 {
		confirmTimeout = defaultConfirmTimeout
	}
	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Client{
		rpc:            api,
		endpoint:       endpoint,
		confirmTimeout: confirmTimeout,
		pollInterval:   pollInterval,
		logger:         config.Logger,
	}
}

// Endpoint returns the requested value.
func (client *Client) Endpoint() string {
	return client.endpoint
}

func (client *Client) Name() string {
	return LedgerName
}

func (client *Client) AddressOf(keypair keystore.Keypair) (string, error) {
	if keypair.IsZero() {
		return "", fmt.Errorf("keypair is required")
	}
	return keypair.Address(), nil
}

// ValidateAddress checks that address is a base58 encoded 32-byte key.
func (client *Client) ValidateAddress(address string) error {
	_, err := parsePublicKey(address)
	return err
}

func (client *Client) NativeBalance(ctx context.Context, address string) (ledger.TokenAmount, error) {
	if _, err := parsePublicKey(address); err != nil {
		return ledger.TokenAmount{}, err
	}
	lamports, err := client.rpc.GetBalance(ctx, address)
	if err != nil {
		return ledger.TokenAmount{}, ledger.NewQueryError("native balance", address, err)
	}
	return ledger.TokenAmount{Amount: lamports, Decimals: LamportDecimals}, nil
}

func (client *Client) RequestAirdrop(ctx context.Context, address string, amount uint64) (string, error) {
	if _, err := parsePublicKey(address); err != nil {
		return "", err
	}
	if amount == 0 {
		return "", fmt.Errorf("airdrop amount must be greater than zero")
	}
	signature, err := client.rpc.RequestAirdrop(ctx, address, amount)
	if err != nil {
		return "", ledger.NewQueryError("airdrop", address, err)
	}
	client.logger.Debug().Str("address", address).Uint64("lamports", amount).Str("signature", signature).Msg("airdrop requested")
	return signature, nil
}

// ConfirmTransaction polls the signature status until the transaction is
// confirmed, fails, or the confirm timeout elapses.
func (client *Client) ConfirmTransaction(ctx context.Context, signature string) error {
	if strings.TrimSpace(signature) == "" {
		return fmt.Errorf("signature is required")
	}

	confirmCtx, cancel := context.WithTimeout(ctx, client.confirmTimeout)
	defer cancel()

	for {
		status, err := client.rpc.GetSignatureStatus(confirmCtx, signature)
		if err != nil {
			if confirmCtx.Err() != nil {
				return fmt.Errorf("timed out confirming %s: %w", signature, confirmCtx.Err())
			}
			return ledger.NewQueryError("signature status", signature, err)
		}
		if status != nil {
			if status.Err != nil {
				return ledger.NewTransactionError(signature, fmt.Sprintf("%v", status.Err))
			}
			if status.Confirmed {
				return nil
			}
		}

		select {
		case <-confirmCtx.Done():
			return fmt.Errorf("timed out confirming %s: %w", signature, confirmCtx.Err())
		case <-time.After(client.pollInterval):
		}
	}
}

func (client *Client) CreateMint(
	ctx context.Context,
	authority keystore.Keypair,
	params ledger.CreateMintParams,
) (ledger.CreateMintResult, error) {
	if authority.IsZero() {
		return ledger.CreateMintResult{}, fmt.Errorf("mint authority is required")
	}
	program, err := resolveTokenProgram(params.TokenProgramID)
	if err != nil {
		return ledger.CreateMintResult{}, err
	}
	decimals := ledger.DefaultDecimals
	if params.Decimals != nil {
		decimals = *params.Decimals
	}

	rent, err := client.rpc.GetMinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return ledger.CreateMintResult{}, ledger.NewQueryError("rent exemption", "", err)
	}

	payer := authority.Account()
	mint := types.NewAccount()
	instructions, err := createMintInstructions(createMintInstructionsParams{
		Payer:    payer.PublicKey,
		Mint:     mint.PublicKey,
		Program:  program,
		Rent:     rent,
		Decimals: decimals,
		Name:     params.Name,
		Symbol:   params.Symbol,
		URI:      params.URI,
		WithMeta: program == tokenProgram && params.Name != "" && params.Symbol != "",
	})
	if err != nil {
		return ledger.CreateMintResult{}, err
	}

	signature, err := client.submit(ctx, payer, instructions, mint)
	if err != nil {
		return ledger.CreateMintResult{}, err
	}

	return ledger.CreateMintResult{
		Address:        mint.PublicKey.ToBase58(),
		TokenProgramID: program.ToBase58(),
		Decimals:       decimals,
		Signature:      signature,
	}, nil
}

func (client *Client) MintTo(
	ctx context.Context,
	authority keystore.Keypair,
	params ledger.MintToParams,
) (ledger.TxResult, error) {
	if authority.IsZero() {
		return ledger.TxResult{}, fmt.Errorf("mint authority is required")
	}
	mint, recipient, program, err := parseTokenTarget(params.Mint, params.Recipient, params.TokenProgramID)
	if err != nil {
		return ledger.TxResult{}, err
	}

	payer := authority.Account()
	instructions, ata, err := client.ensureTokenAccount(ctx, payer.PublicKey, recipient, mint, program)
	if err != nil {
		return ledger.TxResult{}, err
	}
	instructions = append(instructions, onProgram(token.MintTo(token.MintToParam{
		Mint:   mint,
		To:     ata,
		Auth:   payer.PublicKey,
		Amount: params.Amount,
	}), program))

	signature, err := client.submit(ctx, payer, instructions)
	if err != nil {
		return ledger.TxResult{}, err
	}
	return ledger.TxResult{Signature: signature}, nil
}

func (client *Client) Burn(
	ctx context.Context,
	authority keystore.Keypair,
	params ledger.BurnParams,
) (ledger.TxResult, error) {
	if authority.IsZero() {
		return ledger.TxResult{}, fmt.Errorf("fee payer is required")
	}
	holder := authority
	if !params.Holder.IsZero() {
		holder = params.Holder
	}
	mint, owner, program, err := parseTokenTarget(params.Mint, holder.Address(), params.TokenProgramID)
	if err != nil {
		return ledger.TxResult{}, err
	}

	ata, err := client.requireTokenAccount(ctx, owner, mint, program)
	if err != nil {
		return ledger.TxResult{}, err
	}

	payer := authority.Account()
	instructions := []types.Instruction{
		onProgram(token.Burn(token.BurnParam{
			Account: ata,
			Mint:    mint,
			Auth:    owner,
			Amount:  params.Amount,
		}), program),
	}

	signature, err := client.submit(ctx, payer, instructions, holder.Account())
	if err != nil {
		return ledger.TxResult{}, err
	}
	return ledger.TxResult{Signature: signature, Account: owner.ToBase58()}, nil
}

func (client *Client) Transfer(
	ctx context.Context,
	payer keystore.Keypair,
	params ledger.TransferParams,
) (ledger.TxResult, error) {
	if payer.IsZero() {
		return ledger.TxResult{}, fmt.Errorf("fee payer is required")
	}
	if params.Owner.IsZero() {
		return ledger.TxResult{}, fmt.Errorf("token owner is required")
	}
	mint, recipient, program, err := parseTokenTarget(params.Mint, params.Recipient, params.TokenProgramID)
	if err != nil {
		return ledger.TxResult{}, err
	}
	owner := params.Owner.Account()

	source, err := client.requireTokenAccount(ctx, owner.PublicKey, mint, program)
	if err != nil {
		return ledger.TxResult{}, err
	}

	feePayer := payer.Account()
	instructions, destination, err := client.ensureTokenAccount(ctx, feePayer.PublicKey, recipient, mint, program)
	if err != nil {
		return ledger.TxResult{}, err
	}
	instructions = append(instructions, onProgram(token.Transfer(token.TransferParam{
		From:   source,
		To:     destination,
		Auth:   owner.PublicKey,
		Amount: params.Amount,
	}), program))

	signature, err := client.submit(ctx, feePayer, instructions, owner)
	if err != nil {
		return ledger.TxResult{}, err
	}
	return ledger.TxResult{Signature: signature}, nil
}

// TokenBalance returns the wallet's balance in its associated token account.
// A missing token account yields ledger.ErrAccountNotFound.
func (client *Client) TokenBalance(ctx context.Context, params ledger.TokenBalanceParams) (ledger.TokenAmount, error) {
	mint, wallet, program, err := parseTokenTarget(params.Mint, params.Wallet, params.TokenProgramID)
	if err != nil {
		return ledger.TokenAmount{}, err
	}
	ata, err := findAssociatedTokenAddress(wallet, mint, program)
	if err != nil {
		return ledger.TokenAmount{}, err
	}

	info, found, err := client.rpc.GetAccountInfo(ctx, ata.ToBase58())
	if err != nil {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, err)
	}
	if !found {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, ledger.ErrAccountNotFound)
	}
	account, err := decodeTokenAccount(info.Data)
	if err != nil {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, err)
	}

	mintInfo, err := client.MintInfo(ctx, params.Mint)
	if err != nil {
		return ledger.TokenAmount{}, err
	}
	return ledger.TokenAmount{Amount: account.Amount, Decimals: mintInfo.Decimals}, nil
}

func (client *Client) MintInfo(ctx context.Context, mintAddress string) (ledger.MintInfo, error) {
	if _, err := parsePublicKey(mintAddress); err != nil {
		return ledger.MintInfo{}, err
	}
	info, found, err := client.rpc.GetAccountInfo(ctx, mintAddress)
	if err != nil {
		return ledger.MintInfo{}, ledger.NewQueryError("mint info", mintAddress, err)
	}
	if !found {
		return ledger.MintInfo{}, ledger.NewQueryError("mint info", mintAddress, ledger.ErrAccountNotFound)
	}
	if info.Owner != registry.TokenProgramID && info.Owner != registry.Token2022ProgramID {
		return ledger.MintInfo{}, ledger.NewQueryError("mint info", mintAddress, fmt.Errorf("account is owned by %s, not a token program", info.Owner))
	}

	mint, err := decodeMintAccount(info.Data)
	if err != nil {
		return ledger.MintInfo{}, ledger.NewQueryError("mint info", mintAddress, err)
	}

	result := ledger.MintInfo{
		Address:        mintAddress,
		Decimals:       mint.Decimals,
		Supply:         mint.Supply,
		TokenProgramID: info.Owner,
	}
	if mint.MintAuthority != nil {
		result.MintAuthority = mint.MintAuthority.ToBase58()
	}
	return result, nil
}

// TokenMetadata reads the Metaplex metadata account of a mint.
func (client *Client) TokenMetadata(ctx context.Context, mintAddress string) (ledger.Metadata, error) {
	mint, err := parsePublicKey(mintAddress)
	if err != nil {
		return ledger.Metadata{}, err
	}
	metadataAccount, err := token_metadata.GetTokenMetaPubkey(mint)
	if err != nil {
		return ledger.Metadata{}, fmt.Errorf("failed to derive metadata account: %w", err)
	}

	info, found, err := client.rpc.GetAccountInfo(ctx, metadataAccount.ToBase58())
	if err != nil {
		return ledger.Metadata{}, ledger.NewQueryError("token metadata", mintAddress, err)
	}
	if !found {
		return ledger.Metadata{}, ledger.NewQueryError("token metadata", mintAddress, ledger.ErrAccountNotFound)
	}

	metadata, err := token_metadata.MetadataDeserialize(info.Data)
	if err != nil {
		return ledger.Metadata{}, ledger.NewQueryError("token metadata", mintAddress, err)
	}
	return ledger.Metadata{
		Name:   strings.TrimRight(metadata.Data.Name, "\x00"),
		Symbol: strings.TrimRight(metadata.Data.Symbol, "\x00"),
		URI:    strings.TrimRight(metadata.Data.Uri, "\x00"),
	}, nil
}

// ensureTokenAccount returns the owner's associated token account and, when
// it does not exist yet, the instruction creating it.
func (client *Client) ensureTokenAccount(
	ctx context.Context,
	payer common.PublicKey,
	owner common.PublicKey,
	mint common.PublicKey,
	program common.PublicKey,
) ([]types.Instruction, common.PublicKey, error) {
	ata, err := findAssociatedTokenAddress(owner, mint, program)
	if err != nil {
		return nil, common.PublicKey{}, err
	}
	_, found, err := client.rpc.GetAccountInfo(ctx, ata.ToBase58())
	if err != nil {
		return nil, common.PublicKey{}, ledger.NewQueryError("token account", ata.ToBase58(), err)
	}
	if found {
		return []types.Instruction{}, ata, nil
	}

	client.logger.Debug().
		Str("owner", owner.ToBase58()).
		Str("mint", mint.ToBase58()).
		Str("ata", ata.ToBase58()).
		Msg("creating associated token account")
	return []types.Instruction{
		createAssociatedTokenAccountInstruction(payer, owner, mint, ata, program),
	}, ata, nil
}

func (client *Client) requireTokenAccount(
	ctx context.Context,
	owner common.PublicKey,
	mint common.PublicKey,
	program common.PublicKey,
) (common.PublicKey, error) {
	ata, err := findAssociatedTokenAddress(owner, mint, program)
	if err != nil {
		return common.PublicKey{}, err
	}
	_, found, err := client.rpc.GetAccountInfo(ctx, ata.ToBase58())
	if err != nil {
		return common.PublicKey{}, ledger.NewQueryError("token account", owner.ToBase58(), err)
	}
	if !found {
		return common.PublicKey{}, ledger.NewQueryError("token account", owner.ToBase58(), ledger.ErrAccountNotFound)
	}
	return ata, nil
}

// submit signs the instructions with the fee payer plus extra signers,
// sends the transaction and waits for confirmation.
func (client *Client) submit(
	ctx context.Context,
	feePayer types.Account,
	instructions []types.Instruction,
	extraSigners ...types.Account,
) (string, error) {
	blockhash, err := client.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", ledger.NewQueryError("latest blockhash", "", err)
	}

	signers := []types.Account{feePayer}
	for _, signer := range extraSigners {
		if signer.PublicKey == feePayer.PublicKey {
			continue
		}
		signers = append(signers, signer)
	}

	tx, err := types.NewTransaction(types.NewTransactionParam{
		Signers: signers,
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        feePayer.PublicKey,
			RecentBlockhash: blockhash,
			Instructions:    instructions,
		}),
	})
	if err != nil {
		return "", fmt.Errorf("failed to build transaction: %w", err)
	}

	signature, err := client.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", ledger.NewQueryError("send transaction", feePayer.PublicKey.ToBase58(), err)
	}
	client.logger.Debug().Str("signature", signature).Int("instructions", len(instructions)).Msg("transaction submitted")

	if err := client.ConfirmTransaction(ctx, signature); err != nil {
		return "", err
	}
	return signature, nil
}

func parsePublicKey(address string) (common.PublicKey, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return common.PublicKey{}, ledger.NewInvalidAddressError(address, "address is required")
	}
	decoded, err := base58.Decode(trimmed)
	if err != nil {
		return common.PublicKey{}, ledger.NewInvalidAddressError(address, "not base58")
	}
	if len(decoded) != common.PublicKeyLength {
		return common.PublicKey{}, ledger.NewInvalidAddressError(address, fmt.Sprintf("expected %d bytes, got %d", common.PublicKeyLength, len(decoded)))
	}
	return common.PublicKeyFromBytes(decoded), nil
}

func parseTokenTarget(mintAddress, ownerAddress, programID string) (common.PublicKey, common.PublicKey, common.PublicKey, error) {
	mint, err := parsePublicKey(mintAddress)
	if err != nil {
		return common.PublicKey{}, common.PublicKey{}, common.PublicKey{}, err
	}
	owner, err := parsePublicKey(ownerAddress)
	if err != nil {
		return common.PublicKey{}, common.PublicKey{}, common.PublicKey{}, err
	}
	program, err := resolveTokenProgram(programID)
	if err != nil {
		return common.PublicKey{}, common.PublicKey{}, common.PublicKey{}, err
	}
	return mint, owner, program, nil
}

// decodeTokenAccount reads the base layout; Token-2022 extensions follow it.
func decodeTokenAccount(data []byte) (token.TokenAccount, error) {
	if len(data) < token.TokenAccountSize {
		return token.TokenAccount{}, fmt.Errorf("token account data is %d bytes, want at least %d", len(data), token.TokenAccountSize)
	}
	return token.TokenAccountFromData(data[:token.TokenAccountSize])
}

func decodeMintAccount(data []byte) (token.MintAccount, error) {
	if len(data) < token.MintAccountSize {
		return token.MintAccount{}, fmt.Errorf("mint account data is %d bytes, want at least %d", len(data), token.MintAccountSize)
	}
	return token.MintAccountFromData(data[:token.MintAccountSize])
}
