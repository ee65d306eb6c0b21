package hts

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"

	"github.com/sammyshakes/solana-points-go/pkg/keystore"
	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/mirror"
	"github.com/sammyshakes/solana-points-go/pkg/shared"
)

const (
	LedgerName = "hedera"

	// TinybarDecimals is the precision of native HBAR balances.
	TinybarDecimals uint8 = 8
)

type Config struct {
	Network            string
	OperatorAccountID  string
	OperatorPrivateKey string
	MirrorBaseURL      string
	MirrorAPIKey       string
	HTTPClient         *http.Client
	Logger             zerolog.Logger
}

type Client struct {
	hederaClient *hedera.Client
	mirrorClient *mirror.Client
	operatorID   hedera.AccountID
	operatorKey  hedera.PrivateKey
	network      string
	logger       zerolog.Logger
}

var _ ledger.Client = (*Client)(nil)

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	trimmedOperatorID := strings.TrimSpace(config.OperatorAccountID)
	if trimmedOperatorID == "" {
		return nil, fmt.Errorf("operator account ID is required")
	}
	trimmedOperatorKey := strings.TrimSpace(config.OperatorPrivateKey)
	if trimmedOperatorKey == "" {
		return nil, fmt.Errorf("operator private key is required")
	}

	operatorID, err := hedera.AccountIDFromString(trimmedOperatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account ID: %w", err)
	}
	operatorKey, err := shared.ParsePrivateKey(trimmedOperatorKey)
	if err != nil {
		return nil, err
	}

	hederaClient, err := shared.NewHederaClient(network)
	if err != nil {
		return nil, err
	}
	hederaClient.SetOperator(operatorID, operatorKey)

	mirrorClient, err := mirror.NewClient(mirror.Config{
		Network:    network,
		BaseURL:    config.MirrorBaseURL,
		APIKey:     config.MirrorAPIKey,
		HTTPClient: config.HTTPClient,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		hederaClient: hederaClient,
		mirrorClient: mirrorClient,
		operatorID:   operatorID,
		operatorKey:  operatorKey,
		network:      network,
		logger:       config.Logger,
	}, nil
}

// MirrorClient returns the configured mirror client.
func (client *Client) MirrorClient() *mirror.Client {
	return client.mirrorClient
}

// TreasuryAccountID returns the operator account holding minted supply.
func (client *Client) TreasuryAccountID() string {
	return client.operatorID.String()
}

func (client *Client) Name() string {
	return LedgerName
}

// AddressOf returns the alias account ID of a keypair.
func (client *Client) AddressOf(keypair keystore.Keypair) (string, error) {
	accountID, err := aliasAccountID(keypair)
	if err != nil {
		return "", err
	}
	return accountID.String(), nil
}

func (client *Client) ValidateAddress(address string) error {
	_, err := parseAccountID(address)
	return err
}

// NativeBalance returns the HBAR balance. An alias without an account has
// a zero balance.
func (client *Client) NativeBalance(ctx context.Context, address string) (ledger.TokenAmount, error) {
	accountID, found, err := client.resolveAccount(ctx, address)
	if err != nil {
		return ledger.TokenAmount{}, err
	}
	if !found {
		return ledger.TokenAmount{Amount: 0, Decimals: TinybarDecimals}, nil
	}

	info, err := client.mirrorClient.GetAccount(ctx, accountID)
	if err != nil {
		if mirror.IsNotFound(err) {
			return ledger.TokenAmount{Amount: 0, Decimals: TinybarDecimals}, nil
		}
		return ledger.TokenAmount{}, ledger.NewQueryError("native balance", address, err)
	}
	if info.Balance.Balance < 0 {
		return ledger.TokenAmount{}, ledger.NewQueryError("native balance", address, fmt.Errorf("negative balance %d", info.Balance.Balance))
	}
	return ledger.TokenAmount{Amount: uint64(info.Balance.Balance), Decimals: TinybarDecimals}, nil
}

// RequestAirdrop is not offered by Hedera networks.
func (client *Client) RequestAirdrop(ctx context.Context, address string, amount uint64) (string, error) {
	return "", fmt.Errorf("hedera %s has no faucet RPC: %w", client.network, ledger.ErrUnsupported)
}

// ConfirmTransaction fetches the receipt of a transaction ID.
func (client *Client) ConfirmTransaction(ctx context.Context, signature string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	transactionID, err := hedera.TransactionIdFromString(strings.TrimSpace(signature))
	if err != nil {
		return fmt.Errorf("invalid transaction ID %q: %w", signature, err)
	}

	receipt, err := hedera.NewTransactionReceiptQuery().
		SetTransactionID(transactionID).
		Execute(client.hederaClient)
	if err != nil {
		return ledger.NewQueryError("transaction receipt", signature, err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return ledger.NewTransactionError(signature, receipt.Status.String())
	}
	return nil
}

func (client *Client) CreateMint(
	ctx context.Context,
	authority keystore.Keypair,
	params ledger.CreateMintParams,
) (ledger.CreateMintResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.CreateMintResult{}, err
	}
	if params.TokenProgramID != "" {
		return ledger.CreateMintResult{}, fmt.Errorf("token program %s: %w", params.TokenProgramID, ledger.ErrUnsupported)
	}
	adminKey, err := signingKey(authority)
	if err != nil {
		return ledger.CreateMintResult{}, err
	}
	decimals := ledger.DefaultDecimals
	if params.Decimals != nil {
		decimals = *params.Decimals
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(strings.TrimSpace(params.Name)).
		SetTokenSymbol(strings.TrimSpace(params.Symbol)).
		SetDecimals(uint(decimals)).
		SetInitialSupply(0).
		SetTreasuryAccountID(client.operatorID).
		SetAdminKey(adminKey.PublicKey()).
		SetSupplyKey(adminKey.PublicKey()).
		SetWipeKey(adminKey.PublicKey()).
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetSupplyType(hedera.TokenSupplyTypeInfinite)
	if uri := strings.TrimSpace(params.URI); uri != "" {
		transaction.SetTokenMemo(uri)
	}

	frozen, err := transaction.FreezeWith(client.hederaClient)
	if err != nil {
		return ledger.CreateMintResult{}, fmt.Errorf("failed to freeze token create transaction: %w", err)
	}
	frozen.Sign(adminKey)
	response, err := frozen.Execute(client.hederaClient)
	if err != nil {
		return ledger.CreateMintResult{}, ledger.NewQueryError("token create", client.operatorID.String(), err)
	}
	receipt, err := client.receipt(response, "token create")
	if err != nil {
		return ledger.CreateMintResult{}, err
	}
	if receipt.TokenID == nil {
		return ledger.CreateMintResult{}, fmt.Errorf("token create receipt missing token ID")
	}

	client.logger.Debug().Str("token", receipt.TokenID.String()).Str("transaction", response.TransactionID.String()).Msg("token created")
	return ledger.CreateMintResult{
		Address:   receipt.TokenID.String(),
		Decimals:  decimals,
		Signature: response.TransactionID.String(),
	}, nil
}

// MintTo mints into the treasury and moves the new supply to the recipient.
func (client *Client) MintTo(
	ctx context.Context,
	authority keystore.Keypair,
	params ledger.MintToParams,
) (ledger.TxResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.TxResult{}, err
	}
	tokenID, err := parseTokenID(params.Mint)
	if err != nil {
		return ledger.TxResult{}, err
	}
	supplyKey, err := signingKey(authority)
	if err != nil {
		return ledger.TxResult{}, err
	}
	amount, err := transferAmount(params.Amount)
	if err != nil {
		return ledger.TxResult{}, err
	}
	recipient, err := client.recipientAccount(ctx, params.Recipient)
	if err != nil {
		return ledger.TxResult{}, err
	}

	mintTransaction, err := hedera.NewTokenMintTransaction().
		SetTokenID(tokenID).
		SetAmount(params.Amount).
		FreezeWith(client.hederaClient)
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("failed to freeze token mint transaction: %w", err)
	}
	mintTransaction.Sign(supplyKey)
	response, err := mintTransaction.Execute(client.hederaClient)
	if err != nil {
		return ledger.TxResult{}, ledger.NewQueryError("token mint", params.Mint, err)
	}
	if _, err := client.receipt(response, "token mint"); err != nil {
		return ledger.TxResult{}, err
	}

	if recipient.String() == client.operatorID.String() {
		return ledger.TxResult{Signature: response.TransactionID.String()}, nil
	}

	transferResponse, err := hedera.NewTransferTransaction().
		AddTokenTransfer(tokenID, client.operatorID, -amount).
		AddTokenTransfer(tokenID, recipient, amount).
		Execute(client.hederaClient)
	if err != nil {
		return ledger.TxResult{}, ledger.NewQueryError("treasury transfer", params.Recipient, err)
	}
	if _, err := client.receipt(transferResponse, "treasury transfer"); err != nil {
		return ledger.TxResult{}, err
	}
	return ledger.TxResult{Signature: transferResponse.TransactionID.String()}, nil
}

// Burn burns from the treasury, or wipes from Holder when one is given.
func (client *Client) Burn(
	ctx context.Context,
	authority keystore.Keypair,
	params ledger.BurnParams,
) (ledger.TxResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.TxResult{}, err
	}
	tokenID, err := parseTokenID(params.Mint)
	if err != nil {
		return ledger.TxResult{}, err
	}
	adminKey, err := signingKey(authority)
	if err != nil {
		return ledger.TxResult{}, err
	}

	if params.Holder.IsZero() || params.Holder.Address() == authority.Address() {
		frozen, err := hedera.NewTokenBurnTransaction().
			SetTokenID(tokenID).
			SetAmount(params.Amount).
			FreezeWith(client.hederaClient)
		if err != nil {
			return ledger.TxResult{}, fmt.Errorf("failed to freeze token burn transaction: %w", err)
		}
		frozen.Sign(adminKey)
		response, err := frozen.Execute(client.hederaClient)
		if err != nil {
			return ledger.TxResult{}, ledger.NewQueryError("token burn", params.Mint, err)
		}
		if _, err := client.receipt(response, "token burn"); err != nil {
			return ledger.TxResult{}, err
		}
		return ledger.TxResult{Signature: response.TransactionID.String(), Account: client.operatorID.String()}, nil
	}

	holderAddress, err := client.AddressOf(params.Holder)
	if err != nil {
		return ledger.TxResult{}, err
	}
	holderID, found, err := client.resolveAccount(ctx, holderAddress)
	if err != nil {
		return ledger.TxResult{}, err
	}
	if !found {
		return ledger.TxResult{}, ledger.NewQueryError("token wipe", holderAddress, ledger.ErrAccountNotFound)
	}
	accountID, err := hedera.AccountIDFromString(holderID)
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("invalid holder account %q: %w", holderID, err)
	}

	frozen, err := hedera.NewTokenWipeTransaction().
		SetTokenID(tokenID).
		SetAccountID(accountID).
		SetAmount(params.Amount).
		FreezeWith(client.hederaClient)
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("failed to freeze token wipe transaction: %w", err)
	}
	frozen.Sign(adminKey)
	response, err := frozen.Execute(client.hederaClient)
	if err != nil {
		return ledger.TxResult{}, ledger.NewQueryError("token wipe", holderID, err)
	}
	if _, err := client.receipt(response, "token wipe"); err != nil {
		return ledger.TxResult{}, err
	}
	return ledger.TxResult{Signature: response.TransactionID.String(), Account: holderID}, nil
}

// Transfer moves tokens out of Owner's account. The operator pays the fee
// in place of payer and the owner signs.
func (client *Client) Transfer(
	ctx context.Context,
	payer keystore.Keypair,
	params ledger.TransferParams,
) (ledger.TxResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.TxResult{}, err
	}
	tokenID, err := parseTokenID(params.Mint)
	if err != nil {
		return ledger.TxResult{}, err
	}
	ownerKey, err := signingKey(params.Owner)
	if err != nil {
		return ledger.TxResult{}, err
	}
	amount, err := transferAmount(params.Amount)
	if err != nil {
		return ledger.TxResult{}, err
	}

	ownerAddress, err := client.AddressOf(params.Owner)
	if err != nil {
		return ledger.TxResult{}, err
	}
	ownerID, found, err := client.resolveAccount(ctx, ownerAddress)
	if err != nil {
		return ledger.TxResult{}, err
	}
	if !found {
		return ledger.TxResult{}, ledger.NewQueryError("token transfer", ownerAddress, ledger.ErrAccountNotFound)
	}
	sender, err := hedera.AccountIDFromString(ownerID)
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("invalid owner account %q: %w", ownerID, err)
	}
	recipient, err := client.recipientAccount(ctx, params.Recipient)
	if err != nil {
		return ledger.TxResult{}, err
	}

	frozen, err := hedera.NewTransferTransaction().
		AddTokenTransfer(tokenID, sender, -amount).
		AddTokenTransfer(tokenID, recipient, amount).
		FreezeWith(client.hederaClient)
	if err != nil {
		return ledger.TxResult{}, fmt.Errorf("failed to freeze token transfer transaction: %w", err)
	}
	frozen.Sign(ownerKey)
	response, err := frozen.Execute(client.hederaClient)
	if err != nil {
		return ledger.TxResult{}, ledger.NewQueryError("token transfer", ownerID, err)
	}
	if _, err := client.receipt(response, "token transfer"); err != nil {
		return ledger.TxResult{}, err
	}
	return ledger.TxResult{Signature: response.TransactionID.String()}, nil
}

// TokenBalance reads the account's token relationship from the mirror node.
func (client *Client) TokenBalance(ctx context.Context, params ledger.TokenBalanceParams) (ledger.TokenAmount, error) {
	if _, err := parseTokenID(params.Mint); err != nil {
		return ledger.TokenAmount{}, err
	}
	accountID, found, err := client.resolveAccount(ctx, params.Wallet)
	if err != nil {
		return ledger.TokenAmount{}, err
	}
	if !found {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, ledger.ErrAccountNotFound)
	}

	relationship, associated, err := client.mirrorClient.GetAccountTokenBalance(ctx, accountID, params.Mint)
	if err != nil {
		if mirror.IsNotFound(err) {
			return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, ledger.ErrAccountNotFound)
		}
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, err)
	}
	if !associated {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, ledger.ErrAccountNotFound)
	}
	if relationship.Balance < 0 || relationship.Decimals < 0 || relationship.Decimals > math.MaxUint8 {
		return ledger.TokenAmount{}, ledger.NewQueryError("token balance", params.Wallet, fmt.Errorf("invalid relationship %+v", relationship))
	}
	return ledger.TokenAmount{Amount: uint64(relationship.Balance), Decimals: uint8(relationship.Decimals)}, nil
}

func (client *Client) MintInfo(ctx context.Context, mint string) (ledger.MintInfo, error) {
	info, err := client.tokenInfo(ctx, mint)
	if err != nil {
		return ledger.MintInfo{}, err
	}

	decimals, err := strconv.ParseUint(strings.TrimSpace(info.Decimals), 10, 8)
	if err != nil {
		return ledger.MintInfo{}, ledger.NewQueryError("mint info", mint, fmt.Errorf("invalid decimals %q", info.Decimals))
	}
	supply := uint64(0)
	if trimmed := strings.TrimSpace(info.TotalSupply); trimmed != "" {
		supply, err = strconv.ParseUint(trimmed, 10, 64)
		if err != nil {
			return ledger.MintInfo{}, ledger.NewQueryError("mint info", mint, fmt.Errorf("invalid total supply %q", info.TotalSupply))
		}
	}

	result := ledger.MintInfo{
		Address:  info.TokenID,
		Decimals: uint8(decimals),
		Supply:   supply,
	}
	if info.SupplyKey != nil {
		result.MintAuthority = info.SupplyKey.Key
	}
	return result, nil
}

func (client *Client) TokenMetadata(ctx context.Context, mint string) (ledger.Metadata, error) {
	info, err := client.tokenInfo(ctx, mint)
	if err != nil {
		return ledger.Metadata{}, err
	}
	return ledger.Metadata{
		Name:   info.Name,
		Symbol: info.Symbol,
		URI:    info.Memo,
	}, nil
}

func (client *Client) tokenInfo(ctx context.Context, mint string) (mirror.TokenInfo, error) {
	if _, err := parseTokenID(mint); err != nil {
		return mirror.TokenInfo{}, err
	}
	info, err := client.mirrorClient.GetTokenInfo(ctx, mint)
	if err != nil {
		if mirror.IsNotFound(err) {
			return mirror.TokenInfo{}, ledger.NewQueryError("token info", mint, ledger.ErrAccountNotFound)
		}
		return mirror.TokenInfo{}, ledger.NewQueryError("token info", mint, err)
	}
	return info, nil
}

func (client *Client) receipt(response hedera.TransactionResponse, operation string) (hedera.TransactionReceipt, error) {
	receipt, err := response.GetReceipt(client.hederaClient)
	if err != nil {
		return hedera.TransactionReceipt{}, ledger.NewQueryError(operation+" receipt", response.TransactionID.String(), err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return hedera.TransactionReceipt{}, ledger.NewTransactionError(response.TransactionID.String(), receipt.Status.String())
	}
	return receipt, nil
}

func transferAmount(amount uint64) (int64, error) {
	if amount == 0 {
		return 0, fmt.Errorf("amount must be greater than zero")
	}
	if amount > math.MaxInt64 {
		return 0, fmt.Errorf("amount %d exceeds the Hedera maximum", amount)
	}
	return int64(amount), nil
}
