package points

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sammyshakes/solana-points-go/pkg/journal"
	"github.com/sammyshakes/solana-points-go/pkg/keystore"
	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/registry"
)

type ServiceConfig struct {
	Admin    keystore.Keypair
	Ledger   ledger.Client
	Registry *registry.Registry
	Users    *keystore.UserStore
	// Journal is optional. Write failures are logged and ignored.
	Journal *journal.Journal
	Funding FunderConfig
	Logger  zerolog.Logger
}

// Service runs brand operations on behalf of the admin credential.
type Service struct {
	admin      keystore.Keypair
	ledger     ledger.Client
	registry   *registry.Registry
	users      *keystore.UserStore
	journal    *journal.Journal
	aggregator *Aggregator
	funder     *Funder
	logger     zerolog.Logger
}

// NewService creates a new Service.
func NewService(config ServiceConfig) (*Service, error) {
	if config.Admin.IsZero() {
		return nil, fmt.Errorf("admin keypair is required")
	}
	if config.Ledger == nil {
		return nil, fmt.Errorf("ledger client is required")
	}
	if config.Registry == nil {
		return nil, fmt.Errorf("mint registry is required")
	}

	funding := config.Funding
	funding.Logger = config.Logger
	funder, err := NewFunder(config.Ledger, funding)
	if err != nil {
		return nil, err
	}

	return &Service{
		admin:      config.Admin,
		ledger:     config.Ledger,
		registry:   config.Registry,
		users:      config.Users,
		journal:    config.Journal,
		aggregator: NewAggregator(config.Ledger, config.Registry, config.Logger),
		funder:     funder,
		logger:     config.Logger,
	}, nil
}

func (service *Service) Ledger() ledger.Client {
	return service.ledger
}

func (service *Service) Aggregator() *Aggregator {
	return service.aggregator
}

func (service *Service) AdminAddress() (string, error) {
	return service.ledger.AddressOf(service.admin)
}

// AdminBalance returns the admin wallet's native balance.
func (service *Service) AdminBalance(ctx context.Context) (ledger.TokenAmount, error) {
	address, err := service.AdminAddress()
	if err != nil {
		return ledger.TokenAmount{}, err
	}
	return service.ledger.NativeBalance(ctx, address)
}

// Fund airdrops the configured amount to the admin wallet.
func (service *Service) Fund(ctx context.Context) (FundResult, error) {
	address, err := service.AdminAddress()
	if err != nil {
		return FundResult{}, err
	}
	result, err := service.funder.Fund(ctx, address)
	if err != nil {
		return FundResult{}, err
	}
	service.record(journal.Entry{
		Operation: journal.OperationAirdrop,
		Wallet:    address,
		Amount:    result.Amount.String(),
		Signature: result.Signature,
	})
	return result, nil
}

// CreateBrandMint creates a mint owned by the admin and appends it to the
// registry.
func (service *Service) CreateBrandMint(ctx context.Context, name string, symbol string, options BrandOptions) (BrandResult, error) {
	trimmedName := strings.TrimSpace(name)
	trimmedSymbol := strings.TrimSpace(symbol)
	if trimmedName == "" || trimmedSymbol == "" {
		return BrandResult{}, registry.NewInvalidRecordError([]string{"name and symbol are required"})
	}

	created, err := service.ledger.CreateMint(ctx, service.admin, ledger.CreateMintParams{
		Name:           trimmedName,
		Symbol:         trimmedSymbol,
		URI:            strings.TrimSpace(options.URI),
		Decimals:       options.Decimals,
		TokenProgramID: strings.TrimSpace(options.TokenProgramID),
	})
	if err != nil {
		return BrandResult{}, fmt.Errorf("failed to create mint for %s: %w", trimmedName, err)
	}

	record := registry.MintRecord{
		Address:        created.Address,
		Name:           trimmedName,
		Symbol:         trimmedSymbol,
		TokenProgramID: created.TokenProgramID,
	}
	if err := service.registry.Append(record); err != nil {
		return BrandResult{}, fmt.Errorf("mint %s created but not registered: %w", created.Address, err)
	}

	service.record(journal.Entry{
		Operation: journal.OperationCreateBrand,
		Mint:      created.Address,
		Signature: created.Signature,
	})
	return BrandResult{Record: record, Decimals: created.Decimals, Signature: created.Signature}, nil
}

// ResolveBrand resolves a registry reference (address, name or symbol). An
// unregistered but valid mint address resolves to a bare record.
func (service *Service) ResolveBrand(reference string) (registry.MintRecord, error) {
	trimmed := strings.TrimSpace(reference)
	record, err := service.registry.Resolve(trimmed)
	if err == nil {
		return record, nil
	}

	var notFound registry.RecordNotFoundError
	var missing registry.RegistryNotFoundError
	if !errors.As(err, &notFound) && !errors.As(err, &missing) {
		return registry.MintRecord{}, err
	}
	if service.ledger.ValidateAddress(trimmed) != nil {
		return registry.MintRecord{}, err
	}
	return registry.MintRecord{Address: trimmed}, nil
}

// ResolveWallet turns a stored username or a ledger address into an address.
// Usernames take precedence.
func (service *Service) ResolveWallet(reference string) (string, error) {
	trimmed := strings.TrimSpace(reference)
	if service.users != nil && service.users.Exists(trimmed) {
		keypair, err := service.users.Load(trimmed)
		if err != nil {
			return "", err
		}
		return service.ledger.AddressOf(keypair)
	}

	if err := service.ledger.ValidateAddress(trimmed); err != nil {
		return "", NewUnknownWalletError(reference, err)
	}
	return trimmed, nil
}

// LoadUser returns the stored keypair of a user.
func (service *Service) LoadUser(username string) (keystore.Keypair, error) {
	if service.users == nil {
		return keystore.Keypair{}, fmt.Errorf("user store is not configured")
	}
	return service.users.Load(strings.TrimSpace(username))
}

// MintTokens mints amount, a decimal string, of a brand to a wallet.
func (service *Service) MintTokens(ctx context.Context, brand string, recipient string, amount string) (TxSummary, error) {
	record, err := service.ResolveBrand(brand)
	if err != nil {
		return TxSummary{}, err
	}
	wallet, err := service.ResolveWallet(recipient)
	if err != nil {
		return TxSummary{}, err
	}
	scaled, err := service.scaleAmount(ctx, record, amount)
	if err != nil {
		return TxSummary{}, err
	}

	result, err := service.ledger.MintTo(ctx, service.admin, ledger.MintToParams{
		Mint:           record.Address,
		Recipient:      wallet,
		Amount:         scaled.Amount,
		TokenProgramID: record.TokenProgramID,
	})
	if err != nil {
		return TxSummary{}, fmt.Errorf("failed to mint %s %s: %w", scaled, brandLabel(record), err)
	}

	summary := TxSummary{Brand: record, Wallet: wallet, Amount: scaled, Signature: result.Signature}
	service.recordSummary(journal.OperationMint, summary)
	return summary, nil
}

// BurnTokens burns amount of a brand from holder. A zero holder burns from
// the admin.
func (service *Service) BurnTokens(ctx context.Context, brand string, holder keystore.Keypair, amount string) (TxSummary, error) {
	record, err := service.ResolveBrand(brand)
	if err != nil {
		return TxSummary{}, err
	}
	scaled, err := service.scaleAmount(ctx, record, amount)
	if err != nil {
		return TxSummary{}, err
	}

	source := service.admin
	if !holder.IsZero() {
		source = holder
	}
	wallet, err := service.ledger.AddressOf(source)
	if err != nil {
		return TxSummary{}, err
	}

	result, err := service.ledger.Burn(ctx, service.admin, ledger.BurnParams{
		Mint:           record.Address,
		Holder:         holder,
		Amount:         scaled.Amount,
		TokenProgramID: record.TokenProgramID,
	})
	if err != nil {
		return TxSummary{}, fmt.Errorf("failed to burn %s %s: %w", scaled, brandLabel(record), err)
	}

	if result.Account != "" {
		wallet = result.Account
	}
	summary := TxSummary{Brand: record, Wallet: wallet, Amount: scaled, Signature: result.Signature}
	service.recordSummary(journal.OperationBurn, summary)
	return summary, nil
}

// TransferTokens moves amount of a brand from owner to recipient. The admin
// pays the fees.
func (service *Service) TransferTokens(
	ctx context.Context,
	brand string,
	owner keystore.Keypair,
	recipient string,
	amount string,
) (TxSummary, error) {
	if owner.IsZero() {
		return TxSummary{}, fmt.Errorf("owner keypair is required")
	}
	record, err := service.ResolveBrand(brand)
	if err != nil {
		return TxSummary{}, err
	}
	wallet, err := service.ResolveWallet(recipient)
	if err != nil {
		return TxSummary{}, err
	}
	scaled, err := service.scaleAmount(ctx, record, amount)
	if err != nil {
		return TxSummary{}, err
	}

	result, err := service.ledger.Transfer(ctx, service.admin, ledger.TransferParams{
		Mint:           record.Address,
		Owner:          owner,
		Recipient:      wallet,
		Amount:         scaled.Amount,
		TokenProgramID: record.TokenProgramID,
	})
	if err != nil {
		return TxSummary{}, fmt.Errorf("failed to transfer %s %s: %w", scaled, brandLabel(record), err)
	}

	summary := TxSummary{Brand: record, Wallet: wallet, Amount: scaled, Signature: result.Signature}
	service.recordSummary(journal.OperationTransfer, summary)
	return summary, nil
}

// TokenBalance returns a wallet's balance of one brand. Lookup failures
// yield 0.
func (service *Service) TokenBalance(ctx context.Context, brand string, wallet string) (registry.MintRecord, float64, error) {
	record, err := service.ResolveBrand(brand)
	if err != nil {
		return registry.MintRecord{}, 0, err
	}
	address, err := service.ResolveWallet(wallet)
	if err != nil {
		return registry.MintRecord{}, 0, err
	}
	return record, service.aggregator.balanceOf(ctx, record, address), nil
}

func (service *Service) AllBalances(ctx context.Context, wallet string, hideZero bool) (*BalanceMap, error) {
	address, err := service.ResolveWallet(wallet)
	if err != nil {
		return nil, err
	}
	return service.aggregator.GetAllBalances(ctx, address, hideZero)
}

// TokenMetadata returns the on-ledger mint state and metadata of a brand.
func (service *Service) TokenMetadata(ctx context.Context, brand string) (BrandDetails, error) {
	record, err := service.ResolveBrand(brand)
	if err != nil {
		return BrandDetails{}, err
	}
	info, err := service.ledger.MintInfo(ctx, record.Address)
	if err != nil {
		return BrandDetails{}, err
	}
	metadata, err := service.ledger.TokenMetadata(ctx, record.Address)
	if err != nil {
		return BrandDetails{}, err
	}
	return BrandDetails{Record: record, Info: info, Metadata: metadata}, nil
}

func (service *Service) ListBrands() ([]registry.MintRecord, error) {
	return service.registry.LoadAll()
}

// History returns the newest limit journal entries, oldest first.
func (service *Service) History(limit int) ([]journal.Entry, error) {
	if service.journal == nil {
		return nil, fmt.Errorf("journal is not configured")
	}
	return service.journal.List(limit)
}

func (service *Service) scaleAmount(ctx context.Context, record registry.MintRecord, amount string) (ledger.TokenAmount, error) {
	info, err := service.ledger.MintInfo(ctx, record.Address)
	if err != nil {
		return ledger.TokenAmount{}, fmt.Errorf("failed to read mint %s: %w", record.Address, err)
	}
	raw, err := ledger.ParseAmount(amount, info.Decimals)
	if err != nil {
		return ledger.TokenAmount{}, err
	}
	if raw == 0 {
		return ledger.TokenAmount{}, ledger.NewInvalidAmountError(amount, "amount must be greater than zero")
	}
	return ledger.TokenAmount{Amount: raw, Decimals: info.Decimals}, nil
}

func (service *Service) recordSummary(operation string, summary TxSummary) {
	service.record(journal.Entry{
		Operation: operation,
		Mint:      summary.Brand.Address,
		Wallet:    summary.Wallet,
		Amount:    summary.Amount.String(),
		Signature: summary.Signature,
	})
}

func (service *Service) record(entry journal.Entry) {
	if service.journal == nil {
		return
	}
	entry.Ledger = service.ledger.Name()
	if _, err := service.journal.Append(entry); err != nil {
		service.logger.Warn().Err(err).Str("operation", entry.Operation).Msg("failed to journal ledger write")
	}
}

func brandLabel(record registry.MintRecord) string {
	if record.Name != "" {
		return record.Name
	}
	return record.Address
}
