package ledger

import (
	"context"

	"github.com/sammyshakes/solana-points-go/pkg/keystore"
)

// Client is a ledger driver. Write operations return once the transaction
// has been submitted and confirmed by the ledger.
type Client interface {
	Name() string
	AddressOf(keypair keystore.Keypair) (string, error)
	ValidateAddress(address string) error

	NativeBalance(ctx context.Context, address string) (TokenAmount, error)
	RequestAirdrop(ctx context.Context, address string, amount uint64) (string, error)
	ConfirmTransaction(ctx context.Context, signature string) error

	CreateMint(ctx context.Context, authority keystore.Keypair, params CreateMintParams) (CreateMintResult, error)
	MintTo(ctx context.Context, authority keystore.Keypair, params MintToParams) (TxResult, error)
	Burn(ctx context.Context, authority keystore.Keypair, params BurnParams) (TxResult, error)
	Transfer(ctx context.Context, payer keystore.Keypair, params TransferParams) (TxResult, error)

	TokenBalance(ctx context.Context, params TokenBalanceParams) (TokenAmount, error)
	MintInfo(ctx context.Context, mint string) (MintInfo, error)
	TokenMetadata(ctx context.Context, mint string) (Metadata, error)
}
