package hts

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/sammyshakes/solana-points-go/pkg/keystore"
	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/shared"
)

var entityRegex = regexp.MustCompile(`^(0|(?:[1-9]\d*))\.(0|(?:[1-9]\d*))\.(0|(?:[1-9]\d*))$`)

func signingKey(keypair keystore.Keypair) (hedera.PrivateKey, error) {
	if keypair.IsZero() {
		return hedera.PrivateKey{}, fmt.Errorf("keypair is required")
	}
	return shared.PrivateKeyFromSeed(keypair.Seed())
}

func aliasAccountID(keypair keystore.Keypair) (*hedera.AccountID, error) {
	key, err := signingKey(keypair)
	if err != nil {
		return nil, err
	}
	return key.PublicKey().ToAccountID(0, 0), nil
}

// parseAccountID accepts shard.realm.num IDs and ED25519 alias IDs.
func parseAccountID(address string) (hedera.AccountID, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return hedera.AccountID{}, ledger.NewInvalidAddressError(address, "account ID is required")
	}
	accountID, err := hedera.AccountIDFromString(trimmed)
	if err != nil {
		return hedera.AccountID{}, ledger.NewInvalidAddressError(address, err.Error())
	}
	return accountID, nil
}

func parseTokenID(mint string) (hedera.TokenID, error) {
	trimmed := strings.TrimSpace(mint)
	if !entityRegex.MatchString(trimmed) {
		return hedera.TokenID{}, ledger.NewInvalidAddressError(mint, "token ID must look like 0.0.1234")
	}
	tokenID, err := hedera.TokenIDFromString(trimmed)
	if err != nil {
		return hedera.TokenID{}, ledger.NewInvalidAddressError(mint, err.Error())
	}
	return tokenID, nil
}

// resolveAccount returns the shard.realm.num form of an address. Aliases
// are looked up on the mirror node; found is false when no account exists.
func (client *Client) resolveAccount(ctx context.Context, address string) (string, bool, error) {
	accountID, err := parseAccountID(address)
	if err != nil {
		return "", false, err
	}
	if accountID.AliasKey == nil {
		return accountID.String(), true, nil
	}

	resolved, found, err := client.mirrorClient.FindAccountByPublicKey(ctx, accountID.AliasKey.StringRaw())
	if err != nil {
		return "", false, ledger.NewQueryError("alias lookup", address, err)
	}
	return resolved, found, nil
}

// recipientAccount resolves an alias when an account exists and keeps the
// alias otherwise, so the transfer creates the account.
func (client *Client) recipientAccount(ctx context.Context, address string) (hedera.AccountID, error) {
	accountID, err := parseAccountID(address)
	if err != nil {
		return hedera.AccountID{}, err
	}
	if accountID.AliasKey == nil {
		return accountID, nil
	}

	resolved, found, err := client.resolveAccount(ctx, address)
	if err != nil {
		return hedera.AccountID{}, err
	}
	if !found {
		return accountID, nil
	}
	return hedera.AccountIDFromString(resolved)
}
