package keystore

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"

	"github.com/blocto/solana-go-sdk/types"
	"github.com/mr-tron/base58"
)

// SecretKeySize is the length of a stored secret key: seed then public key.
const SecretKeySize = ed25519.PrivateKeySize

// Keypair is an ed25519 credential usable by every ledger driver.
type Keypair struct {
	account types.Account
}

// NewKeypair generates a fresh keypair.
func NewKeypair() Keypair {
	return Keypair{account: types.NewAccount()}
}

// KeypairFromSecret rebuilds a keypair from its 64 secret key bytes.
func KeypairFromSecret(secret []byte) (Keypair, error) {
	if len(secret) != SecretKeySize {
		return Keypair{}, fmt.Errorf("secret key must be %d bytes, got %d", SecretKeySize, len(secret))
	}
	account, err := types.AccountFromBytes(append([]byte{}, secret...))
	if err != nil {
		return Keypair{}, fmt.Errorf("failed to rebuild account: %w", err)
	}
	return Keypair{account: account}, nil
}

// Address returns the base58 encoded public key.
func (keypair Keypair) Address() string {
	return base58.Encode(keypair.account.PublicKey.Bytes())
}

// PublicKey returns the requested value.
func (keypair Keypair) PublicKey() []byte {
	return keypair.account.PublicKey.Bytes()
}

// SecretKey returns a copy of the 64 secret key bytes.
func (keypair Keypair) SecretKey() []byte {
	return append([]byte{}, keypair.account.PrivateKey...)
}

// Seed returns the 32-byte ed25519 seed.
func (keypair Keypair) Seed() []byte {
	return append([]byte{}, keypair.account.PrivateKey.Seed()...)
}

// Account returns the Solana SDK account value.
func (keypair Keypair) Account() types.Account {
	return keypair.account
}

// IsZero reports whether the keypair was never initialized.
func (keypair Keypair) IsZero() bool {
	return len(keypair.account.PrivateKey) == 0
}

func encodeSecret(secret []byte) ([]byte, error) {
	values := make([]int, len(secret))
	for index, value := range secret {
		values[index] = int(value)
	}
	return json.Marshal(values)
}

func decodeSecret(payload []byte) ([]byte, error) {
	var values []int
	if err := json.Unmarshal(payload, &values); err != nil {
		return nil, fmt.Errorf("expected a JSON array of integers: %v", err)
	}
	if len(values) != SecretKeySize {
		return nil, fmt.Errorf("expected %d bytes, got %d", SecretKeySize, len(values))
	}

	secret := make([]byte, len(values))
	for index, value := range values {
		if value < 0 || value > 255 {
			return nil, fmt.Errorf("byte out of range at %d: %d", index, value)
		}
		secret[index] = byte(value)
	}
	return secret, nil
}
