package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/joho/godotenv"
)

// OperatorConfig identifies the Hedera account that pays fees and holds
// the treasury balance of every brand token.
type OperatorConfig struct {
	AccountID  string
	PrivateKey string
	Network    string
}

var dotenvLoadOnce sync.Once

// LoadDotEnv loads the nearest .env file, searching from the working
// directory upward. Variables already set in the environment are kept.
// Only the first call per process does any work.
func LoadDotEnv() {
	dotenvLoadOnce.Do(func() {
		cwd, err := os.Getwd()
		if err != nil {
			return
		}
		if candidate, ok := findDotEnv(cwd); ok {
			_ = godotenv.Load(candidate)
		}
	})
}

func findDotEnv(start string) (string, bool) {
	current := start
	for {
		candidate := filepath.Join(current, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// OperatorConfigFromEnv resolves the Hedera operator from the environment.
// Network-scoped variables (MAINNET_*, TESTNET_*) override the generic ones.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	LoadDotEnv()

	network := firstNonEmptyEnv("HEDERA_NETWORK", "NETWORK")
	if network == "" {
		network = NetworkTestnet
	}
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return OperatorConfig{}, err
	}

	accountID := firstNonEmptyEnv("HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "OPERATOR_ID")
	privateKey := firstNonEmptyEnv("HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "OPERATOR_KEY")

	prefix := strings.ToUpper(normalized) + "_"
	if scopedAccount := firstNonEmptyEnv(
		prefix+"HEDERA_ACCOUNT_ID",
		prefix+"HEDERA_OPERATOR_ID",
		prefix+"OPERATOR_ID",
	); scopedAccount != "" {
		accountID = scopedAccount
	}
	if scopedKey := firstNonEmptyEnv(
		prefix+"HEDERA_PRIVATE_KEY",
		prefix+"HEDERA_OPERATOR_KEY",
		prefix+"OPERATOR_KEY",
	); scopedKey != "" {
		privateKey = scopedKey
	}

	if accountID == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_ACCOUNT_ID is required")
	}
	if privateKey == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_PRIVATE_KEY is required")
	}

	return OperatorConfig{
		AccountID:  accountID,
		PrivateKey: privateKey,
		Network:    normalized,
	}, nil
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// ParsePrivateKey parses a Hedera private key in any supported encoding.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	ed25519Key, edErr := hedera.PrivateKeyFromStringEd25519(candidate)
	if edErr == nil {
		return ed25519Key, nil
	}

	ecdsaKey, ecdsaErr := hedera.PrivateKeyFromStringECDSA(candidate)
	if ecdsaErr == nil {
		return ecdsaKey, nil
	}

	genericKey, genericErr := hedera.PrivateKeyFromString(candidate)
	if genericErr == nil {
		return genericKey, nil
	}

	return hedera.PrivateKey{}, fmt.Errorf(
		"failed to parse private key as ED25519 (%v), ECDSA (%v), or generic (%v)",
		edErr,
		ecdsaErr,
		genericErr,
	)
}

// PrivateKeyFromSeed builds a Hedera ED25519 key from a 32-byte seed, the
// first half of a stored 64-byte secret key.
func PrivateKeyFromSeed(seed []byte) (hedera.PrivateKey, error) {
	if len(seed) != 32 {
		return hedera.PrivateKey{}, fmt.Errorf("ed25519 seed must be 32 bytes, got %d", len(seed))
	}
	key, err := hedera.PrivateKeyFromBytesEd25519(seed)
	if err != nil {
		return hedera.PrivateKey{}, fmt.Errorf("failed to build ed25519 key from seed: %w", err)
	}
	return key, nil
}
