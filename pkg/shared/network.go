package shared

import (
	"fmt"
	"net/url"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	LedgerSolana = "solana"
	LedgerHedera = "hedera"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

const (
	SolanaDevnet      = "devnet"
	SolanaTestnet     = "testnet"
	SolanaMainnetBeta = "mainnet-beta"
	SolanaLocalnet    = "localnet"

	SolanaDevnetEndpoint      = "https://api.devnet.solana.com"
	SolanaTestnetEndpoint     = "https://api.testnet.solana.com"
	SolanaMainnetBetaEndpoint = "https://api.mainnet-beta.solana.com"
	SolanaLocalnetEndpoint    = "http://127.0.0.1:8899"
)

// NormalizeLedger returns the canonical ledger name, defaulting to Solana.
func NormalizeLedger(ledger string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(ledger))
	if normalized == "" {
		return LedgerSolana, nil
	}

	switch normalized {
	case LedgerSolana, LedgerHedera:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported ledger %q", ledger)
	}
}

// NormalizeNetwork normalizes a Hedera network name.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet:
		return normalized, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// ResolveSolanaEndpoint turns a cluster name or RPC URL into an RPC URL.
// An empty value resolves to devnet.
func ResolveSolanaEndpoint(network string) (string, error) {
	trimmed := strings.TrimSpace(network)
	switch strings.ToLower(trimmed) {
	case "", SolanaDevnet:
		return SolanaDevnetEndpoint, nil
	case SolanaTestnet:
		return SolanaTestnetEndpoint, nil
	case SolanaMainnetBeta, NetworkMainnet:
		return SolanaMainnetBetaEndpoint, nil
	case SolanaLocalnet:
		return SolanaLocalnetEndpoint, nil
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid solana RPC URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid solana RPC URL %q: scheme must be http or https", network)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", fmt.Errorf("invalid solana RPC URL %q: host is required", network)
	}

	return strings.TrimRight(parsed.String(), "/"), nil
}

// IsSolanaMainnet reports whether an RPC URL points at mainnet-beta.
func IsSolanaMainnet(endpoint string) bool {
	return strings.Contains(strings.ToLower(endpoint), "mainnet")
}

// NewHederaClient creates a new HederaClient.
func NewHederaClient(network string) (*hedera.Client, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}

	if normalized == NetworkMainnet {
		return hedera.ClientForMainnet(), nil
	}

	return hedera.ClientForTestnet(), nil
}
