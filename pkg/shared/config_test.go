package shared

import (
	"testing"
	"time"
)

func TestLoadConfigFromDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ledger != LedgerSolana {
		t.Fatalf("expected ledger %q, got %q", LedgerSolana, cfg.Ledger)
	}
	if cfg.SolanaNetwork != SolanaDevnetEndpoint {
		t.Fatalf("expected devnet endpoint, got %q", cfg.SolanaNetwork)
	}
	if cfg.AdminKeypairFile != "admin_keypair.json" {
		t.Fatalf("unexpected admin keypair file %q", cfg.AdminKeypairFile)
	}
	if cfg.BrandMintsFile != "brand_mints.json" {
		t.Fatalf("unexpected brand mints file %q", cfg.BrandMintsFile)
	}
	if cfg.UserKeypairDir != "users" {
		t.Fatalf("unexpected user keypair dir %q", cfg.UserKeypairDir)
	}
	if cfg.AirdropAmount != 2_000_000_000 {
		t.Fatalf("expected 2 SOL airdrop, got %d", cfg.AirdropAmount)
	}
	if cfg.AirdropAttempts != 5 {
		t.Fatalf("expected 5 airdrop attempts, got %d", cfg.AirdropAttempts)
	}
	if cfg.ConfirmTimeout != time.Minute {
		t.Fatalf("expected 60s confirm timeout, got %s", cfg.ConfirmTimeout)
	}
	if cfg.HederaNetwork != NetworkTestnet {
		t.Fatalf("expected hedera testnet, got %q", cfg.HederaNetwork)
	}
}

func TestLoadConfigFromOverrides(t *testing.T) {
	cfg, err := LoadConfigFrom(map[string]string{
		"POINTS_LEDGER":      "HEDERA",
		"SOLANA_NETWORK":     "localnet",
		"HEDERA_NETWORK":     "Mainnet",
		"AIRDROP_AMOUNT":     "1000",
		"AIRDROP_ATTEMPTS":   "2",
		"CONFIRM_TIMEOUT":    "5s",
		"BRAND_MINTS_FILE":   "/tmp/mints.json",
		"POINTS_JOURNAL_DIR": "/tmp/journal",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ledger != LedgerHedera {
		t.Fatalf("expected hedera ledger, got %q", cfg.Ledger)
	}
	if cfg.SolanaNetwork != SolanaLocalnetEndpoint {
		t.Fatalf("expected localnet endpoint, got %q", cfg.SolanaNetwork)
	}
	if cfg.HederaNetwork != NetworkMainnet {
		t.Fatalf("expected mainnet, got %q", cfg.HederaNetwork)
	}
	if cfg.AirdropAmount != 1000 || cfg.AirdropAttempts != 2 {
		t.Fatalf("unexpected airdrop settings %d/%d", cfg.AirdropAmount, cfg.AirdropAttempts)
	}
	if cfg.ConfirmTimeout != 5*time.Second {
		t.Fatalf("expected 5s, got %s", cfg.ConfirmTimeout)
	}
	if cfg.BrandMintsFile != "/tmp/mints.json" || cfg.JournalDir != "/tmp/journal" {
		t.Fatalf("unexpected paths %q %q", cfg.BrandMintsFile, cfg.JournalDir)
	}
}

func TestLoadConfigFromRejectsInvalidValues(t *testing.T) {
	cases := []map[string]string{
		{"POINTS_LEDGER": "bitcoin"},
		{"SOLANA_NETWORK": "ftp://rpc"},
		{"HEDERA_NETWORK": "previewnet"},
		{"AIRDROP_ATTEMPTS": "0"},
		{"AIRDROP_AMOUNT": "0"},
		{"AIRDROP_AMOUNT": "lots"},
		{"CONFIRM_TIMEOUT": "-1s"},
	}

	for _, environment := range cases {
		if _, err := LoadConfigFrom(environment); err == nil {
			t.Fatalf("expected error for %v", environment)
		}
	}
}
