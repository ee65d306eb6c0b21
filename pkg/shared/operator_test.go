package shared

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

const testPrivateKey = "302e020100300506032b65700422042091132178e72057a1d7528025956fe39b0b847f200ab59b2fdd367017f3087137"

var operatorEnvKeys = []string{
	"HEDERA_NETWORK",
	"NETWORK",
	"HEDERA_ACCOUNT_ID",
	"HEDERA_OPERATOR_ID",
	"OPERATOR_ID",
	"HEDERA_PRIVATE_KEY",
	"HEDERA_OPERATOR_KEY",
	"OPERATOR_KEY",
	"MAINNET_HEDERA_ACCOUNT_ID",
	"MAINNET_HEDERA_OPERATOR_ID",
	"MAINNET_OPERATOR_ID",
	"MAINNET_HEDERA_PRIVATE_KEY",
	"MAINNET_HEDERA_OPERATOR_KEY",
	"MAINNET_OPERATOR_KEY",
	"TESTNET_HEDERA_ACCOUNT_ID",
	"TESTNET_HEDERA_OPERATOR_ID",
	"TESTNET_OPERATOR_ID",
	"TESTNET_HEDERA_PRIVATE_KEY",
	"TESTNET_HEDERA_OPERATOR_KEY",
	"TESTNET_OPERATOR_KEY",
}

func resetOperatorEnv(t *testing.T) {
	t.Helper()
	dotenvLoadOnce = sync.Once{}
	dotenvLoadOnce.Do(func() {})
	for _, key := range operatorEnvKeys {
		t.Setenv(key, "")
	}
}

func TestFirstNonEmptyEnv(t *testing.T) {
	os.Setenv("_TEST_FIRST_A", "")
	os.Setenv("_TEST_FIRST_B", "hello")
	defer os.Unsetenv("_TEST_FIRST_A")
	defer os.Unsetenv("_TEST_FIRST_B")

	result := firstNonEmptyEnv("_TEST_FIRST_A", "_TEST_FIRST_B")
	if result != "hello" {
		t.Fatalf("expected 'hello', got %q", result)
	}
}

func TestFirstNonEmptyEnvAllEmpty(t *testing.T) {
	result := firstNonEmptyEnv("_TEST_NONEXISTENT_1", "_TEST_NONEXISTENT_2")
	if result != "" {
		t.Fatalf("expected empty string, got %q", result)
	}
}

func TestFirstNonEmptyEnvTrimsWhitespace(t *testing.T) {
	os.Setenv("_TEST_WS", "   ")
	defer os.Unsetenv("_TEST_WS")

	result := firstNonEmptyEnv("_TEST_WS")
	if result != "" {
		t.Fatalf("expected empty string for whitespace-only, got %q", result)
	}
}

func TestParsePrivateKeyEmpty(t *testing.T) {
	_, err := ParsePrivateKey("")
	if err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestParsePrivateKeyWhitespace(t *testing.T) {
	_, err := ParsePrivateKey("   ")
	if err == nil {
		t.Fatal("expected error for whitespace key")
	}
}

func TestParsePrivateKeyInvalid(t *testing.T) {
	_, err := ParsePrivateKey("notavalidkey")
	if err == nil {
		t.Fatal("expected error for invalid key")
	}
}

func TestOperatorConfigFromEnvMissingAccountID(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	_, err := OperatorConfigFromEnv()
	if err == nil {
		t.Fatal("expected error for missing account ID")
	}
}

func TestOperatorConfigFromEnvMissingPrivateKey(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")

	_, err := OperatorConfigFromEnv()
	if err == nil {
		t.Fatal("expected error for missing private key")
	}
}

func TestOperatorConfigFromEnvSuccessTestnet(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_NETWORK", "testnet")
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.12345" {
		t.Fatalf("expected account ID '0.0.12345', got %q", config.AccountID)
	}
	if config.Network != "testnet" {
		t.Fatalf("expected network 'testnet', got %q", config.Network)
	}
}

func TestOperatorConfigFromEnvScopedMainnet(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_NETWORK", "mainnet")
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.11111")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)
	t.Setenv("MAINNET_HEDERA_ACCOUNT_ID", "0.0.99999")
	t.Setenv("MAINNET_HEDERA_PRIVATE_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.99999" {
		t.Fatalf("expected scoped mainnet account ID '0.0.99999', got %q", config.AccountID)
	}
}

func TestOperatorConfigFromEnvScopedTestnet(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_NETWORK", "testnet")
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.11111")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)
	t.Setenv("TESTNET_HEDERA_ACCOUNT_ID", "0.0.88888")
	t.Setenv("TESTNET_HEDERA_PRIVATE_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.88888" {
		t.Fatalf("expected scoped testnet account ID '0.0.88888', got %q", config.AccountID)
	}
}

func TestOperatorConfigFromEnvDefaultNetwork(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != "testnet" {
		t.Fatalf("expected default network 'testnet', got %q", config.Network)
	}
}

func TestOperatorConfigFromEnvFallbackOperatorKeys(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("OPERATOR_ID", "0.0.77777")
	t.Setenv("OPERATOR_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.77777" {
		t.Fatalf("expected '0.0.77777', got %q", config.AccountID)
	}
}

func TestFindDotEnvWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}
	envPath := filepath.Join(root, ".env")
	if err := os.WriteFile(envPath, []byte("SOLANA_NETWORK=devnet\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	found, ok := findDotEnv(nested)
	if !ok {
		t.Fatal("expected .env to be found")
	}
	if found != envPath {
		t.Fatalf("expected %q, got %q", envPath, found)
	}
}

func TestFindDotEnvIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".env"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	found, ok := findDotEnv(root)
	if ok && found == filepath.Join(root, ".env") {
		t.Fatal("expected a .env directory to be skipped")
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	content := "_TEST_DOTENV_PREEXIST=overridden\n_TEST_DOTENV_NEW=\"quoted value\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv("_TEST_DOTENV_PREEXIST", "original")
	t.Setenv("_TEST_DOTENV_NEW", "")
	os.Unsetenv("_TEST_DOTENV_NEW")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dotenvLoadOnce = sync.Once{}
	LoadDotEnv()

	if os.Getenv("_TEST_DOTENV_PREEXIST") != "original" {
		t.Fatalf("expected 'original' (not overridden), got %q", os.Getenv("_TEST_DOTENV_PREEXIST"))
	}
	if os.Getenv("_TEST_DOTENV_NEW") != "quoted value" {
		t.Fatalf("expected 'quoted value', got %q", os.Getenv("_TEST_DOTENV_NEW"))
	}
}

func TestOperatorConfigFromEnvUnsupportedNetwork(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_NETWORK", "previewnet")
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	if _, err := OperatorConfigFromEnv(); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestPrivateKeyFromSeed(t *testing.T) {
	seed := make([]byte, 32)
	for index := range seed {
		seed[index] = byte(index + 1)
	}

	key, err := PrivateKeyFromSeed(seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := PrivateKeyFromSeed(seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.PublicKey().String() != again.PublicKey().String() {
		t.Fatal("expected the same seed to produce the same key")
	}
}

func TestPrivateKeyFromSeedWrongLength(t *testing.T) {
	if _, err := PrivateKeyFromSeed(make([]byte, 64)); err == nil {
		t.Fatal("expected error for 64-byte seed")
	}
}

func TestParsePrivateKeyValidEd25519(t *testing.T) {
	key, err := ParsePrivateKey(testPrivateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.String() == "" {
		t.Fatal("expected non-empty key string")
	}
}
