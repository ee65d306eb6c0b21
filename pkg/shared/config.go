package shared

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the toolkit configuration read from the environment.
type Config struct {
	Ledger           string `env:"POINTS_LEDGER" envDefault:"solana"`
	SolanaNetwork    string `env:"SOLANA_NETWORK" envDefault:"https://api.devnet.solana.com"`
	AdminKeypairFile string `env:"ADMIN_KEYPAIR_FILE" envDefault:"admin_keypair.json"`
	BrandMintsFile   string `env:"BRAND_MINTS_FILE" envDefault:"brand_mints.json"`
	UserKeypairDir   string `env:"USER_KEYPAIR_DIR" envDefault:"users"`
	JournalDir       string `env:"POINTS_JOURNAL_DIR" envDefault:".points-journal"`

	HederaNetwork      string `env:"HEDERA_NETWORK" envDefault:"testnet"`
	HederaMirrorURL    string `env:"HEDERA_MIRROR_URL"`
	HederaMirrorAPIKey string `env:"HEDERA_MIRROR_API_KEY"`

	AirdropAmount   uint64        `env:"AIRDROP_AMOUNT" envDefault:"2000000000"`
	AirdropAttempts int           `env:"AIRDROP_ATTEMPTS" envDefault:"5"`
	ConfirmTimeout  time.Duration `env:"CONFIRM_TIMEOUT" envDefault:"60s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig loads .env and parses the process environment.
func LoadConfig() (Config, error) {
	LoadDotEnv()
	return parseConfig(env.Options{})
}

// LoadConfigFrom parses the given variables instead of the process
// environment.
func LoadConfigFrom(environment map[string]string) (Config, error) {
	return parseConfig(env.Options{Environment: environment})
}

func parseConfig(options env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, options); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	ledger, err := NormalizeLedger(cfg.Ledger)
	if err != nil {
		return Config{}, err
	}
	cfg.Ledger = ledger

	endpoint, err := ResolveSolanaEndpoint(cfg.SolanaNetwork)
	if err != nil {
		return Config{}, err
	}
	cfg.SolanaNetwork = endpoint

	network, err := NormalizeNetwork(cfg.HederaNetwork)
	if err != nil {
		return Config{}, err
	}
	cfg.HederaNetwork = network

	if cfg.AirdropAttempts < 1 {
		return Config{}, fmt.Errorf("AIRDROP_ATTEMPTS must be at least 1, got %d", cfg.AirdropAttempts)
	}
	if cfg.AirdropAmount == 0 {
		return Config{}, fmt.Errorf("AIRDROP_AMOUNT must be greater than zero")
	}
	if cfg.ConfirmTimeout <= 0 {
		return Config{}, fmt.Errorf("CONFIRM_TIMEOUT must be positive, got %s", cfg.ConfirmTimeout)
	}

	return cfg, nil
}
