package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sammyshakes/solana-points-go/pkg/journal"
	"github.com/sammyshakes/solana-points-go/pkg/keystore"
	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/points"
	"github.com/sammyshakes/solana-points-go/pkg/registry"
	"github.com/sammyshakes/solana-points-go/pkg/shared"
)

type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// LoadConfig defaults to shared.LoadConfig.
	LoadConfig func() (shared.Config, error)
	// NewLedger defaults to NewLedger.
	NewLedger LedgerFactory
}

// app holds the per-invocation state shared by the commands.
type app struct {
	options Options
	flags   globalFlags

	config  shared.Config
	logger  zerolog.Logger
	ledger  ledger.Client
	journal *journal.Journal
}

type globalFlags struct {
	ledger   string
	logLevel string
}

func newApp(options Options) *app {
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}
	if options.Stderr == nil {
		options.Stderr = os.Stderr
	}
	if options.LoadConfig == nil {
		options.LoadConfig = shared.LoadConfig
	}
	if options.NewLedger == nil {
		options.NewLedger = NewLedger
	}
	return &app{options: options, logger: zerolog.Nop()}
}

// setup loads configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config, err := a.options.LoadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ledger") {
		normalized, err := shared.NormalizeLedger(a.flags.ledger)
		if err != nil {
			return err
		}
		config.Ledger = normalized
	}
	if cmd.Flags().Changed("log-level") {
		config.LogLevel = a.flags.logLevel
	}

	logger, err := shared.NewLogger(config.LogLevel, a.options.Stderr)
	if err != nil {
		return err
	}
	a.config = config
	a.logger = logger
	return nil
}

func (a *app) close() {
	if a.journal != nil {
		if err := a.journal.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("failed to close journal")
		}
		a.journal = nil
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.options.Stdout, format, args...)
}

func (a *app) ledgerClient() (ledger.Client, error) {
	if a.ledger != nil {
		return a.ledger, nil
	}
	client, err := a.options.NewLedger(a.config, a.logger)
	if err != nil {
		return nil, err
	}
	a.ledger = client
	return client, nil
}

func (a *app) adminStore() (*keystore.Store, error) {
	return keystore.NewStore(a.config.AdminKeypairFile)
}

func (a *app) userStore() (*keystore.UserStore, error) {
	return keystore.NewUserStore(a.config.UserKeypairDir)
}

func (a *app) registry() (*registry.Registry, error) {
	return registry.New(a.config.BrandMintsFile)
}

// openJournal opens the journal once. A journal that cannot be opened is
// logged and skipped.
func (a *app) openJournal() *journal.Journal {
	if a.journal != nil {
		return a.journal
	}
	opened, err := journal.Open(a.config.JournalDir, journal.Options{})
	if err != nil {
		a.logger.Warn().Err(err).Str("dir", a.config.JournalDir).Msg("journal unavailable")
		return nil
	}
	a.journal = opened
	return opened
}

// service wires the brand service around the stored admin keypair.
func (a *app) service() (*points.Service, error) {
	store, err := a.adminStore()
	if err != nil {
		return nil, err
	}
	admin, err := store.Load()
	if err != nil {
		var notFound keystore.CredentialNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w; run 'create-wallet' first", err)
		}
		return nil, err
	}
	client, err := a.ledgerClient()
	if err != nil {
		return nil, err
	}
	mints, err := a.registry()
	if err != nil {
		return nil, err
	}
	users, err := a.userStore()
	if err != nil {
		return nil, err
	}

	return points.NewService(points.ServiceConfig{
		Admin:    admin,
		Ledger:   client,
		Registry: mints,
		Users:    users,
		Journal:  a.openJournal(),
		Funding: points.FunderConfig{
			Amount:   a.config.AirdropAmount,
			Attempts: a.config.AirdropAttempts,
		},
		Logger: a.logger,
	})
}
