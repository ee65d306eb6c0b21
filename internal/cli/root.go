package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree.
func NewRootCommand(options Options) *cobra.Command {
	a := newApp(options)

	root := &cobra.Command{
		Use:   "solana-points",
		Short: "Brand points toolkit",
		Long: "Manage an admin wallet, create brand token mints and mint, burn, " +
			"transfer and query brand points on Solana or Hedera.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.options.Stdout)
	root.SetErr(a.options.Stderr)
	root.PersistentFlags().StringVar(&a.flags.ledger, "ledger", "", "Ledger to use: solana|hedera (overrides POINTS_LEDGER)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug|info|warn|error (overrides LOG_LEVEL)")

	root.AddCommand(
		newCreateWalletCommand(a),
		newCheckBalanceCommand(a),
		newAirdropCommand(a),
		newCreateBrandCommand(a),
		newListBrandsCommand(a),
		newTokenMetadataCommand(a),
		newMintTokensCommand(a),
		newBurnTokensCommand(a),
		newTransferTokensCommand(a),
		newGetBalanceCommand(a),
		newGetAllBalancesCommand(a),
		newCreateUserCommand(a),
		newListUsersCommand(a),
		newHistoryCommand(a),
	)
	for _, child := range root.Commands() {
		closeAfter(a, child)
	}
	return root
}

func closeAfter(a *app, cmd *cobra.Command) {
	run := cmd.RunE
	if run == nil {
		return
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer a.close()
		return run(cmd, args)
	}
}

// Execute runs the command tree and returns the process exit status.
func Execute(ctx context.Context, args []string, options Options) int {
	root := NewRootCommand(options)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}
