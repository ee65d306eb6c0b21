package cli

import (
	"github.com/spf13/cobra"

	"github.com/sammyshakes/solana-points-go/pkg/keystore"
	"github.com/sammyshakes/solana-points-go/pkg/points"
)

func newMintTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mint-tokens <brand> <user> <amount>",
		Short: "Mint brand tokens to a user",
		Long:  "Mint brand tokens to a user. <brand> is a mint address, name or symbol; <user> is a wallet address or stored username.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			summary, err := service.MintTokens(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			a.printf("Minted %s %s tokens to user: %s\n", summary.Amount, brandSymbol(summary), summary.Wallet)
			a.printf("Signature: %s\n", summary.Signature)
			return nil
		},
	}
}

func newBurnTokensCommand(a *app) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "burn-tokens <brand> <amount>",
		Short: "Burn brand tokens from the admin or a stored user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			holder := keystore.Keypair{}
			if username != "" {
				holder, err = service.LoadUser(username)
				if err != nil {
					return err
				}
			}
			summary, err := service.BurnTokens(cmd.Context(), args[0], holder, args[1])
			if err != nil {
				return err
			}
			a.printf("Burned %s %s tokens from: %s\n", summary.Amount, brandSymbol(summary), summary.Wallet)
			a.printf("Signature: %s\n", summary.Signature)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "user", "", "Stored user to burn from (default: admin)")
	return cmd
}

func newTransferTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-tokens <brand> <fromUser> <to> <amount>",
		Short: "Transfer brand tokens from a stored user",
		Long:  "Transfer brand tokens from a stored user to a wallet address or stored username. The admin pays the fees.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			owner, err := service.LoadUser(args[1])
			if err != nil {
				return err
			}
			summary, err := service.TransferTokens(cmd.Context(), args[0], owner, args[2], args[3])
			if err != nil {
				return err
			}
			a.printf("Transferred %s %s tokens from %s to: %s\n", summary.Amount, brandSymbol(summary), args[1], summary.Wallet)
			a.printf("Signature: %s\n", summary.Signature)
			return nil
		},
	}
}

func brandSymbol(summary points.TxSummary) string {
	if summary.Brand.Symbol != "" {
		return summary.Brand.Symbol
	}
	return summary.Brand.Address
}
