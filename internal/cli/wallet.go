package cli

import (
	"github.com/spf13/cobra"

	"github.com/sammyshakes/solana-points-go/pkg/points"
)

func newCreateWalletCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create-wallet",
		Short: "Create a new admin wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.adminStore()
			if err != nil {
				return err
			}
			keypair, err := store.Create()
			if err != nil {
				return err
			}
			a.printf("New admin keypair generated and saved to %s\n", store.Path())
			a.printf("Admin public key: %s\n", keypair.Address())
			return nil
		},
	}
}

func newCheckBalanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-balance",
		Short: "Check the native balance of the admin wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			return a.printAdminBalance(cmd, service)
		},
	}
}

func newAirdropCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "airdrop",
		Short: "Request test-network funds for the admin wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			result, err := service.Fund(cmd.Context())
			if err != nil {
				return err
			}
			a.printf("Airdrop completed: %s %s to %s (attempt %d)\n",
				result.Amount, nativeUnit(service.Ledger().Name()), result.Address, result.Attempts)
			a.printf("Signature: %s\n", result.Signature)
			return a.printAdminBalance(cmd, service)
		},
	}
}

func (a *app) printAdminBalance(cmd *cobra.Command, service *points.Service) error {
	address, err := service.AdminAddress()
	if err != nil {
		return err
	}
	balance, err := service.AdminBalance(cmd.Context())
	if err != nil {
		return err
	}
	a.printf("Admin address: %s\n", address)
	a.printf("Admin balance: %s %s\n", balance, nativeUnit(service.Ledger().Name()))
	return nil
}
