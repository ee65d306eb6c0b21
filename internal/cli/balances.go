package cli

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"
)

func newGetBalanceCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get-balance <brand> <user>",
		Short: "Get a user's balance of one brand",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			_, balance, err := service.TokenBalance(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			a.printf("Token balance: %s\n", formatBalance(balance))
			return nil
		},
	}
}

func newGetAllBalancesCommand(a *app) *cobra.Command {
	var hideZero bool

	cmd := &cobra.Command{
		Use:   "get-all-balances <user>",
		Short: "Get a user's balance of every registered brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			balances, err := service.AllBalances(cmd.Context(), args[0], hideZero)
			if err != nil {
				return err
			}
			encoded, err := json.MarshalIndent(balances, "", "  ")
			if err != nil {
				return err
			}
			a.printf("%s\n", encoded)
			return nil
		},
	}
	cmd.Flags().BoolVar(&hideZero, "hide-zero", false, "Leave out brands with a zero balance")
	return cmd
}

func formatBalance(balance float64) string {
	return strconv.FormatFloat(balance, 'f', -1, 64)
}
