package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/points"
	"github.com/sammyshakes/solana-points-go/pkg/registry"
)

func newCreateBrandCommand(a *app) *cobra.Command {
	var (
		uri       string
		decimals  uint8
		token2022 bool
	)

	cmd := &cobra.Command{
		Use:   "create-brand <name> <symbol>",
		Short: "Create a new brand mint",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}

			options := points.BrandOptions{URI: uri}
			if cmd.Flags().Changed("decimals") {
				options.Decimals = &decimals
			}
			if token2022 {
				options.TokenProgramID = registry.Token2022ProgramID
			}

			result, err := service.CreateBrandMint(cmd.Context(), args[0], args[1], options)
			if err != nil {
				return err
			}
			a.printf("Created brand mint: %s\n", result.Record.Address)
			a.printf("Name: %s\nSymbol: %s\nDecimals: %d\n", result.Record.Name, result.Record.Symbol, result.Decimals)
			a.printf("Signature: %s\n", result.Signature)
			return a.printAdminBalance(cmd, service)
		},
	}
	cmd.Flags().StringVar(&uri, "uri", "", "Metadata URI stored with the mint")
	cmd.Flags().Uint8Var(&decimals, "decimals", ledger.DefaultDecimals, "Mint decimals")
	cmd.Flags().BoolVar(&token2022, "token-2022", false, "Create the mint under the Token-2022 program (Solana only)")
	return cmd
}

func newListBrandsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-brands",
		Short: "List the registered brand mints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mints, err := a.registry()
			if err != nil {
				return err
			}
			records, err := mints.LoadAll()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				a.printf("No brands registered\n")
				return nil
			}

			writer := tabwriter.NewWriter(a.options.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(writer, "NAME\tSYMBOL\tADDRESS")
			for _, record := range records {
				fmt.Fprintf(writer, "%s\t%s\t%s\n", record.Name, record.Symbol, record.Address)
			}
			return writer.Flush()
		},
	}
}

func newTokenMetadataCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "token-metadata <brand>",
		Short: "Show the on-ledger state and metadata of a brand mint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.service()
			if err != nil {
				return err
			}
			details, err := service.TokenMetadata(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			a.printf("Mint: %s\n", details.Record.Address)
			a.printf("Name: %s\n", details.Metadata.Name)
			a.printf("Symbol: %s\n", details.Metadata.Symbol)
			if details.Metadata.URI != "" {
				a.printf("URI: %s\n", details.Metadata.URI)
			}
			a.printf("Decimals: %d\n", details.Info.Decimals)
			a.printf("Supply: %s\n", ledger.FormatAmount(details.Info.Supply, details.Info.Decimals))
			if details.Info.MintAuthority != "" {
				a.printf("Mint authority: %s\n", details.Info.MintAuthority)
			}
			if details.Info.TokenProgramID != "" {
				a.printf("Token program: %s\n", details.Info.TokenProgramID)
			}
			return nil
		},
	}
}
