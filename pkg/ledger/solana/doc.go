// Package solana implements ledger.Client on Solana with the blocto
// solana-go-sdk.
//
// Brand tokens are SPL Token (or Token-2022) mints whose mint and freeze
// authority is the admin keypair. Holders keep their balance in the
// associated token account derived for the mint's token program, created on
// demand when tokens are minted or transferred to a new wallet.
//
//	client, err := solana.NewClient(solana.Config{
//		Endpoint:       "https://api.devnet.solana.com",
//		ConfirmTimeout: time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//	created, err := client.CreateMint(ctx, admin, ledger.CreateMintParams{
//		Name:   "Coffee Club",
//		Symbol: "CAFE",
//	})
//
// Every write waits for the transaction to reach the confirmed commitment.
package solana
