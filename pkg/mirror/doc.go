// Package mirror is a small Hedera Mirror Node REST client used by the
// Hedera ledger driver to read token metadata, token balances and account
// records without submitting transactions.
//
//	client, err := mirror.NewClient(mirror.Config{Network: "testnet"})
//	if err != nil {
//		return err
//	}
//	balance, found, err := client.GetAccountTokenBalance(ctx, "0.0.1234", "0.0.5678")
//
// A 404 from the mirror node surfaces as a StatusError whose NotFound method
// reports true.
package mirror
