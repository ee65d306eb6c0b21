// Package solana_points_go is a brand points toolkit: it keeps a local admin
// wallet, creates fungible brand token mints, mints, burns and transfers
// brand points, and aggregates a wallet's balances across every registered
// brand.
//
// # Ledgers
//
// Solana is the default ledger (SPL Token and Token-2022, with Metaplex
// metadata). Hedera Token Service is available with POINTS_LEDGER=hedera.
//
// # Packages
//
//   - pkg/keystore: admin and per-user ed25519 keypair files
//   - pkg/registry: the append-only brand_mints.json registry
//   - pkg/ledger: the ledger driver contract, amounts and errors
//   - pkg/ledger/solana, pkg/ledger/hts: ledger drivers
//   - pkg/ledger/ledgertest: an in-memory ledger
//   - pkg/mirror: Hedera mirror node REST client
//   - pkg/journal: goleveldb log of ledger writes
//   - pkg/points: balance aggregation, faucet funding and brand operations
//   - pkg/shared: configuration, networks and logging
//
// # Command Line
//
//	go install github.com/sammyshakes/solana-points-go/cmd/solana-points@latest
//	solana-points create-wallet
//	solana-points airdrop
//	solana-points create-brand Coffee COF
//	solana-points mint-tokens COF <wallet> 25
//	solana-points get-all-balances <wallet> --hide-zero
package solana_points_go
