// Package points orchestrates brand point tokens on top of a ledger.Client:
// it aggregates a wallet's balances across every registered brand mint,
// funds the admin wallet from a faucet with bounded retries, and runs the
// brand operations (create, mint, burn, transfer, metadata) that the CLI
// exposes.
//
// Balance lookups are fail-open: a missing token account or a failed query
// counts as zero. Everything else fails closed.
package points
