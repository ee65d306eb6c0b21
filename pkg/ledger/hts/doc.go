// Package hts implements ledger.Client on the Hedera Token Service.
//
// The operator account (HEDERA_ACCOUNT_ID / HEDERA_PRIVATE_KEY) pays every
// fee and is the treasury of every brand token. The admin keypair becomes
// the admin, supply and wipe key of the tokens it creates, so minting lands
// in the treasury and is then transferred to the recipient, and burning from
// a holder other than the treasury is a wipe.
//
// Keypairs map to alias account IDs (0.0.<DER public key>). Transfers to an
// alias that has no account yet create it; reads resolve aliases to account
// numbers through the mirror node.
//
// Balances, token info and metadata are read from the mirror node, so they
// trail consensus by a few seconds.
package hts
