// Package ledger defines the contract every ledger driver implements and the
// amount helpers shared by them.
//
// A Client wraps one ledger SDK. The toolkit ships two drivers: the Solana
// driver in package ledger/solana and the Hedera Token Service driver in
// package ledger/hts. Package ledger/ledgertest provides an in-memory Client
// for tests.
//
// Amounts travel as raw integers in the mint's smallest unit. ParseAmount and
// FormatAmount convert between raw integers and decimal strings without
// floating point error:
//
//	raw, err := ledger.ParseAmount("12.5", 9) // 12500000000
//	text := ledger.FormatAmount(raw, 9)      // "12.5"
package ledger
