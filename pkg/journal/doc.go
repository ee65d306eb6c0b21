// Package journal keeps a local log of the ledger writes made by the
// toolkit (brand creation, mint, burn, transfer, airdrop) in a goleveldb
// database.
//
// Entries are keyed by a big-endian sequence derived from the wall clock, so
// iteration order is append order even when the clock steps backwards.
package journal
