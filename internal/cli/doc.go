// Package cli implements the solana-points command tree on cobra.
//
// Results are written to stdout, logs and errors to stderr. Execute maps any
// command failure to exit status 1.
package cli
