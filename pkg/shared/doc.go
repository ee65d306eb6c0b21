// Package shared holds the pieces every other package in the toolkit leans on:
// ledger and network normalization, environment configuration (including
// .env loading and Hedera operator credentials), Hedera client construction,
// key parsing and the zerolog logger used by the CLI.
//
// # Environment Variables
//
// LoadConfig reads the toolkit configuration from the process environment
// after loading the nearest .env file. Variables already present in the
// environment always win over .env entries.
//
//	POINTS_LEDGER          solana (default) or hedera
//	SOLANA_NETWORK         RPC URL or cluster name, default https://api.devnet.solana.com
//	ADMIN_KEYPAIR_FILE     default admin_keypair.json
//	BRAND_MINTS_FILE       default brand_mints.json
//	USER_KEYPAIR_DIR       default users
//	POINTS_JOURNAL_DIR     default .points-journal
//	HEDERA_NETWORK         mainnet or testnet (default)
//	HEDERA_MIRROR_URL      mirror node base URL override
//	HEDERA_MIRROR_API_KEY  bearer token for the mirror node
//	AIRDROP_AMOUNT         raw units per airdrop, default 2000000000
//	AIRDROP_ATTEMPTS       default 5
//	CONFIRM_TIMEOUT        default 60s
//	LOG_LEVEL              debug, info, warn or error
//
// Hedera operator credentials are resolved by OperatorConfigFromEnv.
package shared
