package journal

import "time"

const (
	OperationCreateBrand = "create-brand"
	OperationMint        = "mint"
	OperationBurn        = "burn"
	OperationTransfer    = "transfer"
	OperationAirdrop     = "airdrop"
)

// Entry is one recorded ledger write. Amount is the decimal rendering.
type Entry struct {
	ID        uint64    `json:"id"`
	Operation string    `json:"operation"`
	Ledger    string    `json:"ledger"`
	Mint      string    `json:"mint,omitempty"`
	Wallet    string    `json:"wallet,omitempty"`
	Amount    string    `json:"amount,omitempty"`
	Signature string    `json:"signature,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
