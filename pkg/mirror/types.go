package mirror

type Key struct {
	Type string `json:"_type"`
	Key  string `json:"key"`
}

type AccountBalance struct {
	Balance   int64  `json:"balance"`
	Timestamp string `json:"timestamp"`
}

type AccountInfo struct {
	Account string         `json:"account"`
	Alias   string         `json:"alias"`
	Key     *Key           `json:"key"`
	Memo    string         `json:"memo"`
	Balance AccountBalance `json:"balance"`
	Deleted bool           `json:"deleted"`
}

type accountsResponse struct {
	Accounts []AccountInfo `json:"accounts"`
	Links    struct {
		Next string `json:"next"`
	} `json:"links"`
}

// TokenInfo is the mirror view of a token. Decimals and supply are strings
// in the REST payload.
type TokenInfo struct {
	TokenID           string `json:"token_id"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Decimals          string `json:"decimals"`
	TotalSupply       string `json:"total_supply"`
	TreasuryAccountID string `json:"treasury_account_id"`
	Type              string `json:"type"`
	SupplyType        string `json:"supply_type"`
	Memo              string `json:"memo"`
	Metadata          string `json:"metadata"`
	SupplyKey         *Key   `json:"supply_key"`
	AdminKey          *Key   `json:"admin_key"`
	Deleted           bool   `json:"deleted"`
}

type TokenRelationship struct {
	TokenID              string `json:"token_id"`
	Balance              int64  `json:"balance"`
	Decimals             int    `json:"decimals"`
	AutomaticAssociation bool   `json:"automatic_association"`
	FreezeStatus         string `json:"freeze_status"`
	KYCStatus            string `json:"kyc_status"`
}

type tokenRelationshipsResponse struct {
	Tokens []TokenRelationship `json:"tokens"`
	Links  struct {
		Next string `json:"next"`
	} `json:"links"`
}
