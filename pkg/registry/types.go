package registry

const (
	// TokenProgramID is the classic SPL Token program.
	TokenProgramID = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	// Token2022ProgramID is the Token Extensions program.
	Token2022ProgramID = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
)

// MintRecord describes one brand token mint.
type MintRecord struct {
	Address        string `json:"address"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	TokenProgramID string `json:"tokenProgramId,omitempty"`
}

// ProgramID returns the record's token program, defaulting to SPL Token.
func (record MintRecord) ProgramID() string {
	if record.TokenProgramID == "" {
		return TokenProgramID
	}
	return record.TokenProgramID
}
