package points

import (
	"bytes"
	"encoding/json"

	"github.com/sammyshakes/solana-points-go/pkg/ledger"
	"github.com/sammyshakes/solana-points-go/pkg/registry"
)

// BalanceEntry is one brand balance in a BalanceMap.
type BalanceEntry struct {
	Name    string
	Balance float64
}

// BalanceMap maps brand names to balances in insertion order. Setting an
// existing name replaces its value and keeps its position.
type BalanceMap struct {
	names  []string
	values map[string]float64
}

func NewBalanceMap() *BalanceMap {
	return &BalanceMap{values: map[string]float64{}}
}

func (balances *BalanceMap) Set(name string, balance float64) {
	if _, exists := balances.values[name]; !exists {
		balances.names = append(balances.names, name)
	}
	balances.values[name] = balance
}

func (balances *BalanceMap) Get(name string) (float64, bool) {
	value, exists := balances.values[name]
	return value, exists
}

func (balances *BalanceMap) Len() int {
	return len(balances.names)
}

// Entries returns the balances in insertion order.
func (balances *BalanceMap) Entries() []BalanceEntry {
	entries := make([]BalanceEntry, 0, len(balances.names))
	for _, name := range balances.names {
		entries = append(entries, BalanceEntry{Name: name, Balance: balances.values[name]})
	}
	return entries
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (balances *BalanceMap) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for index, name := range balances.names {
		if index > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(balances.values[name])
		if err != nil {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		buffer.Write(value)
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// BrandOptions tunes CreateBrandMint.
type BrandOptions struct {
	URI            string
	Decimals       *uint8
	TokenProgramID string
}

type BrandResult struct {
	Record    registry.MintRecord
	Decimals  uint8
	Signature string
}

// TxSummary describes a completed token write.
type TxSummary struct {
	Brand     registry.MintRecord
	Wallet    string
	Amount    ledger.TokenAmount
	Signature string
}

type FundResult struct {
	Address   string
	Amount    ledger.TokenAmount
	Signature string
	Attempts  int
}

type BrandDetails struct {
	Record   registry.MintRecord
	Info     ledger.MintInfo
	Metadata ledger.Metadata
}
