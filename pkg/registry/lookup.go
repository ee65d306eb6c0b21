package registry

import "strings"

// FindByAddress returns the first record with the given mint address.
func (registry *Registry) FindByAddress(address string) (MintRecord, bool, error) {
	target := strings.TrimSpace(address)
	return registry.find(func(record MintRecord) bool {
		return record.Address == target
	})
}

// FindByName returns the first record with the given display name.
func (registry *Registry) FindByName(name string) (MintRecord, bool, error) {
	target := strings.TrimSpace(name)
	return registry.find(func(record MintRecord) bool {
		return record.Name == target
	})
}

// FindBySymbol returns the first record whose symbol matches, ignoring case.
func (registry *Registry) FindBySymbol(symbol string) (MintRecord, bool, error) {
	target := strings.TrimSpace(symbol)
	return registry.find(func(record MintRecord) bool {
		return strings.EqualFold(record.Symbol, target)
	})
}

// Resolve looks a brand reference up by address, then name, then symbol.
func (registry *Registry) Resolve(reference string) (MintRecord, error) {
	lookups := []func(string) (MintRecord, bool, error){
		registry.FindByAddress,
		registry.FindByName,
		registry.FindBySymbol,
	}
	for _, lookup := range lookups {
		record, found, err := lookup(reference)
		if err != nil {
			return MintRecord{}, err
		}
		if found {
			return record, nil
		}
	}
	return MintRecord{}, NewRecordNotFoundError(reference)
}

func (registry *Registry) find(match func(MintRecord) bool) (MintRecord, bool, error) {
	records, err := registry.LoadAll()
	if err != nil {
		return MintRecord{}, false, err
	}
	for _, record := range records {
		if match(record) {
			return record, true, nil
		}
	}
	return MintRecord{}, false, nil
}
