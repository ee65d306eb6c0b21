package ledger

import (
	"math/big"
	"regexp"
	"strings"
)

var decimalRegex = regexp.MustCompile(`^(\d+)(?:\.(\d*))?$`)

// ParseAmount converts a non-negative decimal string into raw units.
func ParseAmount(value string, decimals uint8) (uint64, error) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, ".") {
		trimmed = "0" + trimmed
	}
	matches := decimalRegex.FindStringSubmatch(trimmed)
	if matches == nil {
		return 0, NewInvalidAmountError(value, "expected a non-negative decimal number")
	}

	whole := matches[1]
	fraction := strings.TrimRight(matches[2], "0")
	if len(fraction) > int(decimals) {
		return 0, NewInvalidAmountError(value, "more decimal places than the mint supports")
	}
	fraction += strings.Repeat("0", int(decimals)-len(fraction))

	raw, ok := new(big.Int).SetString(whole+fraction, 10)
	if !ok {
		return 0, NewInvalidAmountError(value, "expected a non-negative decimal number")
	}
	if !raw.IsUint64() {
		return 0, NewInvalidAmountError(value, "amount exceeds the ledger maximum")
	}
	return raw.Uint64(), nil
}

// FormatAmount renders raw units as a decimal string without trailing zeros.
func FormatAmount(raw uint64, decimals uint8) string {
	digits := new(big.Int).SetUint64(raw).String()
	if decimals == 0 {
		return digits
	}

	width := int(decimals)
	if len(digits) <= width {
		digits = strings.Repeat("0", width-len(digits)+1) + digits
	}
	whole := digits[:len(digits)-width]
	fraction := strings.TrimRight(digits[len(digits)-width:], "0")
	if fraction == "" {
		return whole
	}
	return whole + "." + fraction
}
