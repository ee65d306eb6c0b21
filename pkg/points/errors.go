package points

import "fmt"

type PointsError struct {
	Message string
}

func (errorValue PointsError) Error() string {
	return errorValue.Message
}

// FundingExhaustedError reports that every airdrop attempt failed. LastErr
// is the error of the final attempt.
type FundingExhaustedError struct {
	PointsError
	Address  string
	Attempts int
	LastErr  error
}

func (errorValue FundingExhaustedError) Unwrap() error {
	return errorValue.LastErr
}

func NewFundingExhaustedError(address string, attempts int, lastErr error) error {
	return FundingExhaustedError{
		PointsError: PointsError{Message: fmt.Sprintf("airdrop to %s failed after %d attempts: %v", address, attempts, lastErr)},
		Address:     address,
		Attempts:    attempts,
		LastErr:     lastErr,
	}
}

type UnknownWalletError struct {
	PointsError
	Reference string
}

func NewUnknownWalletError(reference string, cause error) error {
	return UnknownWalletError{
		PointsError: PointsError{Message: fmt.Sprintf("%q is neither a stored user nor a valid address: %v", reference, cause)},
		Reference:   reference,
	}
}
