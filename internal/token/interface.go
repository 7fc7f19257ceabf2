package token

import "context"

//go:generate mockery --name=Transferrer --output=../../tests/mocks --outpkg=mocks --filename=mock_transferrer.go
// Transferrer is the boundary with the external value-transfer service.
// Both calls are all-or-nothing: on a nil return the full amount moved, on
// an error return no value moved at all. The ledger relies on that contract
// to keep its counters consistent with custody.
type Transferrer interface {
	// Pull moves amount from the given account into ledger custody.
	Pull(ctx context.Context, from string, amount uint64) error
	// Push moves amount from ledger custody to the given account.
	Push(ctx context.Context, to string, amount uint64) error
}
