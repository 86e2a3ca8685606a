package service

import (
	"database/sql"
	"errors"
	"fmt"
)

// Sentinel errors for the HTTP layer to map onto status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("already exists")
	ErrInUse        = errors.New("referenced by existing records")
)

// generateRetryFactor bounds the unique-value retry loops: a batch of N
// records gets at most 100*N candidate draws before the namespace is
// considered exhausted.
const generateRetryFactor = 100

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateAmount(amount int32) error {
	if amount < 1 {
		return invalidf("amount must be greater than 0")
	}
	return nil
}

// notFound translates the driver's no-rows error into the service taxonomy.
func notFound(err error, entity string, id int32) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d %w", entity, id, ErrNotFound)
	}
	return err
}
