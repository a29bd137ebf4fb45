package store

import (
	"errors" // Sentinel errors and inspection

	"github.com/mattn/go-sqlite3" // Driver error codes for constraint violations
)

// ErrCustomerNotFound is returned when no customer matches the given ID
var ErrCustomerNotFound = errors.New("customer not found")

// ErrEmailTaken is returned when a write would duplicate a registered email
var ErrEmailTaken = errors.New("email already registered")

// asConflict maps a unique-constraint violation from the driver onto
// ErrEmailTaken; any other error is returned unchanged
func asConflict(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrEmailTaken
	}
	return err
}
