package usecase

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every per-entity not-found error.
var ErrNotFound = errors.New("not found")

var (
	ErrBookingNotFound     = fmt.Errorf("booking %w", ErrNotFound)
	ErrAppointmentNotFound = fmt.Errorf("appointment %w", ErrNotFound)
	ErrInvoiceNotFound     = fmt.Errorf("invoice %w", ErrNotFound)
	ErrPetNotFound         = fmt.Errorf("pet %w", ErrNotFound)

	ErrInvalidID         = errors.New("invalid id")
	ErrInvoiceNotPayable = errors.New("invoice not payable")
)
