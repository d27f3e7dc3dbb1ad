package lifecycle

import (
	"fmt"
	"strings"

	"vetcare/internal/domain/entities"
	"vetcare/internal/domain/validation"
)

var (
	ErrUnknownStatus        = fmt.Errorf("%w: unknown status", validation.ErrConstraintViolation)
	ErrTransitionNotAllowed = fmt.Errorf("%w: transition not allowed", validation.ErrConstraintViolation)
)

// Mode selects how status updates are checked.
type Mode string

const (
	// Permissive accepts any member of the status enum as the next status.
	Permissive Mode = "permissive"
	// Strict additionally requires an edge in the machine's transition table.
	Strict Mode = "strict"
)

func ModeFor(strict bool) Mode {
	if strict {
		return Strict
	}
	return Permissive
}

// TransitionError describes a rejected status update.
type TransitionError struct {
	Entity string
	From   string
	To     string
	Err    error
}

func (e *TransitionError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("%s status %q: %v", e.Entity, e.To, e.Err)
	}
	return fmt.Sprintf("%s status %q -> %q: %v", e.Entity, e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// Engine decides status changes. It holds no entity state.
type Engine struct {
	mode Mode
}

func NewEngine(mode Mode) *Engine {
	if mode != Strict {
		mode = Permissive
	}
	return &Engine{mode: mode}
}

func (e *Engine) Mode() Mode {
	return e.mode
}

// Next validates a requested status against m and returns the status to store.
// An empty current status is read as the machine's initial status.
func Next[S ~string](e *Engine, m *Machine[S], current, requested S) (S, error) {
	requested = S(strings.TrimSpace(string(requested)))
	if !m.Valid(requested) {
		return current, &TransitionError{Entity: m.Entity(), From: string(current), To: string(requested), Err: ErrUnknownStatus}
	}
	if current == "" {
		current = m.Initial()
	}
	if e.mode == Strict && !m.Allows(current, requested) {
		return current, &TransitionError{Entity: m.Entity(), From: string(current), To: string(requested), Err: ErrTransitionNotAllowed}
	}
	return requested, nil
}

func (e *Engine) Booking(current, requested entities.BookingStatus) (entities.BookingStatus, error) {
	return Next(e, BookingMachine, current, requested)
}

func (e *Engine) Appointment(current, requested entities.AppointmentStatus) (entities.AppointmentStatus, error) {
	return Next(e, AppointmentMachine, current, requested)
}

func (e *Engine) Invoice(current, requested entities.InvoiceStatus) (entities.InvoiceStatus, error) {
	return Next(e, InvoiceMachine, current, requested)
}
