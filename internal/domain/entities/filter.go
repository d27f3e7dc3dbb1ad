package entities

import "time"

// ListFilter narrows an Entity Store listing. Zero fields match everything.
//
// From/To bound checkIn for bookings and createdAt for every other kind.
type ListFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
	Query  string
	NIC    string
	Owner  string
	PetID  string
}

// InRange reports whether t falls inside [From, To].
func (f ListFilter) InRange(t time.Time) bool {
	if f.From != nil && t.Before(*f.From) {
		return false
	}
	if f.To != nil && t.After(*f.To) {
		return false
	}
	return true
}
