package order

import (
	"fmt"
	"slices"

	"ordermanagement/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Paid ──> Cancelled
//	   │                    ▲
//	   └────────────────────┘
//
// Cancelled is terminal. The allowed edges live in a single table,
// consulted by CanTransitionTo and TransitionTo.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Paid indicates the order has been paid for.
	Paid

	// Cancelled indicates the order was cancelled. No further transitions.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "PENDING",
	Paid:      "PAID",
	Cancelled: "CANCELLED",
}

var transitions = map[Status][]Status{
	Pending:   {Paid, Cancelled},
	Paid:      {Cancelled},
	Cancelled: {},
}

// Statuses returns all valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Paid, Cancelled}
}

// ParseStatus converts a wire literal such as "PAID" into a Status.
// Matching is case-sensitive.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of Pending, Paid or Cancelled.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire literal of the status, or "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether the edge s -> to exists in the transition table.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(transitions[s], to)
}

// TransitionTo returns the target status when the edge s -> to is allowed,
// otherwise an InvalidTransitionError naming both statuses.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(to) {
		return Unknown, errs.NewInvalidTransitionError(s, to)
	}
	return to, nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
