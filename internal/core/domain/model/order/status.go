package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The intended progression is strictly forward:
//
//	PLACED ──> CONFIRMED ──> PREPARING ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │             │               │
//	   └────────────┴─────────────┴───────────────┴──> CANCELLED
//
// CANCELLED is a terminal escape reachable from any non-terminal state.
// The transition table is exposed through CanTransitionTo, but the status
// update entry point does not enforce it: any authenticated caller (including
// the delivery progression callback) may overwrite the status freely. That
// permissiveness is observed production behavior and is kept on purpose.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when an order is created,
	// before payment has settled.
	Placed

	// Confirmed indicates payment settled successfully.
	Confirmed

	// Preparing indicates the restaurant is working on the order.
	Preparing

	// OutForDelivery indicates the delivery partner picked the order up.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled is the terminal escape from any non-terminal state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "PLACED",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// ParseStatus converts the wire representation ("PLACED", "CONFIRMED", ...)
// into a Status. Unrecognized values fail with a ValueIsInvalidError.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the Status holds one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("PLACED", "OUT_FOR_DELIVERY", ...).
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether moving from s to next follows the intended
// forward-only progression (or the CANCELLED escape). Advisory only: see the
// Status doc for why the update entry point does not call this.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}

	if s == Delivered || s == Cancelled {
		return false
	}

	if next == Cancelled {
		return true
	}

	return next == s+1
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Placed -> Confirmed (payment settled)
//
// Any other starting state fails with a ValueIsInvalidError. This is the only
// transition the order saga performs itself; everything downstream arrives
// through the status update entry point.
func (s Status) Confirm() (Status, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}
