package delivery

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
//	ASSIGNED ──> PICKED_UP ──> DELIVERED
//
// There is no cycle, no cancellation, and no way to accelerate the
// progression: the two transitions are driven exclusively by the progression
// engine's timers.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status when a delivery is created for a
	// confirmed order.
	Assigned

	// PickedUp indicates the delivery partner collected the order.
	PickedUp

	// Delivered indicates the order reached the customer. Terminal.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		Delivered: "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "ASSIGNED",
		PickedUp:  "PICKED_UP",
		Delivered: "DELIVERED",
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("ASSIGNED", "PICKED_UP", "DELIVERED").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// PickUp transitions the status to PickedUp. Only Assigned deliveries can be
// picked up; the progression never revisits a state.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}

	return PickedUp, nil
}

// Complete transitions the status to Delivered. Only PickedUp deliveries can
// complete, so the machine cannot skip the PICKED_UP state.
func (s Status) Complete() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Delivered, nil
}
