package payment

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the settlement state of a payment.
//
//	PENDING ──┬──> SUCCESS
//	          └──> FAILED
//
// Both SUCCESS and FAILED are terminal; there is no refund or void flow in
// this system, so a payment is written once and never revisited.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status assigned when a payment is created.
	Pending

	// Success indicates the payment settled. Terminal.
	Success

	// Failed indicates the payment was declined. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Pending: "PENDING",
		Success: "SUCCESS",
		Failed:  "FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending: "PENDING",
		Success: "SUCCESS",
		Failed:  "FAILED",
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("PENDING", "SUCCESS", "FAILED").
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Settle transitions the status to Success. Only Pending payments settle.
func (s Status) Settle() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to settle", s.String()),
		)
	}

	return Success, nil
}

// Decline transitions the status to Failed. Only Pending payments decline.
func (s Status) Decline() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to decline", s.String()),
		)
	}

	return Failed, nil
}
