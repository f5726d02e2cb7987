// Package order contains the Order aggregate, its Item value object, and the
// order lifecycle Status state machine.
//
// An order is created in PLACED status by the create-order saga, moved to
// CONFIRMED when payment settles, and afterwards mutated only through the
// status update entry point. The Status type documents the intended
// forward-only progression; the aggregate's OverrideStatus method is
// deliberately permissive to match observed behavior, with CanTransitionTo
// available to callers that want the table enforced.
package order
