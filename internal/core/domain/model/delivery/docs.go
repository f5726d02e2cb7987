// Package delivery contains the Delivery aggregate and its progression
// Status state machine.
//
// A delivery is created ASSIGNED when an order is confirmed and then advanced
// by the progression engine: PICKED_UP ten seconds after creation, DELIVERED
// twenty seconds after creation. The transitions are strictly forward and
// strictly enforced here, unlike the order status which stays permissive at
// its update entry point.
package delivery
