package commands

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// Progression thresholds measured from the delivery's creation time. A
// delivery is picked up once it has existed for PickUpAfter and completed
// once it has existed for DeliverAfter.
const (
	PickUpAfter  = 10 * time.Second
	DeliverAfter = 20 * time.Second
)

// ProgressionTask marks one delivery awaiting timed transitions. Tasks are
// keyed by delivery id and anchored at the delivery's creation timestamp.
type ProgressionTask struct {
	DeliveryID kernel.UUID
	OrderID    kernel.UUID
	CreatedAt  time.Time
}

// ProgressionScheduler registers deliveries for timed progression.
// AssignDeliveryCommandHandler schedules a task after the delivery commits.
type ProgressionScheduler interface {
	Schedule(task ProgressionTask)
}

// ProgressionSchedule is the full schedule contract used by the progression
// engine: register tasks, list pending ones, and drop tasks whose delivery
// reached its terminal status. Implementations hold tasks in memory only, so
// a restart abandons pending transitions and the delivery stays where it was.
type ProgressionSchedule interface {
	ProgressionScheduler
	Tasks() []ProgressionTask
	Remove(deliveryID kernel.UUID)
}
