package jobs

import (
	"sync"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
)

// InMemorySchedule holds the pending delivery progressions, keyed by
// delivery id. Safe for concurrent use: the HTTP path schedules tasks while
// the progression job reads and removes them.
//
// The schedule is not persisted. See the package documentation for the
// restart behavior.
type InMemorySchedule struct {
	mu    sync.Mutex
	tasks map[kernel.UUID]commands.ProgressionTask
}

// NewInMemorySchedule creates an empty schedule.
func NewInMemorySchedule() *InMemorySchedule {
	return &InMemorySchedule{
		tasks: make(map[kernel.UUID]commands.ProgressionTask),
	}
}

// Schedule registers a task. Scheduling the same delivery again overwrites
// the previous task.
func (s *InMemorySchedule) Schedule(task commands.ProgressionTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.DeliveryID] = task
}

// Tasks returns a snapshot of the pending tasks.
func (s *InMemorySchedule) Tasks() []commands.ProgressionTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]commands.ProgressionTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot = append(snapshot, task)
	}
	return snapshot
}

// Remove drops the task for the delivery. Removing an unknown delivery is
// a no-op.
func (s *InMemorySchedule) Remove(deliveryID kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tasks, deliveryID)
}
