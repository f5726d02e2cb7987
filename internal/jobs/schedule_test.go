package jobs_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/jobs"
)

func newTask() commands.ProgressionTask {
	return commands.ProgressionTask{
		DeliveryID: kernel.NewUUID(),
		OrderID:    kernel.NewUUID(),
		CreatedAt:  time.Now(),
	}
}

func TestInMemorySchedule_ScheduleAndTasks(t *testing.T) {
	schedule := jobs.NewInMemorySchedule()
	first := newTask()
	second := newTask()

	schedule.Schedule(first)
	schedule.Schedule(second)

	tasks := schedule.Tasks()
	require.Len(t, tasks, 2)

	ids := []kernel.UUID{tasks[0].DeliveryID, tasks[1].DeliveryID}
	assert.Contains(t, ids, first.DeliveryID)
	assert.Contains(t, ids, second.DeliveryID)
}

func TestInMemorySchedule_ScheduleSameDeliveryOverwrites(t *testing.T) {
	schedule := jobs.NewInMemorySchedule()
	task := newTask()

	schedule.Schedule(task)

	updated := task
	updated.CreatedAt = task.CreatedAt.Add(time.Minute)
	schedule.Schedule(updated)

	tasks := schedule.Tasks()
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].CreatedAt.Equal(updated.CreatedAt))
}

func TestInMemorySchedule_Remove(t *testing.T) {
	schedule := jobs.NewInMemorySchedule()
	task := newTask()

	schedule.Schedule(task)
	schedule.Remove(task.DeliveryID)

	assert.Empty(t, schedule.Tasks())
}

func TestInMemorySchedule_RemoveUnknownIsNoOp(t *testing.T) {
	schedule := jobs.NewInMemorySchedule()
	schedule.Schedule(newTask())

	schedule.Remove(kernel.NewUUID())

	assert.Len(t, schedule.Tasks(), 1)
}

func TestInMemorySchedule_ConcurrentAccess(t *testing.T) {
	schedule := jobs.NewInMemorySchedule()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			task := newTask()
			schedule.Schedule(task)
			schedule.Tasks()
			schedule.Remove(task.DeliveryID)
		}()
	}
	wg.Wait()

	assert.Empty(t, schedule.Tasks())
}
