package plan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/nakachan-ing/lifeos-cli/internal/model"
)

var ErrTaskNotFound = errors.New("task not found in plan")

// Service is the slice of the API client the controller needs.
type Service interface {
	FetchPlan(ctx context.Context, childID int) ([]model.Task, error)
	SetTaskCompletion(ctx context.Context, taskID int, completed bool) (model.Task, error)
}

// Controller owns the task collection for one child/day. Toggles are
// optimistic: the local flag flips immediately, then the server response
// either confirms (adopting server-computed fields) or rolls the task back
// to its pre-toggle snapshot. Overlapping toggles on the same task are
// serialized on a per-task lock; different tasks never block each other.
type Controller struct {
	svc     Service
	childID int

	mu     sync.Mutex
	tasks  []model.Task
	closed bool

	lockMu    sync.Mutex
	taskLocks map[int]*sync.Mutex
}

func NewController(svc Service, childID int) *Controller {
	return &Controller{
		svc:       svc,
		childID:   childID,
		taskLocks: make(map[int]*sync.Mutex),
	}
}

// Load fetches the plan and replaces the collection.
func (c *Controller) Load(ctx context.Context) error {
	tasks, err := c.svc.FetchPlan(ctx, c.childID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// Late response after disposal: discard
		return nil
	}
	c.tasks = tasks
	return nil
}

func (c *Controller) ChildID() int {
	return c.childID
}

// Tasks returns a copy of the current collection in plan order.
func (c *Controller) Tasks() []model.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	tasks := make([]model.Task, len(c.tasks))
	copy(tasks, c.tasks)
	return tasks
}

// CompletionPercent is derived, never stored: rounded percentage of
// completed tasks, 0 for an empty collection.
func (c *Controller) CompletionPercent() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.tasks) == 0 {
		return 0
	}
	completed := 0
	for _, task := range c.tasks {
		if task.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(c.tasks))))
}

func (c *Controller) taskLock(taskID int) *sync.Mutex {
	c.lockMu.Lock()
	defer c.lockMu.Unlock()
	lock, ok := c.taskLocks[taskID]
	if !ok {
		lock = &sync.Mutex{}
		c.taskLocks[taskID] = lock
	}
	return lock
}

// Toggle flips one task's completion flag optimistically, then confirms
// against the server. On failure the task reverts to its snapshot and the
// error is returned for display.
func (c *Controller) Toggle(ctx context.Context, taskID int, completed bool) (model.Task, error) {
	lock := c.taskLock(taskID)
	lock.Lock()
	defer lock.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return model.Task{}, fmt.Errorf("plan controller is closed")
	}
	index := -1
	for i := range c.tasks {
		if c.tasks[i].ID == taskID {
			index = i
			break
		}
	}
	if index == -1 {
		c.mu.Unlock()
		return model.Task{}, fmt.Errorf("%w: id %d", ErrTaskNotFound, taskID)
	}

	snapshot := c.tasks[index]
	c.tasks[index].Completed = completed
	c.mu.Unlock()

	serverTask, err := c.svc.SetTaskCompletion(ctx, taskID, completed)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// Late response after disposal: discard, do not touch state
		if err != nil {
			return model.Task{}, err
		}
		return serverTask, nil
	}

	if err != nil {
		c.tasks[index] = snapshot
		return model.Task{}, err
	}

	c.tasks[index] = serverTask
	return serverTask, nil
}

// Close marks the controller disposed. Responses that arrive afterwards
// are discarded instead of mutating state.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
