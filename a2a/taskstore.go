package a2a

import (
	"sync"

	"go.uber.org/atomic"
)

// TaskStore keeps tasks in memory so finished work stays retrievable via
// tasks/get. Counters track lifecycle totals for the status endpoint.
type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*Task

	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
}

// NewTaskStore returns an empty store.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[string]*Task)}
}

// Save inserts or replaces a task, bookkeeping the lifecycle counters on
// state transitions. The store keeps a snapshot, not the caller's pointer,
// so readers never observe a task the executor is still mutating.
func (s *TaskStore) Save(task *Task) {
	snapshot := *task
	snapshot.Artifacts = append([]Artifact(nil), task.Artifacts...)
	snapshot.History = append([]Message(nil), task.History...)

	s.mu.Lock()
	prev, existed := s.tasks[task.ID]
	s.tasks[task.ID] = &snapshot
	s.mu.Unlock()

	if !existed {
		s.submitted.Inc()
	}
	prevState := TaskState("")
	if existed {
		prevState = prev.Status.State
	}
	if prevState != task.Status.State {
		switch task.Status.State {
		case TaskStateCompleted:
			s.completed.Inc()
		case TaskStateFailed:
			s.failed.Inc()
		}
	}
}

// Get returns the task with the given id, or nil.
func (s *TaskStore) Get(id string) *Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks[id]
}

// Stats reports lifecycle totals: submitted, completed, failed.
func (s *TaskStore) Stats() (submitted, completed, failed int64) {
	return s.submitted.Load(), s.completed.Load(), s.failed.Load()
}
