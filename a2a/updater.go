package a2a

import (
	"github.com/rs/xid"
)

// RequestContext is the inbound side of one message/send call.
type RequestContext struct {
	Message   Message
	TaskID    string
	ContextID string
}

// UserInput returns the concatenated text of the inbound message.
func (rc *RequestContext) UserInput() string {
	return rc.Message.Text()
}

// TaskUpdater mutates one task in its store as the executor progresses.
type TaskUpdater struct {
	store *TaskStore
	task  *Task
}

// NewTaskUpdater binds an updater to a fresh task in the store.
func NewTaskUpdater(store *TaskStore, taskID, contextID string) *TaskUpdater {
	task := &Task{
		ID:        taskID,
		ContextID: contextID,
		Status:    TaskStatus{State: TaskStateSubmitted},
	}
	store.Save(task)
	return &TaskUpdater{store: store, task: task}
}

// Task returns the underlying task.
func (u *TaskUpdater) Task() *Task { return u.task }

// StartWork marks the task working.
func (u *TaskUpdater) StartWork() {
	u.UpdateStatus(TaskStateWorking, nil)
}

// UpdateStatus sets the task state with an optional agent message.
func (u *TaskUpdater) UpdateStatus(state TaskState, msg *Message) {
	u.task.Status = TaskStatus{State: state, Message: msg}
	u.store.Save(u.task)
}

// AddArtifact attaches a named artifact to the task.
func (u *TaskUpdater) AddArtifact(name string, parts ...Part) {
	u.task.Artifacts = append(u.task.Artifacts, Artifact{
		ArtifactID: xid.New().String(),
		Name:       name,
		Parts:      parts,
	})
	u.store.Save(u.task)
}

// Complete marks the task completed with an optional closing message.
func (u *TaskUpdater) Complete(msg *Message) {
	u.UpdateStatus(TaskStateCompleted, msg)
}

// Fail marks the task failed, recording the error text.
func (u *TaskUpdater) Fail(err error) {
	msg := AgentMessage(u.task, err.Error())
	u.UpdateStatus(TaskStateFailed, &msg)
}

// AgentMessage builds an agent-role text message bound to the task.
func AgentMessage(task *Task, text string) Message {
	return Message{
		Role:      "agent",
		Parts:     []Part{TextPart(text)},
		MessageID: xid.New().String(),
		TaskID:    task.ID,
		ContextID: task.ContextID,
	}
}
