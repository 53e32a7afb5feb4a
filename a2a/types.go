// Package a2a implements the agent-to-agent wire protocol: agent cards,
// messages, tasks and the JSON-RPC envelope they travel in, plus the
// HTTP client and gin server speaking it.
package a2a

import (
	"encoding/json"
	"strings"
)

// AgentCard describes an agent at /.well-known/agent.json.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	DefaultInputModes  []string          `json:"defaultInputModes,omitempty"`
	DefaultOutputModes []string          `json:"defaultOutputModes,omitempty"`
	Capabilities       AgentCapabilities `json:"capabilities"`
	Skills             []AgentSkill      `json:"skills"`
}

// AgentCapabilities advertises optional protocol features.
type AgentCapabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

// AgentSkill is one advertised capability on a card.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// Part is a typed fragment of a message or artifact. Only text parts are
// used here.
type Part struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Type: "text", Text: text}
}

// Message is one conversational turn addressed to or produced by an agent.
type Message struct {
	Role      string `json:"role"`
	Parts     []Part `json:"parts"`
	MessageID string `json:"messageId,omitempty"`
	TaskID    string `json:"taskId,omitempty"`
	ContextID string `json:"contextId,omitempty"`
}

// NewTextMessage builds a user message holding a single text part.
func NewTextMessage(messageID, text string) Message {
	return Message{
		Role:      "user",
		Parts:     []Part{TextPart(text)},
		MessageID: messageID,
	}
}

// Text concatenates the message's text parts.
func (m Message) Text() string {
	var sb strings.Builder
	for _, p := range m.Parts {
		if p.Type == "text" {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// TaskState enumerates the lifecycle states of a task.
type TaskState string

const (
	TaskStateSubmitted     TaskState = "submitted"
	TaskStateWorking       TaskState = "working"
	TaskStateInputRequired TaskState = "input_required"
	TaskStateCompleted     TaskState = "completed"
	TaskStateFailed        TaskState = "failed"
	TaskStateCanceled      TaskState = "canceled"
)

// Terminal reports whether the state ends the task lifecycle.
func (s TaskState) Terminal() bool {
	switch s {
	case TaskStateCompleted, TaskStateFailed, TaskStateCanceled:
		return true
	}
	return false
}

// TaskStatus is the current state of a task plus an optional agent message.
type TaskStatus struct {
	State   TaskState `json:"state"`
	Message *Message  `json:"message,omitempty"`
}

// Artifact is a named output attached to a completed task.
type Artifact struct {
	ArtifactID string `json:"artifactId,omitempty"`
	Name       string `json:"name"`
	Parts      []Part `json:"parts"`
}

// Text concatenates the artifact's text parts.
func (a Artifact) Text() string {
	var sb strings.Builder
	for _, p := range a.Parts {
		if p.Type == "text" {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// Task tracks one unit of work through the agent.
type Task struct {
	ID        string     `json:"id"`
	ContextID string     `json:"contextId,omitempty"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
	History   []Message  `json:"history,omitempty"`
}

// Text concatenates all artifact text, falling back to the status message.
func (t *Task) Text() string {
	var sb strings.Builder
	for _, a := range t.Artifacts {
		sb.WriteString(a.Text())
	}
	if sb.Len() == 0 && t.Status.Message != nil {
		return t.Status.Message.Text()
	}
	return sb.String()
}

// Artifact returns the named artifact's text and whether it exists.
func (t *Task) Artifact(name string) (string, bool) {
	for _, a := range t.Artifacts {
		if a.Name == name {
			return a.Text(), true
		}
	}
	return "", false
}

// JSON-RPC 2.0 envelope.

const (
	MethodSendMessage = "message/send"
	MethodGetTask     = "tasks/get"
)

// JSON-RPC error codes.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is an incoming JSON-RPC call.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// SendMessageParams carries the message for message/send.
type SendMessageParams struct {
	Message Message `json:"message"`
}

// GetTaskParams identifies the task for tasks/get.
type GetTaskParams struct {
	ID string `json:"id"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// Response is an outgoing JSON-RPC reply, carrying either a result or an
// error.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}
