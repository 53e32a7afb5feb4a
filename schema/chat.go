package schema

import "encoding/json"

// Input is a basic chat message input schema
type Input struct {
	// ChatMessage is the message sent by the user to the assistant.
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The message sent by the user to the assistant." validate:"required"`
}

// NewInput returns a new Input instance
func NewInput(msg string) *Input {
	return &Input{
		ChatMessage: msg,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output is a basic chat message output schema
type Output struct {
	// ChatMessage is the response message from the assistant.
	ChatMessage string `json:"chat_message" jsonschema:"title=chat_message,description=The response generated by the assistant." validate:"required"`
}

// NewOutput returns a new Output instance
func NewOutput(msg string) *Output {
	return &Output{
		ChatMessage: msg,
	}
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}
