package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to one remote agent over the JSON-RPC endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	card       *AgentCard
}

// NewClient builds a client for the agent served at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// ResolveCard fetches and caches the remote agent card.
func (c *Client) ResolveCard(ctx context.Context) (*AgentCard, error) {
	if c.card != nil {
		return c.card, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/.well-known/agent.json", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resolve card %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resolve card %s: status %d", c.baseURL, resp.StatusCode)
	}
	var card AgentCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("resolve card %s: %w", c.baseURL, err)
	}
	c.card = &card
	return c.card, nil
}

// SendMessage posts a message/send call and returns the resulting task.
func (c *Client) SendMessage(ctx context.Context, msg Message) (*Task, error) {
	params, err := json.Marshal(SendMessageParams{Message: msg})
	if err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, MethodSendMessage, params)
	if err != nil {
		return nil, err
	}
	var task Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return &task, nil
}

// SendText wraps text in a fresh user message bound to the context id and
// returns the concatenated text of the resulting task.
func (c *Client) SendText(ctx context.Context, contextID, text string) (string, *Task, error) {
	msg := NewTextMessage(uuid.NewString(), text)
	msg.ContextID = contextID
	task, err := c.SendMessage(ctx, msg)
	if err != nil {
		return "", nil, err
	}
	return task.Text(), task, nil
}

// GetTask fetches a previously submitted task by id.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	params, err := json.Marshal(GetTaskParams{ID: taskID})
	if err != nil {
		return nil, err
	}
	raw, err := c.call(ctx, MethodGetTask, params)
	if err != nil {
		return nil, err
	}
	var task Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, fmt.Errorf("decode task: %w", err)
	}
	return &task, nil
}

func (c *Client) call(ctx context.Context, method string, params json.RawMessage) (json.RawMessage, error) {
	id, _ := json.Marshal(uuid.NewString())
	body, err := json.Marshal(Request{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, c.baseURL, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: status %d", method, c.baseURL, resp.StatusCode)
	}
	var rpcResp Response
	if err := json.Unmarshal(payload, &rpcResp); err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, c.baseURL, err)
	}
	if rpcResp.Error != nil {
		return nil, fmt.Errorf("%s %s: %w", method, c.baseURL, rpcResp.Error)
	}
	return rpcResp.Result, nil
}
