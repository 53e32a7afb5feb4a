package a2a

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
)

// Executor runs the agent's work for one inbound message, reporting
// progress through the updater.
type Executor interface {
	Execute(ctx context.Context, rc *RequestContext, updater *TaskUpdater) error
}

// Server exposes one agent over HTTP: its card at
// /.well-known/agent.json and the JSON-RPC endpoint at /.
type Server struct {
	card     AgentCard
	executor Executor
	store    *TaskStore
}

// NewServer wires a card and executor to a fresh task store.
func NewServer(card AgentCard, executor Executor) *Server {
	return &Server{card: card, executor: executor, store: NewTaskStore()}
}

// Store exposes the task store, mainly for tests and status reporting.
func (s *Server) Store() *TaskStore { return s.store }

// Router builds the gin engine with the protocol routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.GET("/.well-known/agent.json", s.handleCard)
	r.POST("/", s.handleRPC)
	r.GET("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleCard(c *gin.Context) {
	c.JSON(http.StatusOK, s.card)
}

func (s *Server) handleHealth(c *gin.Context) {
	submitted, completed, failed := s.store.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"agent":           s.card.Name,
		"tasks_submitted": submitted,
		"tasks_completed": completed,
		"tasks_failed":    failed,
	})
}

func (s *Server) handleRPC(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, errorResponse(nil, CodeInvalidRequest, "invalid JSON-RPC request"))
		return
	}
	if req.JSONRPC != "2.0" {
		c.JSON(http.StatusOK, errorResponse(req.ID, CodeInvalidRequest, "unsupported jsonrpc version"))
		return
	}

	switch req.Method {
	case MethodSendMessage:
		s.handleSendMessage(c, req)
	case MethodGetTask:
		s.handleGetTask(c, req)
	default:
		c.JSON(http.StatusOK, errorResponse(req.ID, CodeMethodNotFound, "unknown method "+req.Method))
	}
}

func (s *Server) handleSendMessage(c *gin.Context, req Request) {
	var params SendMessageParams
	if err := json.Unmarshal(req.Params, &params); err != nil || len(params.Message.Parts) == 0 {
		c.JSON(http.StatusOK, errorResponse(req.ID, CodeInvalidParams, "message/send requires a message with parts"))
		return
	}

	taskID := params.Message.TaskID
	if taskID == "" {
		taskID = xid.New().String()
	}
	contextID := params.Message.ContextID
	if contextID == "" {
		contextID = xid.New().String()
	}

	rc := &RequestContext{Message: params.Message, TaskID: taskID, ContextID: contextID}
	updater := NewTaskUpdater(s.store, taskID, contextID)

	if err := s.executor.Execute(c.Request.Context(), rc, updater); err != nil {
		log.Printf("[A2A] agent=%s task=%s execute failed: %v", s.card.Name, taskID, err)
		updater.Fail(err)
	}

	c.JSON(http.StatusOK, resultResponse(req.ID, updater.Task()))
}

func (s *Server) handleGetTask(c *gin.Context, req Request) {
	var params GetTaskParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.ID == "" {
		c.JSON(http.StatusOK, errorResponse(req.ID, CodeInvalidParams, "tasks/get requires a task id"))
		return
	}
	task := s.store.Get(params.ID)
	if task == nil {
		c.JSON(http.StatusOK, errorResponse(req.ID, CodeInvalidParams, "unknown task "+params.ID))
		return
	}
	c.JSON(http.StatusOK, resultResponse(req.ID, task))
}

func resultResponse(id json.RawMessage, result any) Response {
	raw, err := json.Marshal(result)
	if err != nil {
		return errorResponse(id, CodeInternalError, "marshal result: "+err.Error())
	}
	return Response{JSONRPC: "2.0", ID: id, Result: raw}
}

func errorResponse(id json.RawMessage, code int, message string) Response {
	return Response{JSONRPC: "2.0", ID: id, Error: &Error{Code: code, Message: message}}
}

const requestIDKey = "request_id"

// requestID tags every request for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = xid.New().String()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// requestLogger prints a minimal per-request line.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f",
			c.GetString(requestIDKey),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
		)
	}
}
