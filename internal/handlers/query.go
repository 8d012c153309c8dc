package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ragquery/internal/contextutil"
	"ragquery/internal/rag"
)

// QueryHandler handles HTTP requests for RAG queries.
type QueryHandler struct {
	engine rag.Engine
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(engine rag.Engine) *QueryHandler {
	return &QueryHandler{engine: engine}
}

// QueryRequest represents the HTTP request payload for queries.
type QueryRequest struct {
	Question string `json:"question"`
	K        int    `json:"k,omitempty"`
}

// QueryResponse represents the HTTP response payload for queries.
type QueryResponse struct {
	Answer      string   `json:"answer"`
	ContextDocs []string `json:"context_docs"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for RAG queries. Collaborator failures
// come back as HTTP 200 with the error text in the answer field, so
// callers that only inspect "answer" see a uniform shape.
func (h *QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Question == "" {
		logger.WarnContext(ctx, "empty question in request")
		h.writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	resp, err := h.engine.Ask(ctx, rag.AskRequest{Question: req.Question, K: req.K})
	if err != nil {
		logger.ErrorContext(ctx, "query failed", "error", err)
		h.writeJSON(w, http.StatusOK, QueryResponse{
			Answer:      fmt.Sprintf("Error answering question: %s", err),
			ContextDocs: []string{},
		})
		return
	}

	if resp.ContextDocs == nil {
		resp.ContextDocs = []string{}
	}
	h.writeJSON(w, http.StatusOK, QueryResponse{Answer: resp.Answer, ContextDocs: resp.ContextDocs})
}

func (h *QueryHandler) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes an error response.
func (h *QueryHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(w, statusCode, ErrorResponse{Error: message})
}
