package handlers

import (
	"encoding/json"
	"net/http"

	"ragquery/internal/contextutil"
)

// IndexHandler handles HTTP requests to index raw text snippets.
type IndexHandler struct {
	pipeline Ingestor
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(pipeline Ingestor) *IndexHandler {
	return &IndexHandler{pipeline: pipeline}
}

// IndexRequest represents the HTTP request payload for text indexing.
type IndexRequest struct {
	Text string `json:"text"`
	ID   string `json:"id,omitempty"`
}

// IndexResponse represents the HTTP response payload for text and file
// indexing.
type IndexResponse struct {
	Status     string   `json:"status"`
	DocumentID string   `json:"document_id"`
	IndexedIDs []string `json:"indexed_ids"`
	Chunks     int      `json:"chunks"`
	Filename   string   `json:"filename,omitempty"`
}

// ServeHTTP handles HTTP requests to index raw text.
func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeIngestError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req IndexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeIngestError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.pipeline.IndexText(ctx, req.Text, req.ID)
	if err != nil {
		logger.ErrorContext(ctx, "text indexing failed", "error", err)
		writeIngestError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeIngestJSON(w, http.StatusOK, IndexResponse{
		Status:     "ok",
		DocumentID: summary.DocumentID,
		IndexedIDs: nonNilIDs(summary.IDs),
		Chunks:     summary.Chunks,
	})
}

func nonNilIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

// IngestErrorResponse represents an ingestion error response.
type IngestErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

func writeIngestJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func writeIngestError(w http.ResponseWriter, statusCode int, detail string) {
	writeIngestJSON(w, statusCode, IngestErrorResponse{Status: "error", Detail: detail})
}
