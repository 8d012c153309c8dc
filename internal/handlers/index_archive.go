package handlers

import (
	"archive/zip"
	"errors"
	"net/http"

	"ragquery/internal/contextutil"
)

// IndexArchiveHandler handles HTTP requests to index a zip archive upload.
type IndexArchiveHandler struct {
	pipeline Ingestor
}

// NewIndexArchiveHandler creates a new IndexArchiveHandler.
func NewIndexArchiveHandler(pipeline Ingestor) *IndexArchiveHandler {
	return &IndexArchiveHandler{pipeline: pipeline}
}

// IndexArchiveResponse represents the HTTP response payload for archive
// indexing.
type IndexArchiveResponse struct {
	Status    string `json:"status"`
	ProjectID string `json:"project_id"`
	Files     int    `json:"files"`
	Chunks    int    `json:"chunks"`
}

// ServeHTTP handles HTTP requests to index an uploaded zip archive.
func (h *IndexArchiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeIngestError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	filename, content, ok := readUpload(w, r)
	if !ok {
		return
	}

	summary, err := h.pipeline.IndexArchive(ctx, filename, content)
	if err != nil {
		logger.ErrorContext(ctx, "archive indexing failed", "filename", filename, "error", err)
		status := http.StatusBadGateway
		if errors.Is(err, zip.ErrFormat) {
			status = http.StatusBadRequest
		}
		writeIngestError(w, status, err.Error())
		return
	}

	writeIngestJSON(w, http.StatusOK, IndexArchiveResponse{
		Status:    "ok",
		ProjectID: summary.ProjectID,
		Files:     summary.Files,
		Chunks:    summary.Chunks,
	})
}
