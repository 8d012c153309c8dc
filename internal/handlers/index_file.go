package handlers

import (
	"io"
	"net/http"

	"ragquery/internal/contextutil"
)

// maxUploadBytes caps multipart uploads for both single files and archives.
const maxUploadBytes = 64 << 20

// IndexFileHandler handles HTTP requests to index a single uploaded file.
type IndexFileHandler struct {
	pipeline Ingestor
}

// NewIndexFileHandler creates a new IndexFileHandler.
func NewIndexFileHandler(pipeline Ingestor) *IndexFileHandler {
	return &IndexFileHandler{pipeline: pipeline}
}

// ServeHTTP handles HTTP requests to index an uploaded file.
func (h *IndexFileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	summary, err := h.pipeline.IndexFile(ctx, filename, content)
	if err != nil {
		logger.ErrorContext(ctx, "file indexing failed", "filename", filename, "error", err)
		writeIngestError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeIngestJSON(w, http.StatusOK, IndexResponse{
		Status:     "ok",
		DocumentID: summary.DocumentID,
		IndexedIDs: nonNilIDs(summary.IDs),
		Chunks:     summary.Chunks,
		Filename:   summary.Filename,
	})
}

// readUpload extracts the "file" part from a multipart request. It writes
// the error response itself when the upload is missing or unreadable.
func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "missing file upload", "error", err)
		writeIngestError(w, http.StatusBadRequest, "A file upload named 'file' is required")
		return "", nil, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.WarnContext(ctx, "failed to read upload", "error", err)
		writeIngestError(w, http.StatusBadRequest, "Failed to read uploaded file")
		return "", nil, false
	}

	return header.Filename, content, true
}
