package handlers

import (
	"context"

	"ragquery/internal/ingest"
)

//go:generate mockgen -source=ingestor.go -destination=mocks/mock_ingestor.go -package=mocks

// Ingestor indexes raw text, files, and archives into the retrieval store.
type Ingestor interface {
	IndexText(ctx context.Context, text, id string) (ingest.Summary, error)
	IndexFile(ctx context.Context, filename string, content []byte) (ingest.Summary, error)
	IndexArchive(ctx context.Context, name string, data []byte) (ingest.ArchiveSummary, error)
}
