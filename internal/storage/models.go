package storage

import "time"

// ChunkRecord is one indexed text chunk. The ID is the composite chunk
// identifier ("{document_id}:{i}", or "{project_id}:{path}:{i}" for
// archive members) and matches the identifier carried in the vector
// store payload.
type ChunkRecord struct {
	ID         string
	DocumentID string // UUID of the ingestion event
	ProjectID  string // Set for archive members; groups one upload
	Filename   string // Origin filename, empty for raw text
	Path       string // Member path within an archive, otherwise empty
	ChunkIndex int    // 0-based position within the source document
	Text       string
	CreatedAt  time.Time
}
