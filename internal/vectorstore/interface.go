package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks ragquery/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata.
type Point struct {
	ID   string // Point UUID (derived from the chunk identifier)
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a search result from vector search.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// Upsert inserts or updates points in the collection. The three
	// parallel attributes of a point (vector, id, metadata) travel
	// together, so no length mismatch is possible at this boundary.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns up to k nearest points, best first. Fewer than k
	// results (including none) is not an error.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// EnsureCollection creates the collection if missing, or validates its
	// vector size if present.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// CollectionExists checks if a collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)
}
