package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"ragquery/internal/chunker"
	"ragquery/internal/contextutil"
	"ragquery/internal/storage"
	"ragquery/internal/vectorstore"
)

// Embedder turns a batch of texts into vectors, one per text.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Pipeline chunks incoming text and stores chunk vectors in the vector
// store and chunk texts in SQLite. A fresh UUID is drawn per ingestion
// call, so identifiers from different calls never collide and no state
// is shared between calls.
type Pipeline struct {
	selector    *chunker.Selector
	chunkRepo   storage.ChunkStore
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	logger      *slog.Logger
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	selector *chunker.Selector,
	chunkRepo storage.ChunkStore,
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
) *Pipeline {
	return &Pipeline{
		selector:    selector,
		chunkRepo:   chunkRepo,
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		logger:      slog.Default(),
	}
}

// Summary reports the outcome of a text or file ingestion.
type Summary struct {
	DocumentID string
	IDs        []string
	Chunks     int
	Filename   string
}

// IndexText ingests a raw text snippet using the word chunker. id is an
// optional caller-supplied document id; when empty a fresh UUID is drawn.
// A single-chunk document keeps the bare document id as its identifier;
// multi-chunk documents get a ":{i}" suffix per chunk.
func (p *Pipeline) IndexText(ctx context.Context, text, id string) (Summary, error) {
	logger := contextutil.LoggerFromContext(ctx)

	docID := id
	if docID == "" {
		docID = uuid.New().String()
	}

	chunks := p.selector.Word().Chunk(text)
	if len(chunks) == 0 {
		logger.InfoContext(ctx, "empty text, nothing indexed", "document_id", docID)
		return Summary{DocumentID: docID}, nil
	}

	records := make([]*storage.ChunkRecord, len(chunks))
	for i, c := range chunks {
		chunkID := docID
		if len(chunks) > 1 {
			chunkID = fmt.Sprintf("%s:%d", docID, i)
		}
		records[i] = &storage.ChunkRecord{
			ID:         chunkID,
			DocumentID: docID,
			ChunkIndex: i,
			Text:       c,
		}
	}

	if err := p.store(ctx, records); err != nil {
		return Summary{}, err
	}

	logger.InfoContext(ctx, "text indexed", "document_id", docID, "chunks", len(records))
	return Summary{DocumentID: docID, IDs: recordIDs(records), Chunks: len(records)}, nil
}

// IndexFile ingests one uploaded file. The chunking strategy is selected
// from the filename's extension; identifiers are "{uuid}:{i}".
func (p *Pipeline) IndexFile(ctx context.Context, filename string, content []byte) (Summary, error) {
	logger := contextutil.LoggerFromContext(ctx)

	docID := uuid.New().String()
	text := decodeText(content)

	chunks := p.selector.ForFilename(filename).Chunk(text)
	if len(chunks) == 0 {
		logger.InfoContext(ctx, "empty file, nothing indexed", "filename", filename, "document_id", docID)
		return Summary{DocumentID: docID, Filename: filename}, nil
	}

	records := make([]*storage.ChunkRecord, len(chunks))
	for i, c := range chunks {
		records[i] = &storage.ChunkRecord{
			ID:         fmt.Sprintf("%s:%d", docID, i),
			DocumentID: docID,
			Filename:   filename,
			ChunkIndex: i,
			Text:       c,
		}
	}

	if err := p.store(ctx, records); err != nil {
		return Summary{}, err
	}

	logger.InfoContext(ctx, "file indexed", "filename", filename, "document_id", docID, "chunks", len(records))
	return Summary{DocumentID: docID, IDs: recordIDs(records), Chunks: len(records), Filename: filename}, nil
}

// store embeds the chunk texts and writes them to the vector store and
// the chunk repository. All three parallel sequences (texts, identifiers,
// metadata) are carried by the records, so alignment is structural.
func (p *Pipeline) store(ctx context.Context, records []*storage.ChunkRecord) error {
	texts := make([]string, len(records))
	for i, r := range records {
		texts[i] = r.Text
	}

	vectors, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(vectors) != len(records) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(records), len(vectors))
	}

	points := make([]vectorstore.Point, len(records))
	for i, r := range records {
		points[i] = vectorstore.Point{
			ID:   PointID(r.ID),
			Vec:  vectors[i],
			Meta: chunkMeta(r),
		}
	}

	if err := p.vectorStore.Upsert(ctx, p.collection, points); err != nil {
		return fmt.Errorf("failed to store vectors: %w", err)
	}

	if err := p.chunkRepo.InsertBatch(ctx, records); err != nil {
		return fmt.Errorf("failed to store chunk texts: %w", err)
	}

	return nil
}

// PointID maps a composite chunk identifier to a deterministic UUID,
// since Qdrant point IDs must be UUIDs. The composite identifier itself
// travels in the payload under "chunk_id".
func PointID(chunkID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(chunkID)).String()
}

// chunkMeta builds the metadata record stored alongside a chunk vector.
func chunkMeta(r *storage.ChunkRecord) map[string]any {
	meta := map[string]any{
		"chunk_id": r.ID,
		"chunk":    r.ChunkIndex,
	}
	if r.Filename != "" {
		meta["filename"] = r.Filename
	}
	if r.Path != "" {
		meta["path"] = r.Path
	}
	if r.ProjectID != "" {
		meta["project_id"] = r.ProjectID
	}
	return meta
}

func recordIDs(records []*storage.ChunkRecord) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}
