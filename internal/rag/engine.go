package rag

import (
	"context"
	"fmt"

	"ragquery/internal/contextutil"
	"ragquery/internal/storage"
	"ragquery/internal/vectorstore"
)

const (
	defaultK = 4
	maxK     = 20
)

// Embedder turns a batch of texts into vectors, one per text.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces a completion for a prompt.
type Generator interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// Engine answers questions grounded on retrieved chunks.
type Engine interface {
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
}

// AskRequest is a retrieval-augmented query.
type AskRequest struct {
	// Question is the user's question to answer.
	Question string `json:"question"`
	// K is the number of chunks to retrieve. Zero means the default.
	K int `json:"k,omitempty"`
}

// AskResponse carries the generated answer and the passages it was
// grounded on, best match first.
type AskResponse struct {
	Answer      string   `json:"answer"`
	ContextDocs []string `json:"context_docs"`
}

type ragEngine struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	chunkRepo   storage.ChunkStore
	generator   Generator
}

// NewEngine creates a new query engine.
func NewEngine(
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	collection string,
	chunkRepo storage.ChunkStore,
	generator Generator,
) Engine {
	return &ragEngine{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		chunkRepo:   chunkRepo,
		generator:   generator,
	}
}

// Ask embeds the question, retrieves the nearest chunks, and grounds a
// completion on them. An empty retrieval is not an error: the prompt
// falls back to its placeholder context and generation still runs.
func (e *ragEngine) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	k := req.K
	if k <= 0 {
		k = defaultK
	}
	if k > maxK {
		k = maxK
	}

	logger.InfoContext(ctx, "query started", "question_length", len(req.Question), "k", k)

	vectors, err := e.embedder.EmbedTexts(ctx, []string{req.Question})
	if err != nil {
		return AskResponse{}, fmt.Errorf("failed to embed question: %w", err)
	}
	if len(vectors) == 0 {
		return AskResponse{}, fmt.Errorf("no embedding returned for question")
	}

	results, err := e.vectorStore.Search(ctx, e.collection, vectors[0], k)
	if err != nil {
		return AskResponse{}, fmt.Errorf("failed to search vector store: %w", err)
	}

	passages := make([]string, 0, len(results))
	for _, result := range results {
		chunkID, _ := result.Meta["chunk_id"].(string)
		if chunkID == "" {
			logger.WarnContext(ctx, "search result without chunk_id", "point_id", result.PointID)
			continue
		}
		chunk, err := e.chunkRepo.GetByID(ctx, chunkID)
		if err != nil {
			logger.WarnContext(ctx, "failed to fetch chunk text", "chunk_id", chunkID, "error", err)
			continue
		}
		passages = append(passages, chunk.Text)
	}

	logger.InfoContext(ctx, "retrieval completed", "results", len(results), "passages", len(passages))

	prompt := BuildPrompt(req.Question, passages)
	answer, err := e.generator.Chat(ctx, prompt)
	if err != nil {
		return AskResponse{}, fmt.Errorf("failed to generate answer: %w", err)
	}

	logger.InfoContext(ctx, "query completed", "answer_length", len(answer))
	return AskResponse{Answer: answer, ContextDocs: passages}, nil
}
