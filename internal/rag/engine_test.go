package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"ragquery/internal/storage"
	storage_mocks "ragquery/internal/storage/mocks"
	"ragquery/internal/vectorstore"
	vectorstore_mocks "ragquery/internal/vectorstore/mocks"
)

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vecs := make([][]float32, len(texts))
	for i := range vecs {
		vecs[i] = []float32{0.1, 0.2}
	}
	return vecs, nil
}

type fakeGenerator struct {
	err        error
	answer     string
	lastPrompt string
}

func (f *fakeGenerator) Chat(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestEngine_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vectorstore_mocks.NewMockVectorStore(ctrl)
	repo := storage_mocks.NewMockChunkStore(ctrl)
	generator := &fakeGenerator{answer: "grounded answer"}
	engine := NewEngine(&fakeEmbedder{}, store, "docs", repo, generator)
	ctx := context.Background()

	store.EXPECT().Search(ctx, "docs", gomock.Any(), 4).Return([]vectorstore.SearchResult{
		{PointID: "p1", Score: 0.9, Meta: map[string]any{"chunk_id": "doc:0"}},
		{PointID: "p2", Score: 0.8, Meta: map[string]any{"chunk_id": "doc:1"}},
	}, nil)
	repo.EXPECT().GetByID(ctx, "doc:0").Return(&storage.ChunkRecord{ID: "doc:0", Text: "alpha passage"}, nil)
	repo.EXPECT().GetByID(ctx, "doc:1").Return(&storage.ChunkRecord{ID: "doc:1", Text: "beta passage"}, nil)

	resp, err := engine.Ask(ctx, AskRequest{Question: "what?"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}

	if resp.Answer != "grounded answer" {
		t.Errorf("Ask() Answer = %q, want grounded answer", resp.Answer)
	}
	if len(resp.ContextDocs) != 2 || resp.ContextDocs[0] != "alpha passage" {
		t.Errorf("Ask() ContextDocs = %v, want retrieved texts in rank order", resp.ContextDocs)
	}
	for _, want := range []string{"alpha passage", "beta passage", "Question: what?"} {
		if !strings.Contains(generator.lastPrompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestEngine_Ask_KBounds(t *testing.T) {
	tests := []struct {
		name  string
		reqK  int
		wantK int
	}{
		{"zero defaults", 0, 4},
		{"negative defaults", -3, 4},
		{"explicit respected", 7, 7},
		{"capped at max", 50, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := vectorstore_mocks.NewMockVectorStore(ctrl)
			repo := storage_mocks.NewMockChunkStore(ctrl)
			engine := NewEngine(&fakeEmbedder{}, store, "docs", repo, &fakeGenerator{answer: "ok"})
			ctx := context.Background()

			store.EXPECT().Search(ctx, "docs", gomock.Any(), tt.wantK).Return(nil, nil)

			if _, err := engine.Ask(ctx, AskRequest{Question: "q", K: tt.reqK}); err != nil {
				t.Fatalf("Ask() error = %v", err)
			}
		})
	}
}

func TestEngine_Ask_EmptyRetrievalStillGenerates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vectorstore_mocks.NewMockVectorStore(ctrl)
	repo := storage_mocks.NewMockChunkStore(ctrl)
	generator := &fakeGenerator{answer: "from general knowledge"}
	engine := NewEngine(&fakeEmbedder{}, store, "docs", repo, generator)
	ctx := context.Background()

	store.EXPECT().Search(ctx, "docs", gomock.Any(), 4).Return(nil, nil)

	resp, err := engine.Ask(ctx, AskRequest{Question: "anything?"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if resp.Answer != "from general knowledge" {
		t.Errorf("Ask() Answer = %q, generation must still run with no context", resp.Answer)
	}
	if len(resp.ContextDocs) != 0 {
		t.Errorf("Ask() ContextDocs = %v, want none", resp.ContextDocs)
	}
	if !strings.Contains(generator.lastPrompt, "No context found.") {
		t.Error("prompt must use the placeholder context when retrieval is empty")
	}
}

func TestEngine_Ask_SkipsMissingChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := vectorstore_mocks.NewMockVectorStore(ctrl)
	repo := storage_mocks.NewMockChunkStore(ctrl)
	generator := &fakeGenerator{answer: "ok"}
	engine := NewEngine(&fakeEmbedder{}, store, "docs", repo, generator)
	ctx := context.Background()

	store.EXPECT().Search(ctx, "docs", gomock.Any(), 4).Return([]vectorstore.SearchResult{
		{PointID: "p1", Meta: map[string]any{"chunk_id": "gone:0"}},
		{PointID: "p2", Meta: map[string]any{"chunk_id": "doc:0"}},
		{PointID: "p3", Meta: map[string]any{}},
	}, nil)
	repo.EXPECT().GetByID(ctx, "gone:0").Return(nil, storage.ErrNotFound)
	repo.EXPECT().GetByID(ctx, "doc:0").Return(&storage.ChunkRecord{ID: "doc:0", Text: "survivor"}, nil)

	resp, err := engine.Ask(ctx, AskRequest{Question: "q"})
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if len(resp.ContextDocs) != 1 || resp.ContextDocs[0] != "survivor" {
		t.Errorf("Ask() ContextDocs = %v, want only the resolvable chunk", resp.ContextDocs)
	}
}

func TestEngine_Ask_CollaboratorFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("embedder failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := vectorstore_mocks.NewMockVectorStore(ctrl)
		repo := storage_mocks.NewMockChunkStore(ctrl)
		engine := NewEngine(&fakeEmbedder{err: errors.New("embed down")}, store, "docs", repo, &fakeGenerator{})

		if _, err := engine.Ask(ctx, AskRequest{Question: "q"}); err == nil {
			t.Fatal("Ask() expected error, got nil")
		}
	})

	t.Run("vector store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := vectorstore_mocks.NewMockVectorStore(ctrl)
		repo := storage_mocks.NewMockChunkStore(ctrl)
		engine := NewEngine(&fakeEmbedder{}, store, "docs", repo, &fakeGenerator{})

		store.EXPECT().Search(ctx, "docs", gomock.Any(), 4).Return(nil, errors.New("qdrant down"))

		_, err := engine.Ask(ctx, AskRequest{Question: "q"})
		if err == nil || !strings.Contains(err.Error(), "qdrant down") {
			t.Fatalf("Ask() error = %v, want wrapped vector store failure", err)
		}
	})

	t.Run("generator failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := vectorstore_mocks.NewMockVectorStore(ctrl)
		repo := storage_mocks.NewMockChunkStore(ctrl)
		engine := NewEngine(&fakeEmbedder{}, store, "docs", repo, &fakeGenerator{err: errors.New("llm down")})

		store.EXPECT().Search(ctx, "docs", gomock.Any(), 4).Return(nil, nil)

		_, err := engine.Ask(ctx, AskRequest{Question: "q"})
		if err == nil || !strings.Contains(err.Error(), "llm down") {
			t.Fatalf("Ask() error = %v, want wrapped generation failure", err)
		}
	})
}
