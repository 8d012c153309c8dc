package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	hmocks "ragquery/internal/handlers/mocks"
	"ragquery/internal/ingest"
	"ragquery/internal/rag"
	vmocks "ragquery/internal/vectorstore/mocks"
)

type stubEngine struct {
	resp rag.AskResponse
	err  error
}

func (s *stubEngine) Ask(context.Context, rag.AskRequest) (rag.AskResponse, error) {
	return s.resp, s.err
}

func newTestRouter(t *testing.T) (http.Handler, *hmocks.MockIngestor, *vmocks.MockVectorStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	pipeline := hmocks.NewMockIngestor(ctrl)
	store := vmocks.NewMockVectorStore(ctrl)
	router := NewRouter(&Deps{
		Engine:         &stubEngine{resp: rag.AskResponse{Answer: "ok", ContextDocs: []string{}}},
		Pipeline:       pipeline,
		VectorStore:    store,
		CollectionName: "docs",
	})
	return router, pipeline, store
}

func TestRouterRoutes(t *testing.T) {
	t.Run("serves UI at root", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("content type = %q, want text/html", ct)
		}
	})

	t.Run("routes query", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"question":"hi"}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp struct {
			Answer string `json:"answer"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Answer != "ok" {
			t.Errorf("answer = %q, want ok", resp.Answer)
		}
	})

	t.Run("routes index", func(t *testing.T) {
		router, pipeline, _ := newTestRouter(t)
		pipeline.EXPECT().
			IndexText(gomock.Any(), "hello", "").
			Return(ingest.Summary{DocumentID: "d", IDs: []string{"d"}, Chunks: 1}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/index", strings.NewReader(`{"text":"hello"}`))
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
	})

	t.Run("routes health", func(t *testing.T) {
		router, _, store := newTestRouter(t)
		store.EXPECT().CollectionExists(gomock.Any(), "docs").Return(true, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		router, _, _ := newTestRouter(t)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}
