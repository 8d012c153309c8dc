package ingest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"context"

	"github.com/google/uuid"

	"ragquery/internal/contextutil"
	"ragquery/internal/storage"
)

// ArchiveSummary reports the outcome of an archive ingestion.
type ArchiveSummary struct {
	ProjectID string
	Files     int // member paths that produced at least one chunk
	Chunks    int
}

// IndexArchive ingests every file inside a zip archive under one shared
// project id. Directory entries are skipped; each member is chunked with
// the strategy selected from its own name. If no member produces chunks
// (an archive of empty files), nothing is stored.
func (p *Pipeline) IndexArchive(ctx context.Context, name string, data []byte) (ArchiveSummary, error) {
	logger := contextutil.LoggerFromContext(ctx)

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ArchiveSummary{}, fmt.Errorf("failed to open archive %s: %w", name, err)
	}

	projectID := uuid.New().String()
	var records []*storage.ChunkRecord
	files := 0

	for _, entry := range reader.File {
		if strings.HasSuffix(entry.Name, "/") {
			continue
		}

		content, err := readArchiveEntry(entry)
		if err != nil {
			return ArchiveSummary{}, fmt.Errorf("failed to read archive member %s: %w", entry.Name, err)
		}

		chunks := p.selector.ForFilename(entry.Name).Chunk(decodeText(content))
		if len(chunks) == 0 {
			logger.DebugContext(ctx, "archive member produced no chunks", "member", entry.Name)
			continue
		}

		for i, c := range chunks {
			records = append(records, &storage.ChunkRecord{
				ID:         fmt.Sprintf("%s:%s:%d", projectID, entry.Name, i),
				DocumentID: projectID,
				ProjectID:  projectID,
				Filename:   path.Base(entry.Name),
				Path:       entry.Name,
				ChunkIndex: i,
				Text:       c,
			})
		}
		files++
	}

	if len(records) == 0 {
		logger.InfoContext(ctx, "archive produced no chunks", "archive", name, "project_id", projectID)
		return ArchiveSummary{ProjectID: projectID}, nil
	}

	if err := p.store(ctx, records); err != nil {
		return ArchiveSummary{}, err
	}

	logger.InfoContext(ctx, "archive indexed",
		"archive", name,
		"project_id", projectID,
		"files", files,
		"chunks", len(records),
	)
	return ArchiveSummary{ProjectID: projectID, Files: files, Chunks: len(records)}, nil
}

func readArchiveEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rc.Close()
	}()
	return io.ReadAll(rc)
}
