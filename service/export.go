package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/dugjason/split-csv/document"
)

// Export splits the requested source and writes each chunk as one object
// under DestURL. Chunk writes are independent of each other; no ordering is
// guaranteed or needed between them.
func (s *Service) Export(ctx context.Context, request ExportRequest) (*ExportResult, error) {
	if request.DestURL == "" {
		return nil, fmt.Errorf("destURL is required")
	}
	result, err := s.Split(ctx, SplitRequest{
		SourceURL: request.SourceURL,
		Content:   request.Content,
		Options:   request.Options,
		Logf:      request.Logf,
	})
	if err != nil {
		return nil, err
	}

	base := request.BaseName
	if base == "" && request.SourceURL != "" {
		base = baseNameFromURL(request.SourceURL)
	}

	out := &ExportResult{
		JobID:             uuid.NewString(),
		TotalChunks:       result.TotalChunks,
		OriginalLineCount: result.OriginalLineCount,
	}
	for _, chunk := range result.Chunks {
		name := document.ChunkFileName(base, chunk.Index+1, result.TotalChunks)
		destURL := url.Join(request.DestURL, name)
		if err := s.fs.Upload(ctx, destURL, file.DefaultFileOsMode, strings.NewReader(chunk.Content)); err != nil {
			return nil, fmt.Errorf("upload %v: %w", destURL, err)
		}
		out.Files = append(out.Files, ExportedFile{
			URL:      destURL,
			Index:    chunk.Index,
			Size:     len(chunk.Content),
			Checksum: chunk.Checksum,
		})
		if request.Logf != nil {
			request.Logf("export job=%s chunk=%d/%d url=%s", out.JobID, chunk.Index+1, result.TotalChunks, destURL)
		}
	}
	return out, nil
}

func baseNameFromURL(sourceURL string) string {
	name := sourceURL
	if idx := strings.LastIndex(name, "/"); idx != -1 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, path.Ext(name))
}
