// Package service orchestrates validation, splitting, estimation, and chunk
// export around the pure core, acquiring sources and writing chunks through
// the abstract file storage layer.
//
// This package is intended for embedding split-csv capabilities into other
// programs without shelling out to the CLI.
package service

import (
	"context"
	"fmt"

	"github.com/viant/afs"

	"github.com/dugjason/split-csv/document"
	"github.com/dugjason/split-csv/input"
	"github.com/dugjason/split-csv/splitter"
)

// Option configures the Service.
type Option func(*Service)

// WithFS sets the file storage service used for source acquisition and
// chunk export.
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithReaders sets the source format reader factory.
func WithReaders(readers *input.Factory) Option {
	return func(s *Service) { s.readers = readers }
}

// Service exposes reusable operations for validating, splitting, estimating,
// and exporting delimited datasets.
type Service struct {
	fs      afs.Service
	readers *input.Factory
	cache   *resultCache
}

// NewService creates a new Service.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.readers == nil {
		s.readers = input.NewFactory()
	}
	s.cache = newResultCache()
	return s, nil
}

// loadText resolves the raw CSV text for a request from inline content or a
// source URL, applying the format reader matching the source extension.
func (s *Service) loadText(ctx context.Context, content, sourceURL string) (string, error) {
	if content != "" {
		return content, nil
	}
	if sourceURL == "" {
		return "", fmt.Errorf("content or sourceURL is required")
	}
	data, err := s.fs.DownloadWithURL(ctx, sourceURL)
	if err != nil {
		return "", fmt.Errorf("download %v: %w", sourceURL, err)
	}
	text, err := s.readers.GetReader(sourceURL).Read(data)
	if err != nil {
		return "", fmt.Errorf("read %v: %w", sourceURL, err)
	}
	return text, nil
}

// Validate checks structural consistency of the requested source and
// normalizes trailing-newline formatting.
func (s *Service) Validate(ctx context.Context, request ValidateRequest) (*document.ValidationResult, error) {
	text, err := s.loadText(ctx, request.Content, request.SourceURL)
	if err != nil {
		return nil, err
	}
	result := splitter.ValidateAndNormalize(text)
	if request.Logf != nil {
		request.Logf("validate source=%s valid=%t issues=%d", request.SourceURL, result.IsValid, len(result.Issues))
	}
	return &result, nil
}

// Split validates and normalizes the requested source, then partitions it.
// Structural failures surface as *splitter.ValidationError. Identical
// content and options reuse the prior result from the in-memory cache.
func (s *Service) Split(ctx context.Context, request SplitRequest) (*document.SplitResult, error) {
	text, err := s.loadText(ctx, request.Content, request.SourceURL)
	if err != nil {
		return nil, err
	}
	validation := splitter.ValidateAndNormalize(text)
	if !validation.IsValid {
		return nil, &splitter.ValidationError{Issues: validation.Issues}
	}

	key, keyErr := resultKey(validation.NormalizedContent, request.Options)
	if keyErr == nil {
		if cached, ok := s.cache.get(key); ok {
			if request.Logf != nil {
				request.Logf("split source=%s chunks=%d cache_hit=true", request.SourceURL, cached.TotalChunks)
			}
			return cached, nil
		}
	}

	result, err := splitter.Split(validation.NormalizedContent, request.Options)
	if err != nil {
		return nil, err
	}
	if keyErr == nil {
		s.cache.set(key, result)
	}
	if request.Logf != nil {
		request.Logf("split source=%s chunks=%d lines=%d", request.SourceURL, result.TotalChunks, result.OriginalLineCount)
	}
	return result, nil
}

// Estimate recomputes the chunk count Split would report for the requested
// source and options.
func (s *Service) Estimate(ctx context.Context, request EstimateRequest) (int, error) {
	text, err := s.loadText(ctx, request.Content, request.SourceURL)
	if err != nil {
		return 0, err
	}
	count, err := splitter.EstimateChunkCount(text, request.Options)
	if err != nil {
		return 0, err
	}
	if request.Logf != nil {
		request.Logf("estimate source=%s chunks=%d", request.SourceURL, count)
	}
	return count, nil
}
