package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"

	"github.com/dugjason/split-csv/service"
)

//go:embed tools/validate.md
var descValidate string

//go:embed tools/split.md
var descSplit string

//go:embed tools/estimate.md
var descEstimate string

//go:embed tools/export.md
var descExport string

func registerTools(registry *protoserver.Registry, h *Handler) error {
	if err := protoserver.RegisterTool[*ValidateInput, *ValidateOutput](registry, "validate", descValidate, func(ctx context.Context, in *ValidateInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.validate(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	if err := protoserver.RegisterTool[*SplitInput, *SplitOutput](registry, "split", descSplit, func(ctx context.Context, in *SplitInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.split(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	if err := protoserver.RegisterTool[*EstimateInput, *EstimateOutput](registry, "estimate", descEstimate, func(ctx context.Context, in *EstimateInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.estimate(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	if err := protoserver.RegisterTool[*ExportInput, *ExportOutput](registry, "export", descExport, func(ctx context.Context, in *ExportInput) (*schema.CallToolResult, *jsonrpc.Error) {
		out, err := h.export(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(out)
	}); err != nil {
		return err
	}

	return nil
}

func buildErrorResult(message string) (*schema.CallToolResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.InvalidParams, message, nil)
}

func buildSuccessResult(payload any) (*schema.CallToolResult, *jsonrpc.Error) {
	b, _ := json.Marshal(payload)
	return &schema.CallToolResult{
		Content: []schema.CallToolResultContentElem{
			schema.TextContent{Type: "text", Text: string(b)},
		},
		StructuredContent: map[string]any{"result": payload},
	}, nil
}

func (h *Handler) validate(ctx context.Context, in *ValidateInput) (*ValidateOutput, error) {
	start := time.Now()
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil {
		in = &ValidateInput{}
	}
	if in.SourceURL == "" && in.Content == "" {
		return nil, fmt.Errorf("mcp: missing sourceUrl or content")
	}
	result, err := h.service.Validate(ctx, service.ValidateRequest{
		SourceURL: in.SourceURL,
		Content:   in.Content,
	})
	if err != nil {
		return nil, err
	}
	if h.metricsLog {
		log.Printf("mcp metric op=validate source=%s valid=%t issues=%d dur=%s", in.SourceURL, result.IsValid, len(result.Issues), time.Since(start))
	}
	return &ValidateOutput{
		Valid:             result.IsValid,
		Issues:            result.Issues,
		NormalizedContent: result.NormalizedContent,
	}, nil
}

func (h *Handler) split(ctx context.Context, in *SplitInput) (*SplitOutput, error) {
	start := time.Now()
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil {
		in = &SplitInput{}
	}
	if in.SourceURL == "" && in.Content == "" {
		return nil, fmt.Errorf("mcp: missing sourceUrl or content")
	}
	result, err := h.service.Split(ctx, service.SplitRequest{
		SourceURL: in.SourceURL,
		Content:   in.Content,
		Options:   in.options(),
	})
	if err != nil {
		return nil, err
	}
	if h.metricsLog {
		log.Printf("mcp metric op=split source=%s chunks=%d dur=%s", in.SourceURL, result.TotalChunks, time.Since(start))
	}
	return &SplitOutput{
		Chunks:            result.Chunks,
		TotalChunks:       result.TotalChunks,
		OriginalLineCount: result.OriginalLineCount,
	}, nil
}

func (h *Handler) estimate(ctx context.Context, in *EstimateInput) (*EstimateOutput, error) {
	start := time.Now()
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil {
		in = &EstimateInput{}
	}
	if in.SourceURL == "" && in.Content == "" {
		return nil, fmt.Errorf("mcp: missing sourceUrl or content")
	}
	count, err := h.service.Estimate(ctx, service.EstimateRequest{
		SourceURL: in.SourceURL,
		Content:   in.Content,
		Options:   in.options(),
	})
	if err != nil {
		return nil, err
	}
	if h.metricsLog {
		log.Printf("mcp metric op=estimate source=%s chunks=%d dur=%s", in.SourceURL, count, time.Since(start))
	}
	return &EstimateOutput{Chunks: count}, nil
}

func (h *Handler) export(ctx context.Context, in *ExportInput) (*ExportOutput, error) {
	start := time.Now()
	if h == nil || h.service == nil {
		return nil, fmt.Errorf("mcp: service unavailable")
	}
	if in == nil {
		in = &ExportInput{}
	}
	if in.SourceURL == "" && in.Content == "" {
		return nil, fmt.Errorf("mcp: missing sourceUrl or content")
	}
	if in.DestURL == "" {
		return nil, fmt.Errorf("mcp: missing destUrl")
	}
	result, err := h.service.Export(ctx, service.ExportRequest{
		SourceURL: in.SourceURL,
		Content:   in.Content,
		DestURL:   in.DestURL,
		BaseName:  in.BaseName,
		Options:   in.options(),
	})
	if err != nil {
		return nil, err
	}
	if h.metricsLog {
		log.Printf("mcp metric op=export source=%s dest=%s files=%d dur=%s", in.SourceURL, in.DestURL, len(result.Files), time.Since(start))
	}
	return &ExportOutput{
		JobID:             result.JobID,
		Files:             result.Files,
		TotalChunks:       result.TotalChunks,
		OriginalLineCount: result.OriginalLineCount,
	}, nil
}
