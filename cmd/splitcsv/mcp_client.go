package main

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/jsonrpc"
	streamingclient "github.com/viant/jsonrpc/transport/client/http/streamable"
	mcpschema "github.com/viant/mcp-protocol/schema"
	mcpclient "github.com/viant/mcp/client"

	smcp "github.com/dugjason/split-csv/mcp"
)

type noopClientHandler struct{}

func (n *noopClientHandler) Implements(string) bool { return false }
func (n *noopClientHandler) Init(context.Context, *mcpschema.ClientCapabilities) {
}
func (n *noopClientHandler) OnNotification(context.Context, *jsonrpc.Notification) {}

func (n *noopClientHandler) Notify(context.Context, *jsonrpc.Notification) error { return nil }
func (n *noopClientHandler) NextRequestID() jsonrpc.RequestId {
	return jsonrpc.RequestId(1)
}
func (n *noopClientHandler) LastRequestID() jsonrpc.RequestId {
	return jsonrpc.RequestId(1)
}

func (n *noopClientHandler) ListRoots(context.Context, *jsonrpc.TypedRequest[*mcpschema.ListRootsRequest]) (*mcpschema.ListRootsResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("not implemented", nil)
}
func (n *noopClientHandler) CreateMessage(context.Context, *jsonrpc.TypedRequest[*mcpschema.CreateMessageRequest]) (*mcpschema.CreateMessageResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("not implemented", nil)
}
func (n *noopClientHandler) Elicit(context.Context, *jsonrpc.TypedRequest[*mcpschema.ElicitRequest]) (*mcpschema.ElicitResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewMethodNotFound("not implemented", nil)
}

func newMCPClient(ctx context.Context, addr string) (*mcpclient.Client, func(), error) {
	url := normalizeMCPURL(addr)
	handler := mcpclient.NewHandler(&noopClientHandler{})
	transport, err := streamingclient.New(ctx, url, streamingclient.WithHandler(handler))
	if err != nil {
		return nil, nil, err
	}
	cli := mcpclient.New("splitcsv-cli", "0.1.0", transport)
	if _, err := cli.Initialize(ctx); err != nil {
		return nil, nil, err
	}
	return cli, func() { cli.Close() }, nil
}

func mcpValidate(ctx context.Context, addr string, input *smcp.ValidateInput) (*smcp.ValidateOutput, error) {
	cli, cleanup, err := newMCPClient(ctx, addr)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	var out smcp.ValidateOutput
	if err := callTool(ctx, cli, "validate", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func mcpSplit(ctx context.Context, addr string, input *smcp.SplitInput) (*smcp.SplitOutput, error) {
	cli, cleanup, err := newMCPClient(ctx, addr)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	var out smcp.SplitOutput
	if err := callTool(ctx, cli, "split", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func mcpEstimate(ctx context.Context, addr string, input *smcp.EstimateInput) (*smcp.EstimateOutput, error) {
	cli, cleanup, err := newMCPClient(ctx, addr)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	var out smcp.EstimateOutput
	if err := callTool(ctx, cli, "estimate", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func mcpExport(ctx context.Context, addr string, input *smcp.ExportInput) (*smcp.ExportOutput, error) {
	cli, cleanup, err := newMCPClient(ctx, addr)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	var out smcp.ExportOutput
	if err := callTool(ctx, cli, "export", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func callTool(ctx context.Context, cli *mcpclient.Client, name string, input, out any) error {
	params, err := mcpschema.NewCallToolRequestParams(name, input)
	if err != nil {
		return err
	}
	res, err := cli.CallTool(ctx, params)
	if err != nil {
		return err
	}
	if err := toolResultError(res); err != nil {
		return err
	}
	return decodeToolResult(res, out)
}

func normalizeMCPURL(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	if strings.HasSuffix(addr, "/mcp") {
		return addr
	}
	if strings.HasSuffix(addr, "/") {
		return addr + "mcp"
	}
	return addr + "/mcp"
}

func toolResultError(res *mcpschema.CallToolResult) error {
	if res == nil {
		return fmt.Errorf("mcp: empty response")
	}
	if res.IsError != nil && *res.IsError {
		return fmt.Errorf("mcp: %s", toolResultText(res))
	}
	return nil
}

func decodeToolResult(res *mcpschema.CallToolResult, out any) error {
	if res == nil {
		return fmt.Errorf("mcp: empty response")
	}
	if res.StructuredContent != nil {
		if v, ok := res.StructuredContent["result"]; ok {
			b, err := json.Marshal(v)
			if err != nil {
				return err
			}
			return json.Unmarshal(b, out)
		}
	}
	text := toolResultText(res)
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("mcp: empty result")
	}
	return json.Unmarshal([]byte(text), out)
}

func toolResultText(res *mcpschema.CallToolResult) string {
	if res == nil {
		return ""
	}
	for _, elem := range res.Content {
		switch v := any(elem).(type) {
		case mcpschema.TextContent:
			if v.Text != "" {
				return v.Text
			}
		case *mcpschema.TextContent:
			if v != nil && v.Text != "" {
				return v.Text
			}
		case map[string]any:
			if t, ok := v["text"].(string); ok && t != "" {
				return t
			}
		default:
			if text := textFieldFromStruct(v); text != "" {
				return text
			}
		}
	}
	return ""
}

func textFieldFromStruct(value any) string {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return ""
	}
	field := v.FieldByName("Text")
	if !field.IsValid() || field.Kind() != reflect.String {
		return ""
	}
	return field.String()
}
