package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/edge-detect/internal/edgedetect"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
// For edge detection failures the error data is the literal result string,
// "Error: Failed to read image" or "Error: Failed to write image".
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", edgedetect.Message(err))
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case ToolEdgeDetect:
		return s.handleImageEdgeDetect(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to a pretty-printed JSON string. A value
// that cannot be marshaled yields an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

type imageEdgeDetectArgs struct {
	Path          string  `json:"path"`
	ThresholdLow  float64 `json:"threshold_low"`
	ThresholdHigh float64 `json:"threshold_high"`
}

// EdgeDetectResult is the tool result of a successful image_edge_detect call.
type EdgeDetectResult struct {
	SourcePath    string  `json:"source_path"`
	OutputPath    string  `json:"output_path"`
	ThresholdLow  float64 `json:"threshold_low"`
	ThresholdHigh float64 `json:"threshold_high"`
	Backend       string  `json:"backend"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	proc := s.proc
	cfg := proc.Config()
	if a.ThresholdLow == 0 {
		a.ThresholdLow = cfg.LowThreshold
	}
	if a.ThresholdHigh == 0 {
		a.ThresholdHigh = cfg.HighThreshold
	}
	if a.ThresholdLow != cfg.LowThreshold || a.ThresholdHigh != cfg.HighThreshold {
		var err error
		proc, err = proc.WithThresholds(a.ThresholdLow, a.ThresholdHigh)
		if err != nil {
			return nil, err
		}
	}

	output, err := proc.ProcessFile(a.Path)
	if err != nil {
		return nil, err
	}

	return &EdgeDetectResult{
		SourcePath:    a.Path,
		OutputPath:    output,
		ThresholdLow:  a.ThresholdLow,
		ThresholdHigh: a.ThresholdHigh,
		Backend:       proc.BackendName(),
	}, nil
}
