package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolEdgeDetect is the name of the edge detection tool.
const ToolEdgeDetect = "image_edge_detect"

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name: ToolEdgeDetect,
			Description: "Run Canny edge detection on an image file and save the edge map as a grayscale JPEG " +
				"next to it (by default the source path with \"_processed.jpg\" appended). Returns the output path.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (JPEG, PNG, GIF, BMP, TIFF or WebP)",
					},
					"threshold_low": map[string]interface{}{
						"type":        "number",
						"description": "Low hysteresis threshold for Canny edge detection. Omit or 0 for the server default (100 unless configured)",
					},
					"threshold_high": map[string]interface{}{
						"type":        "number",
						"description": "High hysteresis threshold for Canny edge detection. Omit or 0 for the server default (200 unless configured)",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
