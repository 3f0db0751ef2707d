package server

import "github.com/ironsheep/hog-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func maxWidthProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": "Scale the image down to at most this width before analysis (0 disables scaling)",
		"minimum":     0,
		"default":     imaging.DefaultMaxWidth,
	}
}

// sourceProperties returns the schema properties that select the analyzed
// pixels.
func sourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"region": map[string]interface{}{
			"type":        "object",
			"description": "Analyze only this rectangle of the full-resolution image (x2, y2 exclusive)",
			"properties": map[string]interface{}{
				"x1": map[string]interface{}{"type": "integer"},
				"y1": map[string]interface{}{"type": "integer"},
				"x2": map[string]interface{}{"type": "integer"},
				"y2": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"x1", "y1", "x2", "y2"},
		},
		"quadrant": map[string]interface{}{
			"type":        "string",
			"description": "Analyze only a named region of the image. Cannot be combined with region.",
			"enum":        imaging.Quadrants,
		},
		"max_width": maxWidthProperty(),
	}
}

// hogProperties returns the schema properties shared by the HOG tools.
func hogProperties() map[string]interface{} {
	props := sourceProperties()
	props["cell_size"] = map[string]interface{}{
		"type":        "integer",
		"description": "Cell side length in pixels",
		"minimum":     1,
		"default":     DefaultCellSize,
	}
	props["bins"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of unsigned orientation bins over 0-180 degrees",
		"minimum":     1,
		"default":     DefaultBins,
	}
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	computeProps := hogProperties()
	computeProps["include_vector"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Also return the concatenated feature vector in row-major cell order",
		"default":     false,
	}

	visualizeProps := hogProperties()
	visualizeProps["show_grid"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Also draw cell boundaries",
		"default":     false,
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. The decoded image is cached for later HOG calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// HOG Descriptor
		{
			Name:        "hog_compute",
			Description: "Compute a Histogram of Oriented Gradients descriptor: one magnitude-weighted orientation histogram per square cell, in row-major cell order, plus summary statistics.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": computeProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "hog_summary",
			Description: "Return only the HOG summary: cell count, feature vector length, total and average gradient magnitude.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": hogProperties(),
				"required":   []string{"path"},
			},
		},

		// Visualization
		{
			Name:        "hog_visualize",
			Description: "Render the HOG descriptor as red orientation segments per cell over a faded copy of the image, returned as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": visualizeProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "hog_gradient_map",
			Description: "Return the gradient magnitude the descriptor is built from as a grayscale base64-encoded PNG (strongest gradient is white).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sourceProperties(),
				"required":   []string{"path"},
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
