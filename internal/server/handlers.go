package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"

	"github.com/ironsheep/hog-tools-mcp/internal/hog"
	"github.com/ironsheep/hog-tools-mcp/internal/imaging"
	"github.com/ironsheep/hog-tools-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "hog_compute").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.cfg.Debug {
		log.Printf("Tool call %s args=%s", params.Name, string(params.Arguments))
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
//
// Each HOG tool handler:
//  1. Unmarshals arguments from JSON
//  2. Fills omitted parameters from the server Config
//  3. Loads the image from cache, crops it and scales it to max_width
//  4. Runs the hog pipeline and, for visual tools, the renderer
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// HOG Descriptor
	case "hog_compute":
		return s.handleHOGCompute(args)
	case "hog_summary":
		return s.handleHOGSummary(args)

	// Visualization
	case "hog_visualize":
		return s.handleHOGVisualize(args)
	case "hog_gradient_map":
		return s.handleHOGGradientMap(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === HOG Handlers ===

// sourceArgs select the pixels a HOG tool analyzes. A nil MaxWidth takes
// the server default; an explicit 0 disables scaling.
type sourceArgs struct {
	Path     string          `json:"path"`
	Region   *imaging.Region `json:"region"`
	Quadrant string          `json:"quadrant"`
	MaxWidth *int            `json:"max_width"`
}

// hogArgs are the arguments shared by the HOG tools. Pointer fields
// distinguish an omitted value, which takes the server default, from an
// explicit one, which is validated as given.
type hogArgs struct {
	sourceArgs

	CellSize *int `json:"cell_size"`
	Bins     *int `json:"bins"`
}

func (s *Server) source(a sourceArgs) (imaging.Source, error) {
	src := imaging.Source{
		Path:     a.Path,
		Region:   a.Region,
		Quadrant: a.Quadrant,
		MaxWidth: s.cfg.MaxWidth,
	}
	if a.MaxWidth != nil {
		if *a.MaxWidth < 0 {
			return src, fmt.Errorf("max_width %d must not be negative: %w", *a.MaxWidth, hog.ErrInvalidParameter)
		}
		src.MaxWidth = *a.MaxWidth
	}
	return src, nil
}

// runHOG loads the image selected by args and computes its descriptor. The
// analyzed pixel buffer is returned alongside for rendering.
func (s *Server) runHOG(args json.RawMessage) (*image.NRGBA, *hog.Result, error) {
	var a hogArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, nil, err
	}

	cellSize, bins := s.cfg.CellSize, s.cfg.Bins
	if a.CellSize != nil {
		cellSize = *a.CellSize
	}
	if a.Bins != nil {
		bins = *a.Bins
	}

	src, err := s.source(a.sourceArgs)
	if err != nil {
		return nil, nil, err
	}
	img, err := imaging.Prepare(s.cache, src)
	if err != nil {
		return nil, nil, err
	}

	result, err := hog.Compute(img, cellSize, bins)
	if err != nil {
		return nil, nil, err
	}
	return img, result, nil
}

// HOGComputeResult is the output of hog_compute.
type HOGComputeResult struct {
	*hog.Descriptor

	Summary       hog.Summary `json:"summary"`
	Report        string      `json:"report"`
	FeatureVector []float64   `json:"feature_vector,omitempty"`
}

type hogComputeArgs struct {
	IncludeVector bool `json:"include_vector"`
}

func (s *Server) handleHOGCompute(args json.RawMessage) (interface{}, error) {
	var a hogComputeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	_, result, err := s.runHOG(args)
	if err != nil {
		return nil, err
	}

	out := &HOGComputeResult{
		Descriptor: result.Descriptor,
		Summary:    result.Summary,
		Report:     result.Summary.Report(),
	}
	if a.IncludeVector {
		out.FeatureVector = result.Descriptor.FeatureVector()
	}
	return out, nil
}

// HOGSummaryResult is the output of hog_summary.
type HOGSummaryResult struct {
	hog.Summary

	Width  int    `json:"width"`
	Height int    `json:"height"`
	Report string `json:"report"`
}

func (s *Server) handleHOGSummary(args json.RawMessage) (interface{}, error) {
	_, result, err := s.runHOG(args)
	if err != nil {
		return nil, err
	}
	return &HOGSummaryResult{
		Summary: result.Summary,
		Width:   result.Descriptor.Width,
		Height:  result.Descriptor.Height,
		Report:  result.Summary.Report(),
	}, nil
}

// HOGVisualizeResult is the output of hog_visualize.
type HOGVisualizeResult struct {
	*render.OverlayResult

	Summary hog.Summary `json:"summary"`
}

type hogVisualizeArgs struct {
	ShowGrid bool `json:"show_grid"`
}

func (s *Server) handleHOGVisualize(args json.RawMessage) (interface{}, error) {
	var a hogVisualizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	img, result, err := s.runHOG(args)
	if err != nil {
		return nil, err
	}

	overlay, err := render.Visualize(img, result.Descriptor, render.Options{ShowGrid: a.ShowGrid})
	if err != nil {
		return nil, err
	}
	return &HOGVisualizeResult{
		OverlayResult: overlay,
		Summary:       result.Summary,
	}, nil
}

func (s *Server) handleHOGGradientMap(args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	src, err := s.source(a)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Prepare(s.cache, src)
	if err != nil {
		return nil, err
	}
	return render.VisualizeGradients(img)
}
