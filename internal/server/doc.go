// Package server implements the MCP (Model Context Protocol) server for HOG
// feature extraction.
//
// This package provides a JSON-RPC 2.0 server that exposes Histogram of
// Oriented Gradients analysis through the MCP protocol, so MCP-compatible
// clients can compute descriptors and render them over an image.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// HOG Descriptor:
//   - hog_compute: Per-cell orientation histograms plus summary
//   - hog_summary: Summary statistics and text report only
//
// Visualization:
//   - hog_visualize: Orientation segments over a faded copy of the image
//   - hog_gradient_map: Gradient magnitude as a grayscale image
//
// Every HOG tool scales the image to at most max_width pixels wide before
// analysis. Omitted cell_size, bins and max_width take the values from
// Config, which ConfigFromEnv reads from HOG_MCP_* environment variables.
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images keyed by path.
// The cache persists for the lifetime of the server process; scaled buffers
// are rebuilt per call and never shared.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// Invalid cell_size or bins values surface as "invalid parameter" errors.
//
// # Usage
//
//	srv := server.NewWithConfig(server.ConfigFromEnv())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
