// Package server implements an MCP (Model Context Protocol) server for edge detection.
//
// This package provides a JSON-RPC 2.0 server that exposes the edge processor
// through the MCP protocol, so an MCP-compatible client can turn image files
// into edge maps without linking against the processor.
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
//   - image_edge_detect: Canny edge detection written to <path>_processed.jpg
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: "Error: Failed to read image", "Error: Failed to write image",
//     or "Error: " followed by the Go error string for argument problems
//
// Lines that are not valid JSON get a -32700 parse error with a null id.
//
// # Usage
//
//	srv := server.New(proc, logger)
//	if err := srv.Serve(os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package server
