// Package mcp provides an MCP (Model Context Protocol) server adapter for RecipeML.
// It enables AI assistants to query the recipe recommendation engine.
package mcp

import "errors"

// ErrMissingMatchingService is returned when the matching service is not provided.
var ErrMissingMatchingService = errors.New("mcp: matching service is required")
