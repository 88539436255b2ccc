package mcp

import (
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Matching provides recommendation and lookup capabilities.
	Matching driving.MatchingService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Matching == nil {
		return ErrMissingMatchingService
	}
	return nil
}
