package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for RecipeML resources.
	uriScheme = "recipeml://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the active model.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus",
		Name:        "corpus",
		Description: "The active recommendation model and its corpus statistics",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)

	// Template for individual recipes.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "recipes/{recordId}",
		Name:        "recipe",
		Description: "A single recipe from the corpus",
		MIMEType:    "text/plain",
	}, s.handleRecipeResource)
}

// handleCorpusResource describes the active model.
func (s *Server) handleCorpusResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	info, err := s.ports.Matching.Info()
	if err != nil {
		return nil, fmt.Errorf("describing model: %w", err)
	}

	type corpusInfo struct {
		Generation string `json:"generation"`
		BuiltAt    string `json:"built_at"`
		Records    int    `json:"records"`
		Terms      int    `json:"terms"`
	}

	data, err := json.MarshalIndent(corpusInfo{
		Generation: info.Generation,
		BuiltAt:    info.BuiltAt.Format("2006-01-02T15:04:05Z07:00"),
		Records:    info.Records,
		Terms:      info.Terms,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling model info: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecipeResource returns a single recipe as readable text.
func (s *Server) handleRecipeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id, ok := extractRecordID(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.ports.Matching.Lookup(ctx, id)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", record.Name)
	fmt.Fprintf(&b, "Ingredients: %s\n", joinIngredients(record.Ingredients))
	if len(record.Instructions) > 0 {
		fmt.Fprintf(&b, "\n%s\n", strings.Join(record.Instructions, "\n"))
	}
	if record.URL != "" {
		fmt.Fprintf(&b, "\nSource: %s\n", record.URL)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     b.String(),
		}},
	}, nil
}

// extractRecordID extracts the record id from a URI like recipeml://recipes/{recordId}.
func extractRecordID(uri string) (int, bool) {
	const prefix = uriScheme + "recipes/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}

	id, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return 0, false
	}
	return id, true
}
