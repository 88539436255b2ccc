package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RecommendInput is the input schema for the recommend tool.
type RecommendInput struct {
	Ingredients []string `json:"ingredients" jsonschema:"the ingredients to match recipes against"`
	Limit       int      `json:"limit,omitempty" jsonschema:"maximum number of recommendations to return (default 6)"`
}

// RecommendOutput is the output schema for the recommend tool.
type RecommendOutput struct {
	Recommendations []RecommendationOutput `json:"recommendations"`
	Count           int                    `json:"count"`
}

// RecommendationOutput represents a single recommendation.
type RecommendationOutput struct {
	RecordID    int      `json:"record_id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	URL         string   `json:"url,omitempty"`
	Distance    float64  `json:"distance"`
}

// LookupInput is the input schema for the lookup tool.
type LookupInput struct {
	RecordID int `json:"record_id" jsonschema:"the corpus record id of the recipe"`
}

// LookupOutput is the output schema for the lookup tool.
type LookupOutput struct {
	RecordID       int      `json:"record_id"`
	Name           string   `json:"name"`
	RawIngredients []string `json:"raw_ingredients,omitempty"`
	Ingredients    []string `json:"ingredients"`
	Instructions   []string `json:"instructions,omitempty"`
	Source         string   `json:"source,omitempty"`
	URL            string   `json:"url,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend",
		Description: "Recommend recipes matching a list of ingredients",
	}, s.handleRecommend)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup",
		Description: "Retrieve the full recipe behind a recommendation",
	}, s.handleLookup)
}

// handleRecommend handles the recommend tool invocation.
func (s *Server) handleRecommend(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecommendInput,
) (*mcp.CallToolResult, RecommendOutput, error) {
	recs, err := s.ports.Matching.Recommend(ctx, input.Ingredients)
	if err != nil {
		return nil, RecommendOutput{}, err
	}
	if input.Limit > 0 && len(recs) > input.Limit {
		recs = recs[:input.Limit]
	}

	output := RecommendOutput{
		Recommendations: make([]RecommendationOutput, len(recs)),
		Count:           len(recs),
	}

	for i, rec := range recs {
		out := RecommendationOutput{
			RecordID: rec.RecordID,
			Distance: rec.Distance,
		}
		record, err := s.ports.Matching.Lookup(ctx, rec.RecordID)
		if err == nil {
			out.Name = record.Name
			out.Ingredients = record.Ingredients
			out.URL = record.URL
		}
		output.Recommendations[i] = out
	}

	return nil, output, nil
}

// handleLookup handles the lookup tool invocation.
func (s *Server) handleLookup(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, LookupOutput, error) {
	record, err := s.ports.Matching.Lookup(ctx, input.RecordID)
	if err != nil {
		return nil, LookupOutput{}, err
	}

	return nil, LookupOutput{
		RecordID:       record.ID,
		Name:           record.Name,
		RawIngredients: record.RawIngredients,
		Ingredients:    record.Ingredients,
		Instructions:   record.Instructions,
		Source:         record.Source,
		URL:            record.URL,
	}, nil
}

// joinIngredients is used by resource rendering for compact display.
func joinIngredients(ingredients []string) string {
	return strings.Join(ingredients, ", ")
}
