package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/timelocal-cli/internal/core/domain"
)

// LocalizeInput is the input schema for both timestamp tools.
type LocalizeInput struct {
	HTML string `json:"html" jsonschema:"the HTML document or fragment containing timestamp elements"`
}

// StampOutput represents one localised timestamp element.
type StampOutput struct {
	Datetime string `json:"datetime"`
	Format   string `json:"format,omitempty"`
	Text     string `json:"text"`
	Valid    bool   `json:"valid"`
}

// LocalizeOutput is the output schema for the localize tool.
type LocalizeOutput struct {
	HTML    string        `json:"html"`
	Count   int           `json:"count"`
	Invalid int           `json:"invalid"`
	Stamps  []StampOutput `json:"stamps"`
}

// InspectOutput is the output schema for the inspect tool.
type InspectOutput struct {
	Count   int           `json:"count"`
	Invalid int           `json:"invalid"`
	Stamps  []StampOutput `json:"stamps"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "localize_timestamps",
		Description: "Rewrite the text of timestamp elements (<time class=\"jstime\">) in HTML",
	}, s.handleLocalize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "inspect_timestamps",
		Description: "Report the timestamp elements in HTML and the text a localisation pass would produce, without rewriting",
	}, s.handleInspect)
}

// handleLocalize handles the localize_timestamps tool invocation.
func (s *Server) handleLocalize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LocalizeInput,
) (*mcp.CallToolResult, LocalizeOutput, error) {
	result, err := s.ports.Localizer.Localize(ctx, []byte(input.HTML))
	if err != nil {
		return nil, LocalizeOutput{}, err
	}

	output := LocalizeOutput{
		HTML:    string(result.Output),
		Count:   result.Count(),
		Invalid: result.InvalidCount(),
		Stamps:  stampOutputs(result),
	}
	return nil, output, nil
}

// handleInspect handles the inspect_timestamps tool invocation.
func (s *Server) handleInspect(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LocalizeInput,
) (*mcp.CallToolResult, InspectOutput, error) {
	result, err := s.ports.Localizer.Localize(ctx, []byte(input.HTML))
	if err != nil {
		return nil, InspectOutput{}, err
	}

	output := InspectOutput{
		Count:   result.Count(),
		Invalid: result.InvalidCount(),
		Stamps:  stampOutputs(result),
	}
	return nil, output, nil
}

func stampOutputs(result *domain.PassResult) []StampOutput {
	outputs := make([]StampOutput, 0, len(result.Stamps))
	for _, s := range result.Stamps {
		outputs = append(outputs, StampOutput{
			Datetime: s.Stamp.Datetime,
			Format:   s.Stamp.Format,
			Text:     s.Text,
			Valid:    s.Valid,
		})
	}
	return outputs
}
