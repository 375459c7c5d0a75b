package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for SquareOne resources.
	uriScheme = "squareone://"

	jsonMIME = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the saved worksheet.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "worksheet",
		Name:        "worksheet",
		Description: "Items saved to the SquareOne worksheet",
		MIMEType:    jsonMIME,
	}, s.handleWorksheetResource)

	// Static resource for the Start journey stages.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "tiles",
		Name:        "tiles",
		Description: "Stages and sub-tiles of the Start journey",
		MIMEType:    jsonMIME,
	}, s.handleTilesResource)

	// Template for a single tile.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "tiles/{tileId}",
		Name:        "tile",
		Description: "Content of a stage or sub-tile",
		MIMEType:    jsonMIME,
	}, s.handleTileResource)
}

// handleWorksheetResource returns the worksheet items.
func (s *Server) handleWorksheetResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	items := s.ports.Worksheet.Items(ctx)
	out := make([]ItemOutput, len(items))
	for i := range items {
		out[i] = toItemOutput(&items[i])
	}
	return jsonResult(req.Params.URI, out)
}

// handleTilesResource returns the stage hierarchy.
func (s *Server) handleTilesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	nav, err := s.navigator("")
	if err != nil {
		return nil, fmt.Errorf("opening journey: %w", err)
	}
	return jsonResult(req.Params.URI, stageSummaries(nav))
}

// handleTileResource returns one tile's content.
func (s *Server) handleTileResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	tileID := extractTileID(req.Params.URI)
	if tileID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	tile, err := s.findTile("", tileID)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResult(req.Params.URI, toTileOutput(tile))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIME,
			Text:     string(data),
		}},
	}, nil
}

// extractTileID extracts the tile ID from a URI like squareone://tiles/{tileId}.
func extractTileID(uri string) string {
	const prefix = uriScheme + "tiles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
