package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// ListWorksheetInput is the input schema for the list_worksheet tool.
type ListWorksheetInput struct {
	Journey string `json:"journey,omitempty" jsonschema:"only return items from this journey (start, explore or integrate)"`
}

// WorksheetOutput is the output schema for the list_worksheet tool.
type WorksheetOutput struct {
	Items []ItemOutput `json:"items"`
	Count int          `json:"count"`
}

// ItemOutput represents a single worksheet item.
type ItemOutput struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Type        string           `json:"type"`
	Journey     string           `json:"journey,omitempty"`
	Level       *int             `json:"level,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	SavedAt     string           `json:"saved_at"`
	Resources   []ResourceOutput `json:"resources,omitempty"`
}

// ResourceOutput is a named external link.
type ResourceOutput struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// AddItemInput is the input schema for the add_to_worksheet tool.
type AddItemInput struct {
	TileID      string `json:"tile_id,omitempty" jsonschema:"save this journey tile; other fields are ignored except notes"`
	Title       string `json:"title,omitempty" jsonschema:"title of a custom item"`
	Description string `json:"description,omitempty" jsonschema:"description of a custom item"`
	Type        string `json:"type,omitempty" jsonschema:"tile, guide or resource (default tile)"`
	Journey     string `json:"journey,omitempty" jsonschema:"journey the item belongs to"`
	Notes       string `json:"notes,omitempty" jsonschema:"initial notes"`
}

// UpdateNotesInput is the input schema for the update_notes tool.
type UpdateNotesInput struct {
	ID    string `json:"id" jsonschema:"worksheet item ID"`
	Notes string `json:"notes" jsonschema:"replacement notes; empty clears them"`
}

// ItemIDInput identifies a worksheet item.
type ItemIDInput struct {
	ID string `json:"id" jsonschema:"worksheet item ID"`
}

// ChangedOutput reports whether a worksheet change applied.
type ChangedOutput struct {
	Changed bool `json:"changed"`
}

// ListStagesInput is the input schema for the list_stages tool.
type ListStagesInput struct {
	Journey string `json:"journey,omitempty" jsonschema:"journey route (default start)"`
}

// StagesOutput is the output schema for the list_stages tool.
type StagesOutput struct {
	Journey string         `json:"journey"`
	Stages  []StageSummary `json:"stages"`
}

// StageSummary is a stage and its sub-tiles, without content.
type StageSummary struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	SubTiles    []SubTileSummary `json:"sub_tiles,omitempty"`
}

// SubTileSummary is a sub-tile without its content.
type SubTileSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// GetTileInput is the input schema for the get_tile tool.
type GetTileInput struct {
	ID      string `json:"id" jsonschema:"stage or sub-tile ID"`
	Journey string `json:"journey,omitempty" jsonschema:"journey route (default start)"`
}

// TileOutput is a tile with its content.
type TileOutput struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Level       int              `json:"level"`
	Journey     string           `json:"journey,omitempty"`
	ParentID    string           `json:"parent_id,omitempty"`
	ContentType string           `json:"content_type,omitempty"`
	Body        string           `json:"body,omitempty"`
	MediaTitle  string           `json:"media_title,omitempty"`
	MediaURL    string           `json:"media_url,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Resources   []ResourceOutput `json:"resources,omitempty"`
}

// JourneyFieldsInput is the input schema for the journey_fields tool.
type JourneyFieldsInput struct {
	Journey string `json:"journey" jsonschema:"start, explore or integrate"`
}

// JourneyFieldsOutput lists the answers a journey collects.
type JourneyFieldsOutput struct {
	Fields []FieldOutput `json:"fields"`
}

// FieldOutput is one journey answer field.
type FieldOutput struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// JourneyResultInput is the input schema for the journey_result tool.
type JourneyResultInput struct {
	Journey string            `json:"journey" jsonschema:"start, explore or integrate"`
	Answers map[string]string `json:"answers" jsonschema:"answers keyed by field key"`
}

// JourneyResultOutput is the generated journey guidance.
type JourneyResultOutput struct {
	KeyTakeaways []string         `json:"key_takeaways"`
	NextSteps    []string         `json:"next_steps"`
	Resources    []ResourceOutput `json:"resources,omitempty"`
}

// ExportInput is the input schema for the export_worksheet tool.
type ExportInput struct {
	Format string `json:"format,omitempty" jsonschema:"pdf or md (default from settings)"`
}

// ExportOutput reports where the export was written.
type ExportOutput struct {
	Path string `json:"path"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_worksheet",
		Description: "List the items saved to the SquareOne worksheet",
	}, s.handleListWorksheet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_to_worksheet",
		Description: "Save a journey tile or a custom item to the worksheet",
	}, s.handleAddItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "update_notes",
		Description: "Replace the notes on a worksheet item",
	}, s.handleUpdateNotes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_item",
		Description: "Remove an item from the worksheet",
	}, s.handleRemoveItem)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_stages",
		Description: "List the stages of a journey and their sub-tiles",
	}, s.handleListStages)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_tile",
		Description: "Get the content of a stage or sub-tile",
	}, s.handleGetTile)

	if s.ports.Journey != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "journey_fields",
			Description: "List the questions a journey asks",
		}, s.handleJourneyFields)

		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "journey_result",
			Description: "Generate takeaways and next steps from journey answers",
		}, s.handleJourneyResult)
	}

	if s.ports.Export != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "export_worksheet",
			Description: "Export the worksheet as a PDF or Markdown file",
		}, s.handleExport)
	}
}

// handleListWorksheet handles the list_worksheet tool invocation.
func (s *Server) handleListWorksheet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListWorksheetInput,
) (*mcp.CallToolResult, WorksheetOutput, error) {
	filter := domain.JourneyType(strings.ToLower(strings.TrimSpace(input.Journey)))

	output := WorksheetOutput{Items: []ItemOutput{}}
	items := s.ports.Worksheet.Items(ctx)
	for i := range items {
		if filter != "" && items[i].JourneyType != filter {
			continue
		}
		output.Items = append(output.Items, toItemOutput(&items[i]))
	}
	output.Count = len(output.Items)
	return nil, output, nil
}

// handleAddItem handles the add_to_worksheet tool invocation.
func (s *Server) handleAddItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddItemInput,
) (*mcp.CallToolResult, ItemOutput, error) {
	var draft domain.ItemDraft
	if id := strings.TrimSpace(input.TileID); id != "" {
		tile, err := s.findTile(input.Journey, id)
		if err != nil {
			return nil, ItemOutput{}, err
		}
		draft = domain.DraftFromTile(tile)
	} else {
		itemType := domain.ItemTypeTile
		if input.Type != "" {
			itemType = domain.ItemType(strings.ToLower(strings.TrimSpace(input.Type)))
		}
		draft = domain.ItemDraft{
			Title:       input.Title,
			Description: input.Description,
			Type:        itemType,
			JourneyType: domain.JourneyType(strings.ToLower(strings.TrimSpace(input.Journey))),
		}
	}
	if input.Notes != "" {
		draft.Notes = input.Notes
	}

	item, err := s.ports.Worksheet.AddItem(ctx, draft)
	if err != nil {
		return nil, ItemOutput{}, err
	}
	logger.Debug("mcp: saved %q to worksheet", item.Title)
	return nil, toItemOutput(&item), nil
}

// handleUpdateNotes handles the update_notes tool invocation.
func (s *Server) handleUpdateNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UpdateNotesInput,
) (*mcp.CallToolResult, ChangedOutput, error) {
	if !s.ports.Worksheet.UpdateNotes(ctx, input.ID, input.Notes) {
		return nil, ChangedOutput{}, fmt.Errorf("worksheet item %q: %w", input.ID, domain.ErrNotFound)
	}
	return nil, ChangedOutput{Changed: true}, nil
}

// handleRemoveItem handles the remove_item tool invocation.
func (s *Server) handleRemoveItem(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ItemIDInput,
) (*mcp.CallToolResult, ChangedOutput, error) {
	return nil, ChangedOutput{Changed: s.ports.Worksheet.RemoveItem(ctx, input.ID)}, nil
}

// handleListStages handles the list_stages tool invocation.
func (s *Server) handleListStages(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListStagesInput,
) (*mcp.CallToolResult, StagesOutput, error) {
	nav, err := s.navigator(input.Journey)
	if err != nil {
		return nil, StagesOutput{}, err
	}
	return nil, StagesOutput{
		Journey: nav.Journey().String(),
		Stages:  stageSummaries(nav),
	}, nil
}

// handleGetTile handles the get_tile tool invocation.
func (s *Server) handleGetTile(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetTileInput,
) (*mcp.CallToolResult, TileOutput, error) {
	tile, err := s.findTile(input.Journey, strings.TrimSpace(input.ID))
	if err != nil {
		return nil, TileOutput{}, err
	}
	return nil, toTileOutput(tile), nil
}

// handleJourneyFields handles the journey_fields tool invocation.
func (s *Server) handleJourneyFields(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input JourneyFieldsInput,
) (*mcp.CallToolResult, JourneyFieldsOutput, error) {
	fields, err := s.ports.Journey.Fields(parseJourney(input.Journey))
	if err != nil {
		return nil, JourneyFieldsOutput{}, err
	}
	output := JourneyFieldsOutput{Fields: make([]FieldOutput, len(fields))}
	for i, f := range fields {
		output.Fields[i] = FieldOutput{Key: f.Key, Label: f.Label}
	}
	return nil, output, nil
}

// handleJourneyResult handles the journey_result tool invocation.
func (s *Server) handleJourneyResult(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input JourneyResultInput,
) (*mcp.CallToolResult, JourneyResultOutput, error) {
	result, err := s.ports.Journey.GenerateResult(parseJourney(input.Journey), domain.JourneyAnswers(input.Answers))
	if err != nil {
		return nil, JourneyResultOutput{}, err
	}
	return nil, JourneyResultOutput{
		KeyTakeaways: append([]string{}, result.KeyTakeaways...),
		NextSteps:    append([]string{}, result.NextSteps...),
		Resources:    toResourceOutputs(result.Resources),
	}, nil
}

// handleExport handles the export_worksheet tool invocation.
func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	format, err := s.exportFormat(input.Format)
	if err != nil {
		return nil, ExportOutput{}, err
	}
	path, err := s.ports.Export.ExportWorksheet(ctx, format)
	if err != nil {
		return nil, ExportOutput{}, err
	}
	return nil, ExportOutput{Path: path}, nil
}

func (s *Server) exportFormat(raw string) (domain.ExportFormat, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case "":
		if s.ports.Settings != nil {
			if settings, err := s.ports.Settings.Get(); err == nil {
				return settings.Export.Format, nil
			}
		}
		return domain.DefaultAppSettings().Export.Format, nil
	case "markdown":
		return domain.ExportMarkdown, nil
	}
	format := domain.ExportFormat(raw)
	if !format.IsValid() {
		return "", fmt.Errorf("%w: export format %q", domain.ErrUnsupportedType, raw)
	}
	return format, nil
}

func (s *Server) navigator(journey string) (driving.TileNavigator, error) {
	route := strings.TrimSpace(journey)
	if route == "" {
		route = domain.JourneyStart.String()
	}
	return s.ports.Tiles.Navigator(route)
}

// findTile resolves a stage or sub-tile, searching every stage for
// embedded sub-tiles.
func (s *Server) findTile(journey, id string) (*domain.Tile, error) {
	nav, err := s.navigator(journey)
	if err != nil {
		return nil, err
	}
	if nav.NavigateTo(id) {
		return shownTile(nav), nil
	}
	for _, stage := range nav.Stages() {
		nav.BackToStages()
		if nav.SelectStage(stage.ID) && nav.NavigateTo(id) {
			return shownTile(nav), nil
		}
	}
	return nil, fmt.Errorf("tile %q: %w", id, domain.ErrNotFound)
}

// shownTile is the tile in detail view, or the open stage.
func shownTile(nav driving.TileNavigator) *domain.Tile {
	if t := nav.CurrentTile(); t != nil {
		return t
	}
	return nav.CurrentStage()
}

func stageSummaries(nav driving.TileNavigator) []StageSummary {
	stages := nav.Stages()
	out := make([]StageSummary, len(stages))
	for i, stage := range stages {
		out[i] = StageSummary{ID: stage.ID, Title: stage.Title, Description: stage.Description}
		if nav.SelectStage(stage.ID) {
			for _, sub := range nav.SubTiles() {
				out[i].SubTiles = append(out[i].SubTiles, SubTileSummary{
					ID:          sub.ID,
					Title:       sub.Title,
					Description: sub.Description,
				})
			}
			nav.BackToStages()
		}
	}
	return out
}

func parseJourney(raw string) domain.JourneyType {
	return domain.JourneyType(strings.ToLower(strings.TrimSpace(raw)))
}

func toItemOutput(item *domain.WorksheetItem) ItemOutput {
	return ItemOutput{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Type:        item.Type.String(),
		Journey:     item.JourneyType.String(),
		Level:       item.Level,
		Notes:       item.Notes,
		SavedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
		Resources:   toResourceOutputs(item.Resources),
	}
}

func toTileOutput(t *domain.Tile) TileOutput {
	out := TileOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Level:       t.Level,
		Journey:     t.JourneyType.String(),
		ParentID:    t.ParentID,
		Tags:        t.Tags,
		Resources:   toResourceOutputs(t.Resources),
	}
	switch c := t.Content.(type) {
	case domain.TextContent:
		out.ContentType = string(c.ContentType())
		out.Body = c.Body
	case domain.VideoContent:
		out.ContentType = string(c.ContentType())
		out.MediaTitle = c.Title
		out.MediaURL = c.URL
	case domain.InteractiveContent:
		out.ContentType = string(c.ContentType())
		out.MediaTitle = c.Title
	}
	return out
}

func toResourceOutputs(links []domain.ResourceLink) []ResourceOutput {
	if len(links) == 0 {
		return nil
	}
	out := make([]ResourceOutput, len(links))
	for i, l := range links {
		out[i] = ResourceOutput{Name: l.Name, URL: l.URL, Description: l.Description}
	}
	return out
}
