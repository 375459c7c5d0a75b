package catalog

import (
	"fmt"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

type fileYAML struct {
	Stages []tileYAML `yaml:"stages"`
	Tiles  []tileYAML `yaml:"tiles"`
}

type tileYAML struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Level       int            `yaml:"level"`
	JourneyType string         `yaml:"journeyType"`
	ParentID    string         `yaml:"parentId"`
	Children    []string       `yaml:"children"`
	SubTiles    []tileYAML     `yaml:"subTiles"`
	Content     *contentYAML   `yaml:"content"`
	Resources   []resourceYAML `yaml:"resources"`
	Tags        []string       `yaml:"tags"`
	Related     []string       `yaml:"related"`
}

// contentYAML is the tagged union of tile payloads, keyed by type.
type contentYAML struct {
	Type  string            `yaml:"type"`
	Body  string            `yaml:"body"`
	Title string            `yaml:"title"`
	URL   string            `yaml:"url"`
	Ref   map[string]string `yaml:"ref"`
}

type resourceYAML struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

func toTiles(in []tileYAML) ([]domain.Tile, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]domain.Tile, 0, len(in))
	for i := range in {
		t, err := in[i].toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (y *tileYAML) toDomain() (domain.Tile, error) {
	journey := domain.JourneyType(y.JourneyType)
	if journey != "" && !journey.IsValid() {
		return domain.Tile{}, fmt.Errorf("%w: tile %q has journey type %q", domain.ErrInvalidInput, y.ID, y.JourneyType)
	}

	content, err := y.Content.toDomain()
	if err != nil {
		return domain.Tile{}, fmt.Errorf("tile %q: %w", y.ID, err)
	}

	subs, err := toTiles(y.SubTiles)
	if err != nil {
		return domain.Tile{}, err
	}

	t := domain.Tile{
		ID:          y.ID,
		Title:       y.Title,
		Description: y.Description,
		Level:       y.Level,
		JourneyType: journey,
		ParentID:    y.ParentID,
		Children:    y.Children,
		SubTiles:    subs,
		Content:     content,
		Tags:        y.Tags,
		Related:     y.Related,
	}
	for _, r := range y.Resources {
		t.Resources = append(t.Resources, domain.ResourceLink(r))
	}
	return t, nil
}

func (c *contentYAML) toDomain() (domain.TileContent, error) {
	if c == nil {
		return nil, nil
	}
	switch domain.ContentType(c.Type) {
	case domain.ContentTypeText:
		return domain.TextContent{Body: c.Body}, nil
	case domain.ContentTypeVideo:
		return domain.VideoContent{Title: c.Title, URL: c.URL, Ref: c.Ref}, nil
	case domain.ContentTypeInteractive:
		return domain.InteractiveContent{Title: c.Title, Ref: c.Ref}, nil
	default:
		return nil, fmt.Errorf("%w: content type %q", domain.ErrUnsupportedType, c.Type)
	}
}
