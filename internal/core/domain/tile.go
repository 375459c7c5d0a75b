package domain

// Tile levels within the two-level content hierarchy.
const (
	// LevelStage is a top-level stage tile.
	LevelStage = 1

	// LevelSubTile is a tile nested under a stage.
	LevelSubTile = 2
)

// ContentType identifies the variant of a tile's content payload.
type ContentType string

// Available content types.
const (
	ContentTypeText        ContentType = "text"
	ContentTypeVideo       ContentType = "video"
	ContentTypeInteractive ContentType = "interactive"
)

// TileContent is the typed payload of a tile.
// Implemented by TextContent, VideoContent, and InteractiveContent.
type TileContent interface {
	ContentType() ContentType
}

// TextContent is a Markdown body.
type TextContent struct {
	Body string
}

// ContentType implements TileContent.
func (TextContent) ContentType() ContentType { return ContentTypeText }

// VideoContent references an external video.
type VideoContent struct {
	Title string
	URL   string

	// Ref carries opaque player data.
	Ref map[string]string
}

// ContentType implements TileContent.
func (VideoContent) ContentType() ContentType { return ContentTypeVideo }

// InteractiveContent references an interactive exercise.
type InteractiveContent struct {
	Title string

	// Ref carries opaque exercise data.
	Ref map[string]string
}

// ContentType implements TileContent.
func (InteractiveContent) ContentType() ContentType { return ContentTypeInteractive }

// Tile is a read-only node of educational content.
// Stage tiles may embed their sub-tiles directly in SubTiles, or list
// their identifiers in Children for lookup in the tile registry.
type Tile struct {
	ID          string
	Title       string
	Description string

	// Level is 1 for a stage and 2 for a sub-tile.
	Level int

	JourneyType JourneyType

	// IsMainStage marks top-level stage tiles.
	IsMainStage bool

	// ParentID is empty for stages.
	ParentID string

	// Children lists sub-tile identifiers resolved through the registry.
	Children []string

	// SubTiles embeds sub-tiles directly.
	SubTiles []Tile

	Content   TileContent
	Resources []ResourceLink
	Tags      []string

	// Related lists identifiers of related tiles.
	Related []string
}

// FindSubTile returns the embedded sub-tile with the given ID.
func (t *Tile) FindSubTile(id string) (*Tile, bool) {
	for i := range t.SubTiles {
		if t.SubTiles[i].ID == id {
			return &t.SubTiles[i], true
		}
	}
	return nil, false
}

// HasChild reports whether id is listed in the tile's Children.
func (t *Tile) HasChild(id string) bool {
	for _, c := range t.Children {
		if c == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the tile.
func (t *Tile) Clone() Tile {
	c := *t
	c.Children = cloneStrings(t.Children)
	c.Tags = cloneStrings(t.Tags)
	c.Related = cloneStrings(t.Related)
	if t.Resources != nil {
		c.Resources = make([]ResourceLink, len(t.Resources))
		copy(c.Resources, t.Resources)
	}
	if t.SubTiles != nil {
		c.SubTiles = make([]Tile, len(t.SubTiles))
		for i := range t.SubTiles {
			c.SubTiles[i] = t.SubTiles[i].Clone()
		}
	}
	switch content := t.Content.(type) {
	case VideoContent:
		content.Ref = cloneRef(content.Ref)
		c.Content = content
	case InteractiveContent:
		content.Ref = cloneRef(content.Ref)
		c.Content = content
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneRef(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
