package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	stages := c.Stages(domain.JourneyStart)
	require.Len(t, stages, 3)
	assert.Equal(t, "start-foundations", stages[0].ID)
	assert.Equal(t, "start-launch", stages[1].ID)
	assert.Equal(t, "start-growth", stages[2].ID)

	for _, s := range stages {
		assert.Equal(t, domain.LevelStage, s.Level)
		assert.True(t, s.IsMainStage)
		assert.NotEmpty(t, s.SubTiles, s.ID)
	}

	assert.Empty(t, c.Stages(domain.JourneyExplore))
	assert.Equal(t, 5, c.Len())
}

func TestDefault_ContentVariants(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	foundations, err := c.Get("start-foundations")
	require.NoError(t, err)

	plan, ok := foundations.FindSubTile("business-plan")
	require.True(t, ok)
	interactive, ok := plan.Content.(domain.InteractiveContent)
	require.True(t, ok)
	assert.Equal(t, "one-page-plan", interactive.Ref["exercise"])

	funding, ok := foundations.FindSubTile("funding-options")
	require.True(t, ok)
	video, ok := funding.Content.(domain.VideoContent)
	require.True(t, ok)
	assert.Equal(t, "vimeo", video.Ref["provider"])

	research, ok := foundations.FindSubTile("market-research")
	require.True(t, ok)
	text, ok := research.Content.(domain.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Body, "Know your market")
	require.Len(t, research.Resources, 1)
}

func TestDefault_ChildrenResolveThroughRegistry(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	growth, err := c.Get("start-growth")
	require.NoError(t, err)
	require.Len(t, growth.Children, 1)

	child, err := c.Get(growth.Children[0])
	require.NoError(t, err)
	assert.Equal(t, "start-growth", child.ParentID)
	assert.Equal(t, domain.LevelSubTile, child.Level)
}

func TestGet_NotFound(t *testing.T) {
	c, err := New(nil, nil)
	require.NoError(t, err)

	_, err = c.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_ReturnsCopy(t *testing.T) {
	c, err := New([]domain.Tile{{ID: "s", JourneyType: domain.JourneyStart, Tags: []string{"a"}}}, nil)
	require.NoError(t, err)

	t1, err := c.Get("s")
	require.NoError(t, err)
	t1.Tags[0] = "changed"
	t1.Title = "changed"

	t2, err := c.Get("s")
	require.NoError(t, err)
	assert.Equal(t, "a", t2.Tags[0])
	assert.Empty(t, t2.Title)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		stages []domain.Tile
		tiles  []domain.Tile
	}{
		{"missing id", []domain.Tile{{Title: "no id"}}, nil},
		{"duplicate id", []domain.Tile{{ID: "a"}}, []domain.Tile{{ID: "a"}}},
		{"stage with sub-tile level", []domain.Tile{{ID: "a", Level: domain.LevelSubTile}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.stages, tt.tiles)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"unknown content type", "stages:\n  - id: a\n    content:\n      type: audio\n", domain.ErrUnsupportedType},
		{"unknown journey", "tiles:\n  - id: a\n    journeyType: grow\n", domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("stages: [unclosed"))
	assert.Error(t, err)
}

func TestParse_NoContent(t *testing.T) {
	c, err := Parse([]byte("tiles:\n  - id: a\n    title: Bare\n"))
	require.NoError(t, err)

	tile, err := c.Get("a")
	require.NoError(t, err)
	assert.Nil(t, tile.Content)
	assert.Equal(t, domain.LevelSubTile, tile.Level)
}
