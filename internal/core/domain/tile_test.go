package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileContent_Variants(t *testing.T) {
	tests := []struct {
		name     string
		content  TileContent
		expected ContentType
	}{
		{"text", TextContent{Body: "# Hello"}, ContentTypeText},
		{"video", VideoContent{Title: "Intro", URL: "https://example.com/v"}, ContentTypeVideo},
		{"interactive", InteractiveContent{Title: "Quiz"}, ContentTypeInteractive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.content.ContentType())
		})
	}
}

func TestTile_FindSubTile(t *testing.T) {
	stage := &Tile{
		ID:       "stage",
		SubTiles: []Tile{{ID: "one"}, {ID: "two"}},
	}

	sub, ok := stage.FindSubTile("two")
	require.True(t, ok)
	assert.Equal(t, "two", sub.ID)

	_, ok = stage.FindSubTile("three")
	assert.False(t, ok)
}

func TestTile_HasChild(t *testing.T) {
	stage := &Tile{Children: []string{"a", "b"}}

	assert.True(t, stage.HasChild("a"))
	assert.False(t, stage.HasChild("c"))
}

func TestNavState_String(t *testing.T) {
	assert.Equal(t, "stage_list", ViewingStageList.String())
	assert.Equal(t, "subtile_list", ViewingSubTileList.String())
	assert.Equal(t, "tile_detail", ViewingTileDetail.String())
	assert.Equal(t, "unknown", NavState(99).String())
}

func TestTile_Clone(t *testing.T) {
	orig := Tile{
		ID:       "stage",
		Children: []string{"a"},
		Tags:     []string{"tag"},
		SubTiles: []Tile{{ID: "sub", Tags: []string{"x"}}},
		Content:  VideoContent{Title: "Intro", Ref: map[string]string{"id": "1"}},
		Resources: []ResourceLink{
			{Name: "SBA", URL: "https://www.sba.gov"},
		},
	}

	c := orig.Clone()
	c.Children[0] = "changed"
	c.Tags[0] = "changed"
	c.SubTiles[0].Tags[0] = "changed"
	c.Resources[0].Name = "changed"
	c.Content.(VideoContent).Ref["id"] = "2"

	assert.Equal(t, "a", orig.Children[0])
	assert.Equal(t, "tag", orig.Tags[0])
	assert.Equal(t, "x", orig.SubTiles[0].Tags[0])
	assert.Equal(t, "SBA", orig.Resources[0].Name)
	assert.Equal(t, "1", orig.Content.(VideoContent).Ref["id"])
	assert.Nil(t, c.Related)
}
