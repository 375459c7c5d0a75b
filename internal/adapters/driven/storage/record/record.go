// Package record encodes the worksheet as the single JSON record that every
// storage backend persists under driven.WorksheetKey.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// worksheetJSON is the serialized layout of the worksheet record.
type worksheetJSON struct {
	ID        string     `json:"id"`
	Items     []itemJSON `json:"items"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

type itemJSON struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	JourneyType string         `json:"journeyType,omitempty"`
	Level       *int           `json:"level,omitempty"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   string         `json:"createdAt"`
	Resources   []resourceJSON `json:"resources,omitempty"`
}

type resourceJSON struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Encode serializes a worksheet. Timestamps are written as RFC 3339 with
// nanoseconds so they survive a round trip unchanged.
func Encode(ws *domain.Worksheet) ([]byte, error) {
	if ws == nil {
		return nil, fmt.Errorf("%w: nil worksheet", domain.ErrInvalidInput)
	}

	out := worksheetJSON{
		ID:        ws.ID,
		Items:     make([]itemJSON, 0, len(ws.Items)),
		CreatedAt: formatTime(ws.CreatedAt),
		UpdatedAt: formatTime(ws.UpdatedAt),
	}
	for i := range ws.Items {
		out.Items = append(out.Items, toItemJSON(&ws.Items[i]))
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding worksheet: %w", err)
	}
	return data, nil
}

// EncodeItems serializes items in the same layout the worksheet record
// uses, indented for display.
func EncodeItems(items []domain.WorksheetItem) ([]byte, error) {
	out := make([]itemJSON, 0, len(items))
	for i := range items {
		out = append(out, toItemJSON(&items[i]))
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding items: %w", err)
	}
	return data, nil
}

func toItemJSON(item *domain.WorksheetItem) itemJSON {
	ij := itemJSON{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Type:        item.Type.String(),
		JourneyType: item.JourneyType.String(),
		Level:       item.Level,
		Notes:       item.Notes,
		CreatedAt:   formatTime(item.CreatedAt),
	}
	for _, r := range item.Resources {
		ij.Resources = append(ij.Resources, resourceJSON(r))
	}
	return ij
}

// Decode parses a serialized worksheet and rehydrates its timestamps.
// Any parse failure is reported as domain.ErrCorruptState.
func Decode(data []byte) (*domain.Worksheet, error) {
	var in worksheetJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, corrupt(err)
	}

	createdAt, err := parseTime(in.CreatedAt)
	if err != nil {
		return nil, corrupt(fmt.Errorf("createdAt: %w", err))
	}
	updatedAt, err := parseTime(in.UpdatedAt)
	if err != nil {
		return nil, corrupt(fmt.Errorf("updatedAt: %w", err))
	}

	ws := &domain.Worksheet{
		ID:        in.ID,
		Items:     make([]domain.WorksheetItem, 0, len(in.Items)),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if ws.ID == "" {
		ws.ID = domain.DefaultWorksheetID
	}

	seen := make(map[string]struct{}, len(in.Items))
	for i := range in.Items {
		ij := &in.Items[i]
		if ij.ID == "" {
			return nil, corrupt(fmt.Errorf("item %d has no id", i))
		}
		if _, dup := seen[ij.ID]; dup {
			return nil, corrupt(fmt.Errorf("duplicate item id %q", ij.ID))
		}
		seen[ij.ID] = struct{}{}

		saved, err := parseTime(ij.CreatedAt)
		if err != nil {
			return nil, corrupt(fmt.Errorf("item %s createdAt: %w", ij.ID, err))
		}
		item := domain.WorksheetItem{
			ID:          ij.ID,
			Title:       ij.Title,
			Description: ij.Description,
			Type:        domain.ItemType(ij.Type),
			JourneyType: domain.JourneyType(ij.JourneyType),
			Level:       ij.Level,
			Notes:       ij.Notes,
			CreatedAt:   saved,
		}
		for _, r := range ij.Resources {
			item.Resources = append(item.Resources, domain.ResourceLink(r))
		}
		ws.Items = append(ws.Items, item)
	}

	return ws, nil
}

func corrupt(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrCorruptState, err)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

var errEmptyTimestamp = errors.New("empty timestamp")

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmptyTimestamp
	}
	return time.Parse(time.RFC3339Nano, s)
}
