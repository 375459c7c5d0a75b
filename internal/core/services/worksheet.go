package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// Ensure WorksheetService implements the interface.
var _ driving.WorksheetService = (*WorksheetService)(nil)

// How long save confirmations stay on screen.
const (
	savedNotificationDuration  = 3 * time.Second
	warningNotificationTimeout = 5 * time.Second
)

// WorksheetService owns the user's worksheet.
// Mutations are applied one at a time and each one triggers a single
// persistence write. A failed write is logged and reported as a warning,
// but the in-memory worksheet keeps the change.
type WorksheetService struct {
	mu       sync.Mutex
	store    driven.WorksheetStore
	notifier driven.Notifier
	now      func() time.Time
	newID    func() string
	ws       *domain.Worksheet
}

// NewWorksheetService creates a new worksheet service.
// The worksheet is loaded lazily on first access unless Load is called.
func NewWorksheetService(store driven.WorksheetStore, notifier driven.Notifier) *WorksheetService {
	return &WorksheetService{
		store:    store,
		notifier: notifier,
		now:      time.Now,
		newID:    newItemID,
	}
}

// SetClock replaces the time source (for testing).
func (s *WorksheetService) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetIDGenerator replaces the item ID generator (for testing).
func (s *WorksheetService) SetIDGenerator(fn func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.newID = fn
}

// newItemID returns a time-ordered UUID with a random suffix.
func newItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load reads the persisted worksheet, replacing any in-memory state.
// A missing or unreadable record yields a fresh, empty worksheet.
func (s *WorksheetService) Load(ctx context.Context) *domain.Worksheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws = s.load(ctx)
	return s.ws.Clone()
}

// Worksheet returns a copy of the current worksheet.
func (s *WorksheetService) Worksheet(ctx context.Context) *domain.Worksheet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(ctx).Clone()
}

// Items returns a copy of the items in display order.
func (s *WorksheetService) Items(ctx context.Context) []domain.WorksheetItem {
	return s.Worksheet(ctx).Items
}

// Item returns a copy of a single item.
func (s *WorksheetService) Item(ctx context.Context, id string) (*domain.WorksheetItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws := s.current(ctx)
	idx := ws.IndexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	item := ws.Items[idx].Clone()
	return &item, nil
}

// AddItem saves a new item at the end of the worksheet.
func (s *WorksheetService) AddItem(ctx context.Context, draft domain.ItemDraft) (domain.WorksheetItem, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return domain.WorksheetItem{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !draft.Type.IsValid() {
		return domain.WorksheetItem{}, fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, draft.Type)
	}
	if draft.JourneyType != "" && !draft.JourneyType.IsValid() {
		return domain.WorksheetItem{}, fmt.Errorf("%w: unknown journey type %q", domain.ErrInvalidInput, draft.JourneyType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.current(ctx)
	item := domain.WorksheetItem{
		ID:          s.uniqueID(ws),
		Title:       title,
		Description: draft.Description,
		Type:        draft.Type,
		JourneyType: draft.JourneyType,
		Notes:       draft.Notes,
		CreatedAt:   s.now(),
	}
	if draft.Level != nil {
		level := *draft.Level
		item.Level = &level
	}
	if len(draft.Resources) > 0 {
		item.Resources = make([]domain.ResourceLink, len(draft.Resources))
		copy(item.Resources, draft.Resources)
	}

	ws.Items = append(ws.Items, item)
	s.touch(ws)
	s.persist(ctx)

	logger.Debug("worksheet: added item %s (%s)", item.ID, item.Title)
	s.notify(domain.Notification{
		Type:     domain.NotificationSuccess,
		Title:    "Added to Worksheet",
		Message:  fmt.Sprintf("%q has been saved to your worksheet.", item.Title),
		Duration: savedNotificationDuration,
	})

	return item.Clone(), nil
}

// RemoveItem deletes an item, preserving the order of the rest.
// Removing an unknown ID is a no-op.
func (s *WorksheetService) RemoveItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.current(ctx)
	idx := ws.IndexOf(id)
	if idx >= 0 {
		ws.Items = append(ws.Items[:idx], ws.Items[idx+1:]...)
	}
	s.touch(ws)
	s.persist(ctx)

	logger.Debug("worksheet: remove %s (found=%t)", id, idx >= 0)
	return idx >= 0
}

// UpdateNotes replaces the notes of a single item.
// Updating an unknown ID is a no-op.
func (s *WorksheetService) UpdateNotes(ctx context.Context, id, notes string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.current(ctx)
	idx := ws.IndexOf(id)
	if idx >= 0 {
		ws.Items[idx].Notes = notes
	}
	s.touch(ws)
	s.persist(ctx)

	logger.Debug("worksheet: update notes %s (found=%t)", id, idx >= 0)
	return idx >= 0
}

// ClearAll removes every item. This is irreversible, so callers must
// confirm with the user before calling it.
func (s *WorksheetService) ClearAll(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := s.current(ctx)
	removed := len(ws.Items)
	ws.Items = []domain.WorksheetItem{}
	s.touch(ws)
	s.persist(ctx)

	logger.Debug("worksheet: cleared %d items", removed)
	return removed
}

// current returns the live worksheet, loading it on first use (caller must hold lock).
func (s *WorksheetService) current(ctx context.Context) *domain.Worksheet {
	if s.ws == nil {
		s.ws = s.load(ctx)
	}
	return s.ws
}

// load reads the worksheet from the store (caller must hold lock).
func (s *WorksheetService) load(ctx context.Context) *domain.Worksheet {
	if s.store == nil {
		return domain.NewWorksheet(s.now())
	}

	ws, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Debug("worksheet: nothing persisted yet, starting empty")
		return domain.NewWorksheet(s.now())
	case err != nil:
		logger.Warn("loading worksheet: %v (starting with an empty worksheet)", err)
		return domain.NewWorksheet(s.now())
	case ws == nil:
		return domain.NewWorksheet(s.now())
	}

	if ws.ID == "" {
		ws.ID = domain.DefaultWorksheetID
	}
	if ws.Items == nil {
		ws.Items = []domain.WorksheetItem{}
	}
	logger.Debug("worksheet: loaded %d items", len(ws.Items))
	return ws
}

// touch refreshes the updated timestamp without ever moving it backwards.
func (s *WorksheetService) touch(ws *domain.Worksheet) {
	now := s.now()
	if now.Before(ws.UpdatedAt) {
		now = ws.UpdatedAt
	}
	ws.UpdatedAt = now
}

// uniqueID returns an ID not used by any item in ws.
func (s *WorksheetService) uniqueID(ws *domain.Worksheet) string {
	for {
		id := s.newID()
		if id != "" && ws.IndexOf(id) < 0 {
			return id
		}
	}
}

// persist writes the worksheet. Failures keep the in-memory state.
func (s *WorksheetService) persist(ctx context.Context) {
	if s.store == nil {
		return
	}
	if err := s.store.Save(ctx, s.ws.Clone()); err != nil {
		logger.Warn("%v: %v", domain.ErrPersistenceWrite, err)
		s.notify(domain.Notification{
			Type:     domain.NotificationWarning,
			Title:    "Worksheet not saved",
			Message:  "Your change is kept for this session but could not be written to storage.",
			Duration: warningNotificationTimeout,
		})
	}
}

func (s *WorksheetService) notify(n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
