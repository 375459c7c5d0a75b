package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/notify"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/memory"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// stepClock returns a clock that advances by one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	now := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

var testEpoch = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

// failingStore rejects every write.
type failingStore struct {
	loadErr error
	saves   int
}

func (s *failingStore) Load(_ context.Context) (*domain.Worksheet, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return nil, domain.ErrNotFound
}

func (s *failingStore) Save(_ context.Context, _ *domain.Worksheet) error {
	s.saves++
	return errors.New("quota exceeded")
}

func newTestWorksheetService(t *testing.T) (*WorksheetService, *memory.WorksheetStore, *notify.Recorder) {
	t.Helper()
	store := memory.NewWorksheetStore()
	rec := notify.NewRecorder()
	svc := NewWorksheetService(store, rec)
	svc.SetClock(stepClock(testEpoch))
	return svc, store, rec
}

func tileDraft(title string) domain.ItemDraft {
	level := 1
	return domain.ItemDraft{
		Title:       title,
		Description: title + " description",
		Type:        domain.ItemTypeTile,
		JourneyType: domain.JourneyStart,
		Level:       &level,
	}
}

func TestNewWorksheetService(t *testing.T) {
	store := memory.NewWorksheetStore()
	rec := notify.NewRecorder()

	svc := NewWorksheetService(store, rec)

	require.NotNil(t, svc)
	assert.NotNil(t, svc.store)
	assert.NotNil(t, svc.notifier)
	assert.NotNil(t, svc.now)
	assert.NotNil(t, svc.newID)
	assert.Nil(t, svc.ws, "worksheet is loaded lazily")
}

func TestWorksheetService_Load_Absent(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)

	ws := svc.Load(context.Background())

	require.NotNil(t, ws)
	assert.Equal(t, domain.DefaultWorksheetID, ws.ID)
	assert.NotNil(t, ws.Items)
	assert.Empty(t, ws.Items)
	assert.Equal(t, ws.CreatedAt, ws.UpdatedAt)
}

func TestWorksheetService_Load_Corrupt(t *testing.T) {
	svc, store, _ := newTestWorksheetService(t)
	store.SetRaw([]byte(`{"id":`))

	ws := svc.Load(context.Background())

	require.NotNil(t, ws)
	assert.Equal(t, domain.DefaultWorksheetID, ws.ID)
	assert.Empty(t, ws.Items)
}

func TestWorksheetService_Load_StoreUnavailable(t *testing.T) {
	store := &failingStore{loadErr: domain.ErrStorageUnavailable}
	svc := NewWorksheetService(store, nil)

	ws := svc.Load(context.Background())

	assert.Empty(t, ws.Items)
}

func TestWorksheetService_Load_Persisted(t *testing.T) {
	ctx := context.Background()
	first, store, _ := newTestWorksheetService(t)
	_, err := first.AddItem(ctx, tileDraft("Market Research"))
	require.NoError(t, err)

	second := NewWorksheetService(store, nil)
	ws := second.Load(ctx)

	require.Len(t, ws.Items, 1)
	assert.Equal(t, "Market Research", ws.Items[0].Title)
}

// Scenario A.
func TestWorksheetService_AddItem_ToEmpty(t *testing.T) {
	svc, store, rec := newTestWorksheetService(t)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, tileDraft("Market Research"))
	require.NoError(t, err)

	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "Market Research", items[0].Title)
	assert.Equal(t, domain.ItemTypeTile, items[0].Type)
	assert.Equal(t, domain.JourneyStart, items[0].JourneyType)
	require.NotNil(t, items[0].Level)
	assert.Equal(t, 1, *items[0].Level)
	assert.False(t, items[0].CreatedAt.IsZero())

	assert.Equal(t, 1, store.Writes())

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationSuccess, n.Type)
	assert.Contains(t, n.Message, "Market Research")
}

func TestWorksheetService_AddItem_Validation(t *testing.T) {
	svc, store, rec := newTestWorksheetService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		draft domain.ItemDraft
	}{
		{"empty title", domain.ItemDraft{Title: "  ", Type: domain.ItemTypeTile}},
		{"unknown type", domain.ItemDraft{Title: "x", Type: "video"}},
		{"unknown journey", domain.ItemDraft{Title: "x", Type: domain.ItemTypeGuide, JourneyType: "grow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, tt.draft)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	assert.Empty(t, svc.Items(ctx))
	assert.Equal(t, 0, store.Writes())
	assert.Empty(t, rec.All())
}

func TestWorksheetService_AddItem_TrimsTitle(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)

	item, err := svc.AddItem(context.Background(), domain.ItemDraft{Title: "  Budget  ", Type: domain.ItemTypeResource})

	require.NoError(t, err)
	assert.Equal(t, "Budget", item.Title)
	assert.Empty(t, item.JourneyType)
	assert.Nil(t, item.Level)
}

func TestWorksheetService_AddItem_CopiesDraft(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()
	draft := tileDraft("Licensing")
	draft.Resources = []domain.ResourceLink{{Name: "SBA", URL: "https://www.sba.gov"}}

	item, err := svc.AddItem(ctx, draft)
	require.NoError(t, err)

	*draft.Level = 7
	draft.Resources[0].Name = "changed"

	stored, err := svc.Item(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, *stored.Level)
	assert.Equal(t, "SBA", stored.Resources[0].Name)
}

// P1.
func TestWorksheetService_AddItem_UniqueIDs(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		item, err := svc.AddItem(ctx, tileDraft(fmt.Sprintf("Tile %d", i)))
		require.NoError(t, err)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
	assert.Len(t, svc.Items(ctx), 200)
}

func TestWorksheetService_AddItem_RegeneratesCollidingID(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()

	ids := []string{"same", "same", "", "other"}
	svc.SetIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	})

	first, err := svc.AddItem(ctx, tileDraft("A"))
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, tileDraft("B"))
	require.NoError(t, err)

	assert.Equal(t, "same", first.ID)
	assert.Equal(t, "other", second.ID)
}

func TestWorksheetService_Item_NotFound(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)

	_, err := svc.Item(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// P2.
func TestWorksheetService_RemoveItem_PreservesOrder(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()

	a, _ := svc.AddItem(ctx, tileDraft("A"))
	b, _ := svc.AddItem(ctx, tileDraft("B"))
	c, _ := svc.AddItem(ctx, tileDraft("C"))
	d, _ := svc.AddItem(ctx, tileDraft("D"))

	assert.True(t, svc.RemoveItem(ctx, b.ID))
	e, _ := svc.AddItem(ctx, tileDraft("E"))
	assert.True(t, svc.RemoveItem(ctx, d.ID))

	var ids []string
	for _, item := range svc.Items(ctx) {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{a.ID, c.ID, e.ID}, ids)
}

// Scenario B.
func TestWorksheetService_RemoveItem_Nonexistent(t *testing.T) {
	svc, store, _ := newTestWorksheetService(t)
	ctx := context.Background()

	removed := svc.RemoveItem(ctx, "nonexistent-id")

	assert.False(t, removed)
	assert.Empty(t, svc.Items(ctx))
	assert.Equal(t, 1, store.Writes(), "every mutation persists")
}

func TestWorksheetService_RemoveItem_RefreshesUpdatedAt(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()
	item, _ := svc.AddItem(ctx, tileDraft("A"))
	before := svc.Worksheet(ctx).UpdatedAt

	svc.RemoveItem(ctx, item.ID)

	assert.True(t, svc.Worksheet(ctx).UpdatedAt.After(before))
}

// P5.
func TestWorksheetService_UpdateNotes_Isolation(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()

	_, _ = svc.AddItem(ctx, tileDraft("A"))
	b, _ := svc.AddItem(ctx, tileDraft("B"))
	_, _ = svc.AddItem(ctx, tileDraft("C"))
	before := svc.Items(ctx)

	assert.True(t, svc.UpdateNotes(ctx, b.ID, "x"))

	after := svc.Items(ctx)
	require.Len(t, after, len(before))
	for i := range before {
		want := before[i]
		if want.ID == b.ID {
			want.Notes = "x"
		}
		assert.Equal(t, want, after[i])
	}
}

func TestWorksheetService_UpdateNotes_Nonexistent(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, tileDraft("A"))
	before := svc.Items(ctx)

	assert.False(t, svc.UpdateNotes(ctx, "missing", "x"))
	assert.Equal(t, before, svc.Items(ctx))
}

// Scenario F.
func TestWorksheetService_ClearAll(t *testing.T) {
	svc, store, _ := newTestWorksheetService(t)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := svc.AddItem(ctx, tileDraft(fmt.Sprintf("Item %d", i)))
		require.NoError(t, err)
	}
	before := svc.Worksheet(ctx).UpdatedAt

	removed := svc.ClearAll(ctx)

	assert.Equal(t, 5, removed)
	ws := svc.Worksheet(ctx)
	assert.Empty(t, ws.Items)
	assert.False(t, ws.UpdatedAt.Before(before))
	assert.Equal(t, 6, store.Writes())

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted.Items)
}

func TestWorksheetService_UpdatedAt_NeverMovesBackwards(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, tileDraft("A"))
	before := svc.Worksheet(ctx).UpdatedAt

	svc.SetClock(func() time.Time { return testEpoch.Add(-time.Hour) })
	svc.ClearAll(ctx)

	assert.Equal(t, before, svc.Worksheet(ctx).UpdatedAt)
}

func TestWorksheetService_PersistFailure_KeepsState(t *testing.T) {
	store := &failingStore{}
	rec := notify.NewRecorder()
	svc := NewWorksheetService(store, rec)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, tileDraft("Market Research"))

	require.NoError(t, err)
	assert.Len(t, svc.Items(ctx), 1)
	assert.True(t, svc.UpdateNotes(ctx, item.ID, "still here"))
	assert.Equal(t, 2, store.saves)

	var warnings int
	for _, n := range rec.All() {
		if n.Type == domain.NotificationWarning {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)

	got, err := svc.Item(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "still here", got.Notes)
}

func TestWorksheetService_NilStoreAndNotifier(t *testing.T) {
	svc := NewWorksheetService(nil, nil)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, tileDraft("A"))

	require.NoError(t, err)
	assert.True(t, svc.RemoveItem(ctx, item.ID))
	assert.Equal(t, 0, svc.ClearAll(ctx))
}

func TestWorksheetService_ReturnsCopies(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()
	_, _ = svc.AddItem(ctx, tileDraft("A"))

	ws := svc.Worksheet(ctx)
	ws.Items[0].Title = "mutated"
	*ws.Items[0].Level = 9

	fresh := svc.Items(ctx)
	assert.Equal(t, "A", fresh[0].Title)
	assert.Equal(t, 1, *fresh[0].Level)
}

func TestWorksheetService_ConcurrentMutations(t *testing.T) {
	svc, _, _ := newTestWorksheetService(t)
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			item, err := svc.AddItem(ctx, tileDraft(fmt.Sprintf("Item %d", n)))
			if err == nil && n%2 == 0 {
				svc.UpdateNotes(ctx, item.ID, "even")
			}
		}(i)
	}
	wg.Wait()

	items := svc.Items(ctx)
	assert.Len(t, items, 20)
	ids := make(map[string]bool)
	for _, item := range items {
		ids[item.ID] = true
	}
	assert.Len(t, ids, 20)
}
