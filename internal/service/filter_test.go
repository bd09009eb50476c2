package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/eventdeck/eventdeck-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixtureStore(t *testing.T, events []model.Event) *EventStore {
	t.Helper()

	kv := newMemKV()
	raw, err := json.Marshal(events)
	require.NoError(t, err)
	require.NoError(t, kv.Set(context.Background(), "events", string(raw)))

	sessions := newTestSessionStore(kv)
	sessions.Restore(context.Background())

	store := newTestEventStore(kv, sessions)
	store.Restore(context.Background())
	return store
}

func TestFilter_LocationSubstringCaseInsensitive(t *testing.T) {
	store := filterFixtureStore(t, []model.Event{
		{ID: "e1", UserID: "u1", Location: "Paris"},
		{ID: "e2", UserID: "u2", Location: "Berlin"},
	})

	got := store.Search(Filter{Location: "par"})

	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestFilter_EmptyTextMatchesEverything(t *testing.T) {
	store := filterFixtureStore(t, []model.Event{
		{ID: "e1", Name: "Go Meetup"},
		{ID: "e2", Name: "Rust Meetup"},
	})

	assert.Len(t, store.Search(Filter{}), 2)
}

func TestFilter_TextMatchesNameOrDescription(t *testing.T) {
	store := filterFixtureStore(t, []model.Event{
		{ID: "e1", Name: "DevOps Summit", Description: "pipelines"},
		{ID: "e2", Name: "Design Meetup", Description: "all about DEVOPS culture"},
		{ID: "e3", Name: "Cooking Class", Description: "pasta"},
	})

	got := store.Search(Filter{Text: "devops"})

	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, "e2", got[1].ID)
}

func TestFilter_DateIsExactMatch(t *testing.T) {
	store := filterFixtureStore(t, []model.Event{
		{ID: "e1", Date: "2025-07-01"},
		{ID: "e2", Date: "2025-07-02"},
	})

	got := store.Search(Filter{Date: "2025-07-01"})

	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)

	assert.Empty(t, store.Search(Filter{Date: "2025-07"}))
}

func TestFilter_CriteriaIntersect(t *testing.T) {
	store := filterFixtureStore(t, []model.Event{
		{ID: "e1", Name: "Go Meetup", Date: "2025-07-01", Location: "Paris"},
		{ID: "e2", Name: "Go Meetup", Date: "2025-07-01", Location: "Berlin"},
		{ID: "e3", Name: "Go Meetup", Date: "2025-07-02", Location: "Paris"},
	})

	got := store.Search(Filter{Text: "go", Date: "2025-07-01", Location: "paris"})

	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestFilter_PreservesCollectionOrder(t *testing.T) {
	store := filterFixtureStore(t, []model.Event{
		{ID: "e1", Location: "Paris"},
		{ID: "e2", Location: "Berlin"},
		{ID: "e3", Location: "Paris"},
	})

	got := store.Search(Filter{Location: "paris"})

	require.Len(t, got, 2)
	assert.Equal(t, []string{got[0].ID, got[1].ID}, []string{"e1", "e3"})
}
