package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/eventdeck/eventdeck-go/internal/model"
	"github.com/google/uuid"
)

// EventStore owns the event collection. It is the only writer: the
// presentation layer reads derived views and calls the mutation operations
// below, never touching the slice directly. Ownership is enforced on every
// mutation — only the creator of an event may change or remove it.
//
// A single RWMutex guards the collection. Mutations hold the write lock
// across their simulated latency, so concurrent callers serialize and no
// operation ever observes another's partial effects.
type EventStore struct {
	mu       sync.RWMutex
	kv       KV
	sessions *SessionStore
	notifier Notifier
	clock    Clock
	rng      *rand.Rand

	latency  time.Duration
	seedSize int

	events  []model.Event
	loading bool
}

// NewEventStore creates a new EventStore bound to the given session store,
// which supplies the current user for ownership checks and creation. A nil
// notifier falls back to slog.
func NewEventStore(kv KV, sessions *SessionStore, notifier Notifier, latency time.Duration, seedSize int) *EventStore {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &EventStore{
		kv:       kv,
		sessions: sessions,
		notifier: notifier,
		clock:    systemClock{},
		rng:      newSystemRand(),
		latency:  latency,
		seedSize: seedSize,
		loading:  true,
	}
}

// Restore rehydrates the collection from local storage. When the persisted
// copy is missing or unreadable the store seeds itself with generated
// events instead — roughly one in three owned by the current session user
// when one exists — and writes the seed back. Restore never fails.
func (s *EventStore) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() { s.loading = false }()

	raw, ok, err := s.kv.Get(ctx, storageKeyEvents)
	if err != nil {
		slog.Warn("failed to read persisted events", "error", err)
	}
	if ok {
		var events []model.Event
		if err := json.Unmarshal([]byte(raw), &events); err == nil {
			s.events = events
			return
		}
		slog.Warn("failed to parse events from local storage, reseeding")
	}

	user, _ := s.sessions.User()
	s.events = seedEvents(s.rng, s.clock, s.seedSize, user.ID)
	if err := s.persist(ctx, s.events); err != nil {
		slog.Warn("failed to persist seed events", "error", err)
	}
}

// Create synthesizes a new event owned by the current session user and
// prepends it to the collection, so the newest event surfaces first.
func (s *EventStore) Create(ctx context.Context, input model.EventInput) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.create(ctx, input)
	if err != nil {
		s.notifier.Error("Error", err.Error())
		return model.Event{}, err
	}

	s.notifier.Success("Event Created", "Your event has been created successfully")
	return event, nil
}

func (s *EventStore) create(ctx context.Context, input model.EventInput) (model.Event, error) {
	user, ok := s.sessions.User()
	if !ok {
		return model.Event{}, ErrAuthRequired
	}
	if err := validateInput(input); err != nil {
		return model.Event{}, err
	}

	if err := sleep(ctx, s.latency); err != nil {
		return model.Event{}, err
	}

	event := model.Event{
		ID:          fmt.Sprintf("event-%s", uuid.NewString()),
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		UserID:      user.ID,
		ImageURL:    input.ImageURL,
	}

	next := make([]model.Event, 0, len(s.events)+1)
	next = append(next, event)
	next = append(next, s.events...)

	if err := s.persist(ctx, next); err != nil {
		return model.Event{}, err
	}
	s.events = next

	return event, nil
}

// Update merges the patch onto an existing event owned by the current
// session user. Fields absent from the patch keep their prior values; ID
// and UserID can never change.
func (s *EventStore) Update(ctx context.Context, id string, patch model.EventPatch) (model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.update(ctx, id, patch)
	if err != nil {
		s.notifier.Error("Error", err.Error())
		return model.Event{}, err
	}

	s.notifier.Success("Event Updated", "Your event has been updated successfully")
	return event, nil
}

func (s *EventStore) update(ctx context.Context, id string, patch model.EventPatch) (model.Event, error) {
	user, ok := s.sessions.User()
	if !ok {
		return model.Event{}, ErrAuthRequired
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return model.Event{}, ErrEventNotFound
	}
	if s.events[idx].UserID != user.ID {
		return model.Event{}, ErrForbidden
	}

	if err := sleep(ctx, s.latency); err != nil {
		return model.Event{}, err
	}

	merged := applyPatch(s.events[idx], patch)

	next := make([]model.Event, len(s.events))
	copy(next, s.events)
	next[idx] = merged

	if err := s.persist(ctx, next); err != nil {
		return model.Event{}, err
	}
	s.events = next

	return merged, nil
}

// Delete removes an event owned by the current session user.
func (s *EventStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.delete(ctx, id); err != nil {
		s.notifier.Error("Error", err.Error())
		return err
	}

	s.notifier.Success("Event Deleted", "Your event has been deleted successfully")
	return nil
}

func (s *EventStore) delete(ctx context.Context, id string) error {
	user, ok := s.sessions.User()
	if !ok {
		return ErrAuthRequired
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrEventNotFound
	}
	if s.events[idx].UserID != user.ID {
		return ErrForbidden
	}

	if err := sleep(ctx, s.latency); err != nil {
		return err
	}

	next := make([]model.Event, 0, len(s.events)-1)
	next = append(next, s.events[:idx]...)
	next = append(next, s.events[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.events = next

	return nil
}

// GetByID looks up a single event. Pure read, no auth requirement.
func (s *EventStore) GetByID(id string) (model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexOf(id); idx >= 0 {
		return s.events[idx], true
	}
	return model.Event{}, false
}

// All returns a copy of the full collection in storage order.
func (s *EventStore) All() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// UserEvents returns the events owned by the current session user, empty
// when anonymous. The view is recomputed from the collection on every
// call and never stored separately.
func (s *EventStore) UserEvents() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions.User()
	if !ok {
		return []model.Event{}
	}

	out := []model.Event{}
	for _, event := range s.events {
		if event.UserID == user.ID {
			out = append(out, event)
		}
	}
	return out
}

// IsLoading reports whether the initial rehydration is still pending.
func (s *EventStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// persist writes the full collection snapshot to local storage. An empty
// collection is never written back: the last non-empty snapshot stays in
// storage, and a restart reseeds over it. Callers hold the write lock.
func (s *EventStore) persist(ctx context.Context, events []model.Event) error {
	if len(events) == 0 {
		return nil
	}

	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to serialize events: %w", err)
	}
	if err := s.kv.Set(ctx, storageKeyEvents, string(data)); err != nil {
		return fmt.Errorf("failed to persist events: %w", err)
	}
	return nil
}

// indexOf returns the position of the event with the given id, -1 when
// absent. Callers hold at least the read lock.
func (s *EventStore) indexOf(id string) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

func validateInput(input model.EventInput) error {
	switch {
	case input.Name == "":
		return ErrEventNameRequired
	case input.Date == "":
		return ErrEventDateRequired
	case input.Time == "":
		return ErrEventTimeRequired
	case input.Location == "":
		return ErrEventLocationRequired
	}
	return nil
}

func applyPatch(event model.Event, patch model.EventPatch) model.Event {
	if patch.Name != nil {
		event.Name = *patch.Name
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Time != nil {
		event.Time = *patch.Time
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.ImageURL != nil {
		event.ImageURL = *patch.ImageURL
	}
	return event
}
