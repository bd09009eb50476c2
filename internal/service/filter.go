package service

import (
	"strings"

	"github.com/eventdeck/eventdeck-go/internal/model"
)

// Filter narrows the browse view. Matching is a boolean predicate — there
// is no ranking, and results keep the collection's order.
//
// Empty Text matches everything; Date, when set, must match exactly;
// Location, when set, is a case-insensitive substring match.
type Filter struct {
	Text     string
	Date     string
	Location string
}

// Match reports whether the event passes every set criterion.
func (f Filter) Match(event model.Event) bool {
	if f.Text != "" {
		text := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(event.Name), text) &&
			!strings.Contains(strings.ToLower(event.Description), text) {
			return false
		}
	}
	if f.Date != "" && event.Date != f.Date {
		return false
	}
	if f.Location != "" &&
		!strings.Contains(strings.ToLower(event.Location), strings.ToLower(f.Location)) {
		return false
	}
	return true
}

// Search returns the events passing the filter, in collection order.
func (s *EventStore) Search(f Filter) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Event{}
	for _, event := range s.events {
		if f.Match(event) {
			out = append(out, event)
		}
	}
	return out
}
