package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/eventdeck/eventdeck-go/internal/model"
)

// Vocabulary pools for seed events. The combinations are fake but
// plausible enough to browse.
var (
	seedCities = []string{"San Francisco", "New York", "London", "Tokyo", "Paris", "Berlin", "Sydney"}
	seedTypes  = []string{"Conference", "Workshop", "Meetup", "Hackathon", "Webinar", "Summit"}
	seedTopics = []string{"React", "Node.js", "TypeScript", "Web Development", "UI/UX Design", "DevOps"}
)

func newSystemRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
}

// seedEvents generates the bootstrap collection used when nothing usable is
// found in local storage. Roughly one in three events is owned by the
// current session user (when currentUserID is non-empty); the rest belong
// to synthetic other-user identifiers so the browse view is not all "mine".
func seedEvents(rng *rand.Rand, clock Clock, n int, currentUserID string) []model.Event {
	events := make([]model.Event, 0, n)
	for i := 1; i <= n; i++ {
		userID := fmt.Sprintf("other-user-%d", i/3)
		if i%3 == 0 && currentUserID != "" {
			userID = currentUserID
		}
		events = append(events, generateEvent(rng, clock, fmt.Sprintf("event-%d", i), userID))
	}
	return events
}

// generateEvent composes one plausible event: topic+type name, a date
// within the next 90 days, a start time between 08:00 and 19:30 on a
// 30-minute grid, and a city from the fixed list.
func generateEvent(rng *rand.Rand, clock Clock, id, userID string) model.Event {
	city := seedCities[rng.IntN(len(seedCities))]
	eventType := seedTypes[rng.IntN(len(seedTypes))]
	topic := seedTopics[rng.IntN(len(seedTopics))]

	date := clock.Now().AddDate(0, 0, rng.IntN(90)).Format("2006-01-02")

	hour := 8 + rng.IntN(12)
	minute := "00"
	if rng.IntN(2) == 1 {
		minute = "30"
	}

	return model.Event{
		ID:   id,
		Name: fmt.Sprintf("%s %s", topic, eventType),
		Description: fmt.Sprintf(
			"Join us for an exciting %s %s where you'll learn about the latest trends and best practices.",
			topic, strings.ToLower(eventType)),
		Date:     date,
		Time:     fmt.Sprintf("%02d:%s", hour, minute),
		Location: city,
		UserID:   userID,
	}
}
