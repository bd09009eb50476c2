package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

// memKV is an in-memory KV used by store tests in place of the SQLite
// local store.
type memKV struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemKV() *memKV {
	return &memKV{m: make(map[string]string)}
}

func (kv *memKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.m[key]
	return v, ok, nil
}

func (kv *memKV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.m[key] = value
	return nil
}

func (kv *memKV) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.m, key)
	return nil
}

// fakeClock returns a fixed instant, advancing by step on every call so
// timestamp-derived ids stay distinct.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		step: time.Millisecond,
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.step)
	return c.now
}

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, title+": "+message)
}

func (n *recordingNotifier) Error(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, title+": "+message)
}

func (n *recordingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.errors)
}

func newTestSessionStore(kv KV) *SessionStore {
	s := NewSessionStore(kv, &recordingNotifier{}, "test-secret", time.Hour, 0)
	s.clock = newFakeClock()
	return s
}

func newTestEventStore(kv KV, sessions *SessionStore) *EventStore {
	s := NewEventStore(kv, sessions, &recordingNotifier{}, 0, 20)
	s.clock = newFakeClock()
	s.rng = rand.New(rand.NewPCG(1, 2))
	return s
}
