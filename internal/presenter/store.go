package presenter

import (
	"fmt"
	"sync"
	"time"

	"github.com/emmaderbe/SocialApp/internal/model"
)

type EventType string

const (
	EventPosts   EventType = "posts"
	EventImage   EventType = "image"
	EventError   EventType = "error"
	EventLoading EventType = "loading"
)

// Event describes a single change to the snapshot.
type Event struct {
	Type         EventType          `json:"type"`
	Version      uint64             `json:"version"`
	Count        int                `json:"count,omitempty"`
	PostID       int64              `json:"postId,omitempty"`
	LoadingState model.LoadingState `json:"loadingState"`
	Error        string             `json:"error,omitempty"`
}

// Snapshot represents the latest data available to the display layer.
type Snapshot struct {
	Posts               []model.Post
	LoadingState        model.LoadingState
	LastError           error
	LastUpdated         time.Time
	ConsecutiveFailures int
	Version             uint64
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	index    map[int64]int

	subMu  sync.Mutex
	subs   map[int]chan Event
	nextID int
}

func NewStore() *Store {
	return &Store{
		index: make(map[int64]int),
		subs:  make(map[int]chan Event),
	}
}

func (s *Store) OnPostsUpdated(posts []model.Post) {
	s.mu.Lock()
	s.snapshot.Posts = model.ClonePosts(posts)
	s.index = make(map[int64]int, len(posts))
	for i, p := range s.snapshot.Posts {
		s.index[p.ID] = i
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
	ev := s.touchLocked(Event{Type: EventPosts, Count: len(posts)})
	s.mu.Unlock()

	s.publish(ev)
}

func (s *Store) OnImageLoaded(id int64, data []byte) {
	s.mu.Lock()
	idx, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	s.snapshot.Posts[idx].ImageData = append([]byte(nil), data...)
	ev := s.touchLocked(Event{Type: EventImage, PostID: id})
	s.mu.Unlock()

	s.publish(ev)
}

// OnError records err; previously published posts are kept.
func (s *Store) OnError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	s.snapshot.LastError = err
	s.snapshot.ConsecutiveFailures++
	ev := s.touchLocked(Event{Type: EventError, Error: err.Error()})
	s.mu.Unlock()

	s.publish(ev)
}

func (s *Store) OnLoadingStateChanged(state model.LoadingState) {
	s.mu.Lock()
	s.snapshot.LoadingState = state
	ev := s.touchLocked(Event{Type: EventLoading})
	s.mu.Unlock()

	s.publish(ev)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Posts = model.ClonePosts(s.snapshot.Posts)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Image returns the image content attached to a post.
func (s *Store) Image(id int64) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.index[id]
	if !ok || !s.snapshot.Posts[idx].HasImage() {
		return nil, false
	}
	return append([]byte(nil), s.snapshot.Posts[idx].ImageData...), true
}

// Subscribe returns a channel of change events and a function that ends the subscription.
// Events are dropped for subscribers whose buffer is full.
func (s *Store) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
			close(ch)
		})
	}
}

func (s *Store) touchLocked(ev Event) Event {
	s.snapshot.Version++
	s.snapshot.LastUpdated = time.Now()
	ev.Version = s.snapshot.Version
	ev.LoadingState = s.snapshot.LoadingState
	return ev
}

func (s *Store) publish(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
