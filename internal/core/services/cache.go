package services

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"gamestatus-bot/internal/core/domain"
)

var ErrStatusNotFound = errors.New("status not found")

// IndexError reports a positional index outside a channel's status list.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	if e.Count == 0 {
		return "no statuses in channel"
	}
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Count)
}

// StatusList is a channel's ordered statuses. It is only valid inside WithChannel.
type StatusList struct {
	statuses []*domain.Status
}

func (l *StatusList) Len() int {
	return len(l.statuses)
}

func (l *StatusList) At(i int) (*domain.Status, error) {
	if i < 0 || i >= len(l.statuses) {
		return nil, &IndexError{Index: i, Count: len(l.statuses)}
	}
	return l.statuses[i], nil
}

func (l *StatusList) All() []*domain.Status {
	return l.statuses
}

func (l *StatusList) Find(statusID string) (*domain.Status, bool) {
	for _, s := range l.statuses {
		if s.ID == statusID {
			return s, true
		}
	}
	return nil, false
}

func (l *StatusList) Append(s *domain.Status) {
	l.statuses = append(l.statuses, s)
}

func (l *StatusList) RemoveAt(i int) *domain.Status {
	s := l.statuses[i]
	l.statuses = slices.Delete(l.statuses, i, i+1)
	return s
}

type channelStatuses struct {
	mu   sync.Mutex
	list StatusList
}

// StatusCache maps channel IDs to their statuses. Each channel is guarded by its own
// mutex so command handlers and the updater never interleave on the same list.
type StatusCache struct {
	mu       sync.RWMutex
	channels map[string]*channelStatuses
}

func NewStatusCache() *StatusCache {
	return &StatusCache{
		channels: make(map[string]*channelStatuses),
	}
}

func (c *StatusCache) channel(channelID string) *channelStatuses {
	c.mu.RLock()
	ch, ok := c.channels[channelID]
	c.mu.RUnlock()
	if ok {
		return ch
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ch, ok = c.channels[channelID]; !ok {
		ch = &channelStatuses{}
		c.channels[channelID] = ch
	}
	return ch
}

// WithChannel runs fn with exclusive access to the channel's list.
func (c *StatusCache) WithChannel(channelID string, fn func(list *StatusList) error) error {
	ch := c.channel(channelID)
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return fn(&ch.list)
}

// Update runs fn on the status with the given ID, wherever it currently sits in the list.
func (c *StatusCache) Update(channelID, statusID string, fn func(s *domain.Status) error) error {
	return c.WithChannel(channelID, func(list *StatusList) error {
		s, ok := list.Find(statusID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrStatusNotFound, statusID)
		}
		return fn(s)
	})
}

func (c *StatusCache) Add(s *domain.Status) {
	_ = c.WithChannel(s.ChannelID, func(list *StatusList) error {
		list.Append(s)
		return nil
	})
}

// Snapshot returns copies of the channel's statuses in order.
func (c *StatusCache) Snapshot(channelID string) []*domain.Status {
	var out []*domain.Status
	_ = c.WithChannel(channelID, func(list *StatusList) error {
		out = make([]*domain.Status, 0, list.Len())
		for _, s := range list.All() {
			out = append(out, s.Clone())
		}
		return nil
	})
	return out
}

func (c *StatusCache) Channels() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.channels))
	for id := range c.channels {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Replace drops every cached status and loads the given ones, ordered by creation time
// within each channel.
func (c *StatusCache) Replace(statuses []*domain.Status) {
	grouped := make(map[string][]*domain.Status)
	for _, s := range statuses {
		grouped[s.ChannelID] = append(grouped[s.ChannelID], s)
	}

	channels := make(map[string]*channelStatuses, len(grouped))
	for id, list := range grouped {
		slices.SortStableFunc(list, func(a, b *domain.Status) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
		channels[id] = &channelStatuses{list: StatusList{statuses: list}}
	}

	c.mu.Lock()
	c.channels = channels
	c.mu.Unlock()
}

func (c *StatusCache) Len() int {
	total := 0
	for _, id := range c.Channels() {
		_ = c.WithChannel(id, func(list *StatusList) error {
			total += list.Len()
			return nil
		})
	}
	return total
}
