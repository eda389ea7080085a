// Package history records rephrased texts so users can revisit and re-share them.
package history

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/rephrase-master/internal/styles"
)

// DefaultListLimit caps List when the caller passes a non-positive limit.
const DefaultListLimit = 50

// Item is one recorded rephrase.
type Item struct {
	ID        uuid.UUID    `json:"id"`
	Original  string       `json:"original"`
	Rephrased string       `json:"rephrased"`
	Style     styles.Style `json:"style"`
	CreatedAt time.Time    `json:"created_at"`
}

// Store persists history items.
type Store interface {
	Add(ctx context.Context, item Item) (Item, error)
	List(ctx context.Context, limit int) ([]Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
}

// NotFoundError is returned when deleting an item that does not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("history item not found: %s", e.ID)
}

// NewItem fills in ID and timestamp for a fresh entry.
func NewItem(original, rephrased string, style styles.Style) Item {
	return Item{
		ID:        uuid.New(),
		Original:  original,
		Rephrased: rephrased,
		Style:     style,
		CreatedAt: time.Now().UTC(),
	}
}

// MemoryStore keeps history in process memory.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Item
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[uuid.UUID]Item)}
}

// Add stores item, assigning an ID and timestamp when missing.
func (m *MemoryStore) Add(_ context.Context, item Item) (Item, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	m.items[item.ID] = item
	m.mu.Unlock()
	return item, nil
}

// List returns up to limit items, newest first.
func (m *MemoryStore) List(_ context.Context, limit int) ([]Item, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	m.mu.RLock()
	items := make([]Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	m.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID.String() > items[j].ID.String()
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// Delete removes one item.
func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(m.items, id)
	return nil
}

// Clear removes every item.
func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.items = make(map[uuid.UUID]Item)
	m.mu.Unlock()
	return nil
}
