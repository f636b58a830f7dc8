// Package store holds the canonical in-memory collections behind the API.
// Collections are guarded by a single RWMutex each and hand out deep copies,
// so no caller ever aliases store memory. Every mutation is a
// read-modify-write under the write lock, which keeps the toggle operations
// atomic under concurrent requests.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
)

// Entity is the contract collection items satisfy.
type Entity[T any] interface {
	EntityID() string
	Clone() T
	Touch(t time.Time) T
}

// Collection is an id-keyed set of entities that retains insertion order
// for snapshots.
type Collection[T Entity[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
	clock func() time.Time
}

// NewCollection creates a collection seeded with the given entities.
func NewCollection[T Entity[T]](initial []T) *Collection[T] {
	c := &Collection[T]{
		items: make(map[string]T, len(initial)),
		clock: time.Now,
	}
	for _, item := range initial {
		id := item.EntityID()
		if _, ok := c.items[id]; ok {
			continue
		}
		c.items[id] = item.Clone()
		c.order = append(c.order, id)
	}
	return c
}

// SetClock overrides the timestamp source. Used by tests.
func (c *Collection[T]) SetClock(clock func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
}

// GetByID returns a copy of the entity with the given id.
func (c *Collection[T]) GetByID(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		var zero T
		return zero, apperrors.ErrNotFound
	}
	return item.Clone(), nil
}

// Insert adds a new entity. The id must not already be present.
func (c *Collection[T]) Insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := item.EntityID()
	if id == "" {
		return apperrors.NewValidationError("entity id must not be empty")
	}
	if _, ok := c.items[id]; ok {
		return apperrors.NewConflictError(fmt.Sprintf("entity %s already exists", id))
	}

	c.items[id] = item.Clone()
	c.order = append(c.order, id)
	return nil
}

// Remove deletes the entity with the given id. Comments owned by the entity
// live on it and are removed with it.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return apperrors.ErrNotFound
	}

	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Update applies fn to a copy of the stored entity under the write lock,
// refreshes UpdatedAt and stores the result. The returned entity is the
// fresh post-mutation state. When fn returns an error nothing is written.
func (c *Collection[T]) Update(id string, fn func(item *T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	current, ok := c.items[id]
	if !ok {
		return zero, apperrors.ErrNotFound
	}

	next := current.Clone()
	if err := fn(&next); err != nil {
		return zero, err
	}

	next = next.Touch(c.clock())
	c.items[id] = next
	return next.Clone(), nil
}

// Snapshot returns an order-preserving copy of the whole collection.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id].Clone())
	}
	return out
}

// Len returns the number of stored entities.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Store bundles the canonical collections. Initial data is injected by the
// constructor; there is no ambient global state.
type Store struct {
	Users     *Users
	Resources *Collection[models.Resource]
	Events    *Collection[models.Event]
}

// Initial carries constructor-injected seed data.
type Initial struct {
	Users     []models.User
	Resources []models.Resource
	Events    []models.Event
}

// New creates a store holding the given initial data.
func New(initial Initial) *Store {
	return &Store{
		Users:     NewUsers(initial.Users),
		Resources: NewCollection(initial.Resources),
		Events:    NewCollection(initial.Events),
	}
}
