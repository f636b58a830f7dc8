package store

import (
	"strings"
	"sync"
	"time"

	"github.com/vikass-pal/campusconnect/internal/app/models"
	"github.com/vikass-pal/campusconnect/internal/pkg/apperrors"
)

// Users holds the user collection. Unlike the generic collections it also
// indexes username and email, which are unique within the store.
type Users struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string // lowercased email -> id
	byName  map[string]string // lowercased username -> id
	order   []string
	clock   func() time.Time
}

// NewUsers creates the user collection seeded with the given users.
func NewUsers(initial []models.User) *Users {
	u := &Users{
		byID:    make(map[string]models.User, len(initial)),
		byEmail: make(map[string]string, len(initial)),
		byName:  make(map[string]string, len(initial)),
		clock:   time.Now,
	}
	for _, user := range initial {
		if _, ok := u.byID[user.ID]; ok {
			continue
		}
		u.byID[user.ID] = user.Clone()
		u.byEmail[strings.ToLower(user.Email)] = user.ID
		u.byName[strings.ToLower(user.Username)] = user.ID
		u.order = append(u.order, user.ID)
	}
	return u
}

// SetClock overrides the timestamp source. Used by tests.
func (u *Users) SetClock(clock func() time.Time) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.clock = clock
}

// GetByID returns a copy of the user with the given id.
func (u *Users) GetByID(id string) (models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, ok := u.byID[id]
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}
	return user.Clone(), nil
}

// FindByEmail returns the user registered under the given email.
func (u *Users) FindByEmail(email string) (models.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	id, ok := u.byEmail[strings.ToLower(email)]
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}
	return u.byID[id].Clone(), nil
}

// Insert adds a new user, enforcing username and email uniqueness.
func (u *Users) Insert(user models.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.byID[user.ID]; ok {
		return apperrors.NewConflictError("user already exists")
	}
	if _, ok := u.byEmail[strings.ToLower(user.Email)]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	if _, ok := u.byName[strings.ToLower(user.Username)]; ok {
		return apperrors.ErrUsernameTaken
	}

	u.byID[user.ID] = user.Clone()
	u.byEmail[strings.ToLower(user.Email)] = user.ID
	u.byName[strings.ToLower(user.Username)] = user.ID
	u.order = append(u.order, user.ID)
	return nil
}

// Update applies fn to a copy of the stored user under the write lock and
// refreshes UpdatedAt. Username and email are identity fields and are not
// remappable through Update.
func (u *Users) Update(id string, fn func(user *models.User) error) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	current, ok := u.byID[id]
	if !ok {
		return models.User{}, apperrors.ErrUserNotFound
	}

	next := current.Clone()
	if err := fn(&next); err != nil {
		return models.User{}, err
	}

	// Identity fields stay as stored.
	next.ID = current.ID
	next.Username = current.Username
	next.Email = current.Email

	next.UpdatedAt = u.clock()
	u.byID[id] = next
	return next.Clone(), nil
}

// Snapshot returns an order-preserving copy of all users.
func (u *Users) Snapshot() []models.User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]models.User, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, u.byID[id].Clone())
	}
	return out
}

// Len returns the number of stored users.
func (u *Users) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.byID)
}
