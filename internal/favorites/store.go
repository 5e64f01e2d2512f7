package favorites

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/five82/animeshelf/internal/kv"
)

// UserKey is the slot holding the serialized user record.
const UserKey = "user"

// Store reads and writes the user record in a single kv slot.
type Store struct {
	kv     kv.Store
	key    string
	logger *zap.Logger
}

// NewStore binds a Store to the UserKey slot of store.
func NewStore(store kv.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: store, key: UserKey, logger: logger.Named("favorites")}
}

// CurrentUser returns the persisted user, or nil when nobody is logged in.
// A record that cannot be decoded counts as "nobody" and is logged at warn
// level; only backend failures are returned as errors.
func (s *Store) CurrentUser(ctx context.Context) (*User, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read user record")
	}
	u, err := decodeUser(data)
	if err != nil {
		s.logger.Warn("Ignoring malformed user record", zap.Error(err), zap.Int("bytes", len(data)))
		return nil, nil
	}
	return &u, nil
}

// Persist overwrites the slot with the full record.
func (s *Store) Persist(ctx context.Context, u User) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id is empty")
	}
	u.Favorites = dedupe(u.Favorites)
	if err := s.kv.Set(ctx, s.key, encodeUser(u)); err != nil {
		return errors.Wrap(err, "write user record")
	}
	s.logger.Info("Favorites updated",
		zap.String("user", u.ID),
		zap.Int64s("favorites", u.Favorites),
	)
	return nil
}

// Login stands in for a real sign-in flow. It stores a record for id,
// generating one when id is blank, and keeps the favorites of an existing
// record with the same id.
func (s *Store) Login(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		id = uuid.NewString()
	}

	u := User{ID: id, Favorites: []int64{}}
	current, err := s.CurrentUser(ctx)
	if err != nil {
		return User{}, err
	}
	if current != nil && current.ID == id {
		u.Favorites = current.Favorites
	}
	if err := s.Persist(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Logout clears the slot.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return errors.Wrap(err, "delete user record")
	}
	return nil
}
