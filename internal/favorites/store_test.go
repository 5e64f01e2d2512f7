package favorites

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/animeshelf/internal/kv"
)

type failingKV struct {
	kv.Store
	getErr error
	setErr error
}

func (f failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Store.Get(ctx, key)
}

func (f failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func TestCurrentUser_AbsentIsNil(t *testing.T) {
	s := NewStore(kv.NewMemory(), nil)

	u, err := s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, u, "absent record means no user, not an empty one")
}

func TestCurrentUser_ReadsPersistedRecord(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, UserKey, []byte(`{"id":"u1","favorites":[5,9,5]}`)))

	u, err := NewStore(mem, nil).CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, User{ID: "u1", Favorites: []int64{5, 9}}, *u)
}

func TestCurrentUser_MalformedIsNilAndLogged(t *testing.T) {
	ctx := context.Background()
	for name, raw := range map[string]string{
		"not json":       `{oops`,
		"array":          `[1,2]`,
		"missing id":     `{"favorites":[1]}`,
		"numeric id":     `{"id":7,"favorites":[]}`,
		"string entries": `{"id":"u1","favorites":["5"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			mem := kv.NewMemory()
			require.NoError(t, mem.Set(ctx, UserKey, []byte(raw)))

			core, logs := observer.New(zap.WarnLevel)
			u, err := NewStore(mem, zap.New(core)).CurrentUser(ctx)

			require.NoError(t, err)
			assert.Nil(t, u)
			assert.Equal(t, 1, logs.FilterMessage("Ignoring malformed user record").Len())
		})
	}
}

func TestCurrentUser_BackendErrorIsReturned(t *testing.T) {
	s := NewStore(failingKV{Store: kv.NewMemory(), getErr: errors.New("disk gone")}, nil)

	u, err := s.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Nil(t, u)
	assert.Contains(t, err.Error(), "read user record")
}

func TestPersist_WritesFullRecord(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	s := NewStore(mem, nil)

	require.NoError(t, s.Persist(ctx, User{ID: "u1", Favorites: []int64{}}))
	raw, err := mem.Get(ctx, UserKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","favorites":[]}`, string(raw))

	require.NoError(t, s.Persist(ctx, User{ID: "u1", Favorites: []int64{3, 3, 4}}))
	raw, err = mem.Get(ctx, UserKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","favorites":[3,4]}`, string(raw))
}

func TestPersist_RoundTripsThroughCurrentUser(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kv.NewMemory(), nil)

	want := User{ID: `quote"and\slash`, Favorites: []int64{1, 20, 300}}
	require.NoError(t, s.Persist(ctx, want))

	got, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	if diff := cmp.Diff(want, *got, sameUser); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPersist_RejectsEmptyID(t *testing.T) {
	mem := kv.NewMemory()
	err := NewStore(mem, nil).Persist(context.Background(), User{})
	require.Error(t, err)
	assert.Equal(t, 0, mem.Writes())
}

func TestPersist_BackendError(t *testing.T) {
	s := NewStore(failingKV{Store: kv.NewMemory(), setErr: errors.New("quota exceeded")}, nil)

	err := s.Persist(context.Background(), User{ID: "u1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestToggleThenPersist_UnlikesStoredFavorite(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, UserKey, []byte(`{"id":"u1","favorites":[5]}`)))
	s := NewStore(mem, nil)

	u, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)

	require.NoError(t, s.Persist(ctx, Toggle(*u, 5)))

	raw, err := mem.Get(ctx, UserKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","favorites":[]}`, string(raw))
}

func TestLogin_GeneratesIDAndKeepsFavorites(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kv.NewMemory(), nil)

	anon, err := s.Login(ctx, "  ")
	require.NoError(t, err)
	_, err = uuid.Parse(anon.ID)
	assert.NoError(t, err, "blank id should become a UUID, got %q", anon.ID)

	u, err := s.Login(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, s.Persist(ctx, Toggle(u, 5)))

	again, err := s.Login(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, again.Favorites)

	other, err := s.Login(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other.Favorites)
}

func TestLogout_ClearsSlot(t *testing.T) {
	ctx := context.Background()
	s := NewStore(kv.NewMemory(), nil)

	_, err := s.Login(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	u, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, s.Logout(ctx), "logging out twice is fine")
}
