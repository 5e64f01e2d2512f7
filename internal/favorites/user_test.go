package favorites

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

// Favorites is a set, so comparisons ignore order.
var sameUser = cmpopts.SortSlices(func(a, b int64) bool { return a < b })

func TestToggle_Involution(t *testing.T) {
	users := []User{
		{ID: "u1"},
		{ID: "u1", Favorites: []int64{}},
		{ID: "u1", Favorites: []int64{5}},
		{ID: "u2", Favorites: []int64{3, 1, 4, 15, 9}},
	}
	ids := []int64{0, 1, 5, 9, 42, -7}

	for _, u := range users {
		for _, id := range ids {
			got := Toggle(Toggle(u, id), id)
			want := u
			if want.Favorites == nil {
				want.Favorites = []int64{}
			}
			if diff := cmp.Diff(want, got, sameUser); diff != "" {
				t.Fatalf("Toggle(Toggle(%v, %d)) mismatch (-want +got):\n%s", u, id, diff)
			}
		}
	}
}

func TestToggle_AddsAbsentID(t *testing.T) {
	u := User{ID: "u1", Favorites: []int64{1, 2}}

	got := Toggle(u, 3)

	assert.True(t, got.Has(3))
	assert.Len(t, got.Favorites, len(u.Favorites)+1)
	assert.Equal(t, "u1", got.ID)
}

func TestToggle_RemovesPresentID(t *testing.T) {
	u := User{ID: "u1", Favorites: []int64{5}}

	got := Toggle(u, 5)

	assert.False(t, got.Has(5))
	assert.Empty(t, got.Favorites)
	assert.NotNil(t, got.Favorites)
}

func TestToggle_DoesNotMutateArgument(t *testing.T) {
	u := User{ID: "u1", Favorites: []int64{1, 2, 3}}

	_ = Toggle(u, 2)
	_ = Toggle(u, 4)

	assert.Equal(t, []int64{1, 2, 3}, u.Favorites)
}

func TestHas(t *testing.T) {
	var empty User
	assert.False(t, empty.Has(1))

	u := User{ID: "u1", Favorites: []int64{7}}
	assert.True(t, u.Has(7))
	assert.False(t, u.Has(8))
}
