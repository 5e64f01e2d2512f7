package favorites

import "slices"

// User is the locally persisted visitor identity and favorite set.
// Favorites holds no duplicates; its order carries no meaning.
type User struct {
	ID        string
	Favorites []int64
}

// Has reports whether itemID is a favorite.
func (u User) Has(itemID int64) bool {
	return slices.Contains(u.Favorites, itemID)
}

// Toggle returns a copy of u with itemID removed when it is a favorite and
// added otherwise. u is never modified.
func Toggle(u User, itemID int64) User {
	next := User{ID: u.ID, Favorites: make([]int64, 0, len(u.Favorites)+1)}
	found := false
	for _, id := range u.Favorites {
		if id == itemID {
			found = true
			continue
		}
		next.Favorites = append(next.Favorites, id)
	}
	if !found {
		next.Favorites = append(next.Favorites, itemID)
	}
	return next
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
