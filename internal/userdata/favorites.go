package userdata

import "sync"

// FavoritesRepository stores per-user favorite product ids.
type FavoritesRepository interface {
	Get(userID string) []string
	Set(userID string, productIDs []string)
}

// InMemoryFavoritesRepository implements FavoritesRepository with a
// guarded map.
type InMemoryFavoritesRepository struct {
	mu        sync.RWMutex
	favorites map[string][]string
}

// NewInMemoryFavoritesRepository creates an empty favorites repository.
func NewInMemoryFavoritesRepository() *InMemoryFavoritesRepository {
	return &InMemoryFavoritesRepository{
		favorites: make(map[string][]string),
	}
}

// Get returns a copy of the user's favorite product ids.
func (r *InMemoryFavoritesRepository) Get(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.favorites[userID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Set replaces the user's favorites.
func (r *InMemoryFavoritesRepository) Set(userID string, productIDs []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorites[userID] = productIDs
}

// Toggle adds the product to the user's favorites, or removes it when
// already present. Returns the new list and whether it is now a favorite.
func Toggle(repo FavoritesRepository, userID, productID string) ([]string, bool) {
	ids := repo.Get(userID)
	for i, id := range ids {
		if id == productID {
			ids = append(ids[:i], ids[i+1:]...)
			repo.Set(userID, ids)
			return ids, false
		}
	}
	ids = append(ids, productID)
	repo.Set(userID, ids)
	return ids, true
}
