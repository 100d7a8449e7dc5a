package domain

import (
	"context"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// Favorites is one session's favorite list. The ordered product slice is
// the source of truth; the id set is a shadow index kept in lockstep for
// O(1) membership checks.
type Favorites struct {
	products []catalog.Product
	ids      map[string]struct{}
}

// New returns an empty favorites list
func New() *Favorites {
	return &Favorites{ids: make(map[string]struct{})}
}

// Add appends the product unless it is already favorited
func (f *Favorites) Add(product catalog.Product) {
	if f.Contains(product.ID) {
		return
	}
	f.products = append(f.products, product)
	f.ids[product.ID] = struct{}{}
}

// Remove drops the product from the list and the id set; absent ids are a
// no-op.
func (f *Favorites) Remove(productID string) {
	if !f.Contains(productID) {
		return
	}
	for i := range f.products {
		if f.products[i].ID == productID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			break
		}
	}
	delete(f.ids, productID)
}

// Toggle adds the product when absent and removes it when present. It
// reports whether the product is favorited afterwards.
func (f *Favorites) Toggle(product catalog.Product) bool {
	if f.Contains(product.ID) {
		f.Remove(product.ID)
		return false
	}
	f.Add(product)
	return true
}

// Clear empties both the list and the id set
func (f *Favorites) Clear() {
	f.products = nil
	f.ids = make(map[string]struct{})
}

// Contains reports membership via the id set
func (f *Favorites) Contains(productID string) bool {
	_, ok := f.ids[productID]
	return ok
}

// Count returns the number of favorited products
func (f *Favorites) Count() int {
	return len(f.products)
}

// List returns the favorites in the order they were added
func (f *Favorites) List() []catalog.Product {
	out := make([]catalog.Product, len(f.products))
	copy(out, f.products)
	return out
}

// Snapshot is the persisted wire shape. FavoriteIDs duplicates the ids for
// consumers that only need membership; rehydration trusts the product list
// and rebuilds the set from it, so a stale or missing id list cannot
// desynchronize the two.
type Snapshot struct {
	Favorites   []catalog.Product `json:"favorites"`
	FavoriteIDs []string          `json:"favoriteIds"`
}

// Snapshot captures the favorites for persistence
func (f *Favorites) Snapshot() Snapshot {
	snap := Snapshot{
		Favorites:   f.List(),
		FavoriteIDs: make([]string, 0, len(f.products)),
	}
	for _, p := range f.products {
		snap.FavoriteIDs = append(snap.FavoriteIDs, p.ID)
	}
	return snap
}

// FromSnapshot rebuilds a favorites list from its persisted form,
// reconstructing the id set from the product list.
func FromSnapshot(snap Snapshot) *Favorites {
	f := New()
	for _, p := range snap.Favorites {
		f.Add(p)
	}
	return f
}

// FavoritesRepository persists one favorites list per session. Load
// returns an empty list for unknown sessions and for snapshots that fail
// to decode.
type FavoritesRepository interface {
	Load(ctx context.Context, sessionID string) (*Favorites, error)
	Save(ctx context.Context, sessionID string, favorites *Favorites) error
}
