package repository

import (
	"encoding/json"

	"github.com/tair/storefront/internal/favorites/domain"
)

func encodeFavorites(favorites *domain.Favorites) ([]byte, error) {
	return json.Marshal(favorites.Snapshot())
}

func decodeFavorites(data []byte) (*domain.Favorites, error) {
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return domain.FromSnapshot(snap), nil
}
