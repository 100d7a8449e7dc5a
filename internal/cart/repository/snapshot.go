package repository

import (
	"encoding/json"

	"github.com/tair/storefront/internal/cart/domain"
)

// cartSnapshot is the persisted wire shape: a versionless JSON document
// holding the full item list.
type cartSnapshot struct {
	Items []domain.CartItem `json:"items"`
}

func encodeCart(cart domain.Cart) ([]byte, error) {
	return json.Marshal(cartSnapshot{Items: cart.Items})
}

func decodeCart(data []byte) (domain.Cart, error) {
	var snap cartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{Items: snap.Items}, nil
}
