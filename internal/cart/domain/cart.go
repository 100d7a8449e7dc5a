package domain

import (
	"context"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// CartItem pairs a product snapshot with a quantity. Quantity is always at
// least 1; an update that would drop it to 0 removes the item instead.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is one session's shopping cart
type Cart struct {
	Items []CartItem `json:"items"`
}

// AddItem adds a product, incrementing the quantity when the product is
// already in the cart. A non-positive quantity counts as 1.
func (c *Cart) AddItem(product catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity})
}

// RemoveItem removes the item for productID; absent items are a no-op
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity overwrites an item's quantity. Quantities of zero or less
// delegate to RemoveItem, keeping the quantity >= 1 invariant.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = nil
}

// ItemCount is the sum of all quantities
func (c Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Contains reports whether the product is in the cart
func (c Cart) Contains(productID string) bool {
	_, ok := c.Item(productID)
	return ok
}

// Item returns the cart item for productID
func (c Cart) Item(productID string) (CartItem, bool) {
	for _, item := range c.Items {
		if item.Product.ID == productID {
			return item, true
		}
	}
	return CartItem{}, false
}

// SnapshotTotal sums line totals at the prices captured in the cart. The
// cart summary query re-prices lines from the live catalog; this is the
// fallback for products that have left it.
func (c Cart) SnapshotTotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price.Amount * float64(item.Quantity)
	}
	return total
}

// CartRepository persists one cart per session. Load returns an empty cart
// for unknown sessions and for snapshots that fail to decode; store
// initialization never fails on bad persisted state.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, cart Cart) error
}
