package kafka

import "time"

// ProductViewedEvent records a product detail view
type ProductViewedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	SessionID string    `json:"session_id"`
	ProductID string    `json:"product_id"`
	Slug      string    `json:"slug"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemAddedEvent records an add-to-cart action
type CartItemAddedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	SessionID string    `json:"session_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// FavoriteToggledEvent records a favorite being switched on or off
type FavoriteToggledEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	SessionID string    `json:"session_id"`
	ProductID string    `json:"product_id"`
	Favorited bool      `json:"favorited"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductViewed   = "product.viewed"
	EventTypeCartItemAdded   = "cart.item_added"
	EventTypeFavoriteToggled = "favorite.toggled"
)

// Kafka topics
const (
	TopicProductViewed   = "storefront-product-viewed"
	TopicCartItemAdded   = "storefront-cart-item-added"
	TopicFavoriteToggled = "storefront-favorite-toggled"
)
