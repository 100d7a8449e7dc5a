package query

import (
	"context"
	"errors"
	"fmt"

	cartdomain "github.com/tair/storefront/internal/cart/domain"
	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
)

// CartSummary is a cart with its derived totals
type CartSummary struct {
	Items     []cartdomain.CartItem `json:"items"`
	ItemCount int                   `json:"itemCount"`
	Total     catalogdomain.Price   `json:"total"`
}

// GetCartQuery fetches the session's cart summary
type GetCartQuery struct {
	SessionID string
}

// GetCartHandler handles cart summary queries
type GetCartHandler struct {
	carts   cartdomain.CartRepository
	catalog catalogdomain.CatalogRepository
}

// NewGetCartHandler creates a new get cart handler
func NewGetCartHandler(carts cartdomain.CartRepository, catalog catalogdomain.CatalogRepository) *GetCartHandler {
	return &GetCartHandler{carts: carts, catalog: catalog}
}

// Handle loads the cart and computes its totals. Lines are priced at the
// current catalog price so the total follows catalog price changes; the
// snapshot price only applies to products no longer in the catalog.
func (h *GetCartHandler) Handle(ctx context.Context, q GetCartQuery) (CartSummary, error) {
	cart, err := h.carts.Load(ctx, q.SessionID)
	if err != nil {
		return CartSummary{}, fmt.Errorf("failed to load cart: %w", err)
	}

	summary := CartSummary{
		Items:     cart.Items,
		ItemCount: cart.ItemCount(),
		Total:     catalogdomain.Price{Currency: catalogdomain.CurrencyTRY},
	}

	for _, item := range cart.Items {
		price := item.Product.Price

		current, err := h.catalog.FindByID(ctx, item.Product.ID)
		if err == nil {
			price = current.Price
		} else if !errors.Is(err, catalogdomain.ErrProductNotFound) {
			return CartSummary{}, fmt.Errorf("failed to price cart line: %w", err)
		}

		summary.Total.Amount += price.Amount * float64(item.Quantity)
		summary.Total.Currency = price.Currency
	}
	return summary, nil
}
