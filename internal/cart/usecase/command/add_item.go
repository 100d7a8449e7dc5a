package command

import (
	"context"
	"fmt"

	cartdomain "github.com/tair/storefront/internal/cart/domain"
	catalogdomain "github.com/tair/storefront/internal/catalog/domain"
)

// AddItemCommand adds a catalog product to the session's cart
type AddItemCommand struct {
	SessionID string
	ProductID string
	Quantity  int
}

// AddItemHandler handles the add-to-cart command
type AddItemHandler struct {
	carts   cartdomain.CartRepository
	catalog catalogdomain.CatalogRepository
}

// NewAddItemHandler creates a new add item handler
func NewAddItemHandler(carts cartdomain.CartRepository, catalog catalogdomain.CatalogRepository) *AddItemHandler {
	return &AddItemHandler{carts: carts, catalog: catalog}
}

// Handle resolves the product, merges it into the cart and persists the
// snapshot before returning. An existing line gains the quantity; stock
// limits are not enforced here, the storefront UI warns instead.
func (h *AddItemHandler) Handle(ctx context.Context, cmd AddItemCommand) (cartdomain.Cart, error) {
	product, err := h.catalog.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return cartdomain.Cart{}, err
	}

	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return cartdomain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}

	cart.AddItem(*product, cmd.Quantity)

	if err := h.carts.Save(ctx, cmd.SessionID, cart); err != nil {
		return cartdomain.Cart{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}
