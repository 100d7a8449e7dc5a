package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
)

// UpdateQuantityCommand overwrites a cart line's quantity. Zero or negative
// quantities remove the line.
type UpdateQuantityCommand struct {
	SessionID string
	ProductID string
	Quantity  int
}

// UpdateQuantityHandler handles quantity updates
type UpdateQuantityHandler struct {
	carts domain.CartRepository
}

// NewUpdateQuantityHandler creates a new update quantity handler
func NewUpdateQuantityHandler(carts domain.CartRepository) *UpdateQuantityHandler {
	return &UpdateQuantityHandler{carts: carts}
}

// Handle applies the update and persists the snapshot
func (h *UpdateQuantityHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (domain.Cart, error) {
	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}

	cart.UpdateQuantity(cmd.ProductID, cmd.Quantity)

	if err := h.carts.Save(ctx, cmd.SessionID, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}
