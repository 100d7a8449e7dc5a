package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
)

// RemoveItemCommand removes a product from the cart; removing an absent
// product is a no-op
type RemoveItemCommand struct {
	SessionID string
	ProductID string
}

// RemoveItemHandler handles cart line removal
type RemoveItemHandler struct {
	carts domain.CartRepository
}

// NewRemoveItemHandler creates a new remove item handler
func NewRemoveItemHandler(carts domain.CartRepository) *RemoveItemHandler {
	return &RemoveItemHandler{carts: carts}
}

// Handle removes the line and persists the snapshot
func (h *RemoveItemHandler) Handle(ctx context.Context, cmd RemoveItemCommand) (domain.Cart, error) {
	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}

	cart.RemoveItem(cmd.ProductID)

	if err := h.carts.Save(ctx, cmd.SessionID, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to persist cart: %w", err)
	}
	return cart, nil
}
