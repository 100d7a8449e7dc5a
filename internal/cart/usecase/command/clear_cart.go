package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/cart/domain"
)

// ClearCartCommand empties the session's cart unconditionally
type ClearCartCommand struct {
	SessionID string
}

// ClearCartHandler handles cart clearing
type ClearCartHandler struct {
	carts domain.CartRepository
}

// NewClearCartHandler creates a new clear cart handler
func NewClearCartHandler(carts domain.CartRepository) *ClearCartHandler {
	return &ClearCartHandler{carts: carts}
}

// Handle clears the cart and persists the empty snapshot
func (h *ClearCartHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	cart, err := h.carts.Load(ctx, cmd.SessionID)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	cart.Clear()

	if err := h.carts.Save(ctx, cmd.SessionID, cart); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
