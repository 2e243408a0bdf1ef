package handlers

import (
	"log"

	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/", h.HandleAddToCart)
	cartRoutes.Delete("/", h.HandleClearCart)
	cartRoutes.Get("/count", h.HandleItemCount)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveFromCart)
}

// HandleGetCart returns the caller's cart joined with live product
// snapshots.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	items, err := h.service.GetCart(callerID(c))
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(items)
}

// AddToCartRequest represents the body for adding a product to the cart.
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gt=0"`
}

// HandleAddToCart adds a product to the caller's cart. Quantity defaults to
// 1; repeated adds accumulate onto the same line.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cartItemID, err := h.service.AddToCart(callerID(c), req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %s to cart: %v", req.ProductID, err)
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"cartItemId": cartItemID,
	})
}

// UpdateQuantityRequest represents the body for a quantity change.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleUpdateQuantity replaces a cart line's quantity. Zero or negative
// quantities are rejected; removal is a separate operation.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cartItemID := c.Params("id")
	if err := h.service.UpdateQuantity(callerID(c), cartItemID, req.Quantity); err != nil {
		log.Printf("Error updating cart item %s: %v", cartItemID, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart item updated successfully",
	})
}

// HandleRemoveFromCart deletes one of the caller's cart lines.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	cartItemID := c.Params("id")
	if err := h.service.RemoveFromCart(callerID(c), cartItemID); err != nil {
		log.Printf("Error removing cart item %s: %v", cartItemID, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart item removed successfully",
	})
}

// HandleClearCart deletes every cart line owned by the caller.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.ClearCart(callerID(c)); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared successfully",
	})
}

// HandleItemCount returns the sum of quantities in the caller's cart, 0 for
// anonymous callers.
func (h *CartHandler) HandleItemCount(c *fiber.Ctx) error {
	count, err := h.service.ItemCount(callerID(c))
	if err != nil {
		log.Printf("Error counting cart items: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": count,
	})
}
