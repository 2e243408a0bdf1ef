package services

import (
	"errors"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
)

// CartService handles business logic related to the shopping cart.
type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
	guard    *Guard
	media    MediaResolver
}

// NewCartService creates a new CartService.
func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository, guard *Guard, media MediaResolver) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		guard:    guard,
		media:    media,
	}
}

// GetCart returns the caller's cart lines joined with a live product
// snapshot: current name, description, price and image, not the state at
// add time. Lines whose product has vanished out-of-band are skipped rather
// than failing the whole read.
func (s *CartService) GetCart(userID string) ([]models.CartItemView, error) {
	if err := s.guard.RequireAuth(userID); err != nil {
		return nil, err
	}

	items, err := s.carts.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.CartItemView, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetByID(item.ProductID)
		if err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
			log.Printf("Skipping cart item %s: product %s no longer exists", item.ID, item.ProductID)
			continue
		}
		views = append(views, models.CartItemView{
			CartItem: item,
			Product: models.CartProduct{
				ID:          product.ID,
				Name:        product.Name,
				Description: product.Description,
				Price:       product.Price,
				Category:    product.Category,
				ImageURL:    s.media.ResolveURL(product.ImageID),
			},
		})
	}
	return views, nil
}

// AddToCart puts quantity units of a product into the caller's cart. If a
// line for the product already exists its quantity is incremented, not
// replaced; the ID of the affected line is returned. Inactive or missing
// products fail with ErrProductNotFound.
func (s *CartService) AddToCart(userID, productID string, quantity int) (string, error) {
	if err := s.guard.RequireAuth(userID); err != nil {
		return "", err
	}
	if quantity <= 0 {
		return "", ErrInvalidQuantity
	}

	product, err := s.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrProductNotFound
		}
		return "", err
	}
	if !product.IsActive {
		return "", ErrProductNotFound
	}

	return s.carts.Upsert(userID, productID, quantity)
}

// RemoveFromCart deletes one of the caller's cart lines. A missing line and
// a line owned by someone else both fail with ErrAccessDenied.
func (s *CartService) RemoveFromCart(userID, cartItemID string) error {
	if err := s.guard.RequireAuth(userID); err != nil {
		return err
	}

	item, err := s.carts.GetByID(cartItemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAccessDenied
		}
		return err
	}
	if item.UserID != userID {
		return ErrAccessDenied
	}

	return s.carts.Delete(cartItemID)
}

// UpdateQuantity replaces the quantity on one of the caller's cart lines.
// Non-positive quantities fail with ErrInvalidQuantity; use RemoveFromCart
// to drop a line. Ownership is checked as in RemoveFromCart.
func (s *CartService) UpdateQuantity(userID, cartItemID string, quantity int) error {
	if err := s.guard.RequireAuth(userID); err != nil {
		return err
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	item, err := s.carts.GetByID(cartItemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAccessDenied
		}
		return err
	}
	if item.UserID != userID {
		return ErrAccessDenied
	}

	return s.carts.UpdateQuantity(cartItemID, quantity)
}

// ClearCart deletes every cart line owned by the caller. Clearing an empty
// cart is a no-op.
func (s *CartService) ClearCart(userID string) error {
	if err := s.guard.RequireAuth(userID); err != nil {
		return err
	}
	return s.carts.DeleteByUser(userID)
}

// ItemCount returns the sum of quantities across the caller's cart lines.
// The only cart operation open to anonymous callers: they get 0, not an
// error.
func (s *CartService) ItemCount(userID string) (int, error) {
	if userID == "" {
		return 0, nil
	}
	return s.carts.SumQuantities(userID)
}
