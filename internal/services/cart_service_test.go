package services_test

import (
	"errors"
	"testing"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/stretchr/testify/assert"
)

func newCartFixture(t *testing.T) (*services.CartService, *repositories.MockCartRepository, *repositories.MockProductRepository, *repositories.MockProfileRepository) {
	t.Helper()
	cartRepo := repositories.NewMockCartRepository()
	productRepo := repositories.NewMockProductRepository().WithCartRepository(cartRepo)
	profileRepo := repositories.NewMockProfileRepository()
	guard := services.NewGuard(profileRepo)
	service := services.NewCartService(cartRepo, productRepo, guard, stubMedia{})
	return service, cartRepo, productRepo, profileRepo
}

func TestCartService_RequiresAuth(t *testing.T) {
	service, _, productRepo, _ := newCartFixture(t)
	product := seedProduct(t, productRepo, "Plush Bear", "toys", true)

	_, err := service.GetCart("")
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
	_, err = service.AddToCart("", product.ID, 1)
	assert.ErrorIs(t, err, services.ErrNotAuthenticated)
	assert.ErrorIs(t, service.RemoveFromCart("", "item-1"), services.ErrNotAuthenticated)
	assert.ErrorIs(t, service.UpdateQuantity("", "item-1", 2), services.ErrNotAuthenticated)
	assert.ErrorIs(t, service.ClearCart(""), services.ErrNotAuthenticated)
}

func TestCartService_AddToCartAccumulates(t *testing.T) {
	service, _, productRepo, _ := newCartFixture(t)
	product := seedProduct(t, productRepo, "Plush Bear B", "toys", true)

	// addToCart(B, 2) then addToCart(B, 3) yields one line with quantity 5
	firstID, err := service.AddToCart("user-1", product.ID, 2)
	assert.NoError(t, err)
	secondID, err := service.AddToCart("user-1", product.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, firstID, secondID)

	cart, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart, 1)
	assert.Equal(t, product.ID, cart[0].ProductID)
	assert.Equal(t, 5, cart[0].Quantity)

	count, err := service.ItemCount("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestCartService_AddToCartRejectsMissingOrInactive(t *testing.T) {
	service, _, productRepo, _ := newCartFixture(t)
	inactive := seedProduct(t, productRepo, "Ghost Lamp", "lighting", false)

	_, err := service.AddToCart("user-1", "no-such-product", 1)
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	_, err = service.AddToCart("user-1", inactive.ID, 1)
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	cart, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartService_GetCartJoinsLiveProduct(t *testing.T) {
	service, _, productRepo, _ := newCartFixture(t)
	product := seedProduct(t, productRepo, "Red Mug", "kitchen", true)

	_, err := service.AddToCart("user-1", product.ID, 1)
	assert.NoError(t, err)

	// Price reflects live product state, not the price at add time
	product.Price = 12.50
	assert.NoError(t, productRepo.Update(product))

	cart, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart, 1)
	assert.Equal(t, 12.50, cart[0].Product.Price)
	assert.Equal(t, "Red Mug", cart[0].Product.Name)
}

func TestCartService_OwnershipChecks(t *testing.T) {
	service, _, productRepo, _ := newCartFixture(t)
	product := seedProduct(t, productRepo, "Plush Bear", "toys", true)

	itemID, err := service.AddToCart("owner", product.ID, 2)
	assert.NoError(t, err)

	// Another user's line and a missing line collapse to the same error
	assert.ErrorIs(t, service.RemoveFromCart("intruder", itemID), services.ErrAccessDenied)
	assert.ErrorIs(t, service.UpdateQuantity("intruder", itemID, 9), services.ErrAccessDenied)
	assert.ErrorIs(t, service.RemoveFromCart("owner", "no-such-item"), services.ErrAccessDenied)

	// The rejected calls left the line untouched
	cart, err := service.GetCart("owner")
	assert.NoError(t, err)
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	service, _, productRepo, _ := newCartFixture(t)
	product := seedProduct(t, productRepo, "Plush Bear", "toys", true)

	itemID, err := service.AddToCart("user-1", product.ID, 2)
	assert.NoError(t, err)

	// Zero and negative quantities are rejected and never delete the line
	assert.ErrorIs(t, service.UpdateQuantity("user-1", itemID, 0), services.ErrInvalidQuantity)
	assert.ErrorIs(t, service.UpdateQuantity("user-1", itemID, -3), services.ErrInvalidQuantity)
	cart, _ := service.GetCart("user-1")
	assert.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	// A positive quantity replaces, not accumulates
	assert.NoError(t, service.UpdateQuantity("user-1", itemID, 7))
	cart, _ = service.GetCart("user-1")
	assert.Equal(t, 7, cart[0].Quantity)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	service, _, productRepo, _ := newCartFixture(t)
	bear := seedProduct(t, productRepo, "Plush Bear", "toys", true)
	mug := seedProduct(t, productRepo, "Red Mug", "kitchen", true)

	itemID, err := service.AddToCart("user-1", bear.ID, 1)
	assert.NoError(t, err)
	_, err = service.AddToCart("user-1", mug.ID, 2)
	assert.NoError(t, err)

	assert.NoError(t, service.RemoveFromCart("user-1", itemID))
	cart, _ := service.GetCart("user-1")
	assert.Len(t, cart, 1)

	assert.NoError(t, service.ClearCart("user-1"))
	cart, _ = service.GetCart("user-1")
	assert.Empty(t, cart)

	// Clearing an already empty cart is a no-op
	assert.NoError(t, service.ClearCart("user-1"))
}

func TestCartService_ItemCountAnonymous(t *testing.T) {
	service, _, _, _ := newCartFixture(t)

	// The one cart operation exempt from auth: anonymous callers get 0
	count, err := service.ItemCount("")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCartService_ProductDeleteCascades(t *testing.T) {
	service, cartRepo, productRepo, _ := newCartFixture(t)
	product := seedProduct(t, productRepo, "Plush Bear", "toys", true)

	_, err := service.AddToCart("user-1", product.ID, 3)
	assert.NoError(t, err)

	assert.NoError(t, productRepo.Delete(product.ID))

	items, err := cartRepo.ListByUser("user-1")
	assert.NoError(t, err)
	assert.Empty(t, items)

	count, err := service.ItemCount("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCartService_GetCartSkipsDanglingLines(t *testing.T) {
	service, cartRepo, productRepo, _ := newCartFixture(t)
	bear := seedProduct(t, productRepo, "Plush Bear", "toys", true)
	mug := seedProduct(t, productRepo, "Red Mug", "kitchen", true)

	_, err := service.AddToCart("user-1", bear.ID, 1)
	assert.NoError(t, err)
	_, err = service.AddToCart("user-1", mug.ID, 2)
	assert.NoError(t, err)

	// Simulate a line whose product vanished out-of-band: bypass the
	// repository cascade by inserting the orphan directly.
	orphanID, err := cartRepo.Upsert("user-1", "vanished-product", 4)
	assert.NoError(t, err)
	assert.NotEmpty(t, orphanID)

	cart, err := service.GetCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, cart, 2)
	for _, line := range cart {
		assert.NotEqual(t, "vanished-product", line.ProductID)
	}
}

// failingProductRepository wraps the in-memory repository but fails every
// lookup, standing in for a store outage.
type failingProductRepository struct {
	repositories.ProductRepository
	err error
}

func (f failingProductRepository) GetByID(id string) (*models.Product, error) {
	return nil, f.err
}

func TestCartService_ProductLookupFailurePropagates(t *testing.T) {
	cartRepo := repositories.NewMockCartRepository()
	productRepo := repositories.NewMockProductRepository().WithCartRepository(cartRepo)
	guard := services.NewGuard(repositories.NewMockProfileRepository())
	product := seedProduct(t, productRepo, "Plush Bear", "toys", true)

	healthy := services.NewCartService(cartRepo, productRepo, guard, stubMedia{})
	_, err := healthy.AddToCart("user-1", product.ID, 1)
	assert.NoError(t, err)

	lookupErr := errors.New("connection refused")
	broken := services.NewCartService(cartRepo, failingProductRepository{productRepo, lookupErr}, guard, stubMedia{})

	// A failed lookup is not a missing product: the cart read fails rather
	// than rendering empty, and adds surface the failure, not a 404
	_, err = broken.GetCart("user-1")
	assert.ErrorIs(t, err, lookupErr)

	_, err = broken.AddToCart("user-1", product.ID, 1)
	assert.ErrorIs(t, err, lookupErr)
	assert.NotErrorIs(t, err, services.ErrProductNotFound)
}
