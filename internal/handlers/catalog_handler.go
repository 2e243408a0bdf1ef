package handlers

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/categories", h.HandleCategories)
}

// RegisterAdminRoutes registers the admin catalog routes.
func (h *CatalogHandler) RegisterAdminRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListAllProducts)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
	router.Post("/uploads", h.HandleGenerateUploadTicket)
}

// HandleListProducts is the public listing: active products only, optionally
// narrowed by category and search text.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	filter := services.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	products, err := h.service.ListProducts(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(products)
}

// HandleCategories returns the sorted distinct categories of active
// products.
func (h *CatalogHandler) HandleCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(categories)
}

// HandleListAllProducts returns every product regardless of active flag.
func (h *CatalogHandler) HandleListAllProducts(c *fiber.Ctx) error {
	products, err := h.service.ListAllProducts(callerID(c))
	if err != nil {
		log.Printf("Error listing all products: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(products)
}

// ProductRequest represents the create/update body for a product. Price and
// name/description/category validity is enforced here, at the boundary; the
// store below does not re-check.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageID     *string `json:"imageId" validate:"omitempty,uuid"`
	Category    string  `json:"category" validate:"required,max=100"`
	IsActive    *bool   `json:"isActive"`
}

// HandleCreateProduct creates a new product. The active flag defaults to
// true when omitted.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageID:     req.ImageID,
		Category:    req.Category,
		IsActive:    isActive,
	}
	if err := h.service.CreateProduct(callerID(c), &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct replaces the mutable fields of a product, including
// the active flag, which must be sent explicitly.
func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}
	if req.IsActive == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "isActive is required for product updates",
		})
	}

	product := models.Product{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageID:     req.ImageID,
		Category:    req.Category,
		IsActive:    *req.IsActive,
	}
	if err := h.service.UpdateProduct(callerID(c), &product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct hard-deletes a product and the cart lines referencing
// it.
func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(callerID(c), productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// HandleGenerateUploadTicket issues a short-lived image upload URL.
func (h *CatalogHandler) HandleGenerateUploadTicket(c *fiber.Ctx) error {
	ticket, err := h.service.GenerateUploadTicket(callerID(c))
	if err != nil {
		log.Printf("Error issuing upload ticket: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(ticket)
}
