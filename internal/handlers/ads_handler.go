package handlers

import (
	"log"

	"katalog/internal/models"
	"katalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdsHandler handles HTTP requests for advertisements.
type AdsHandler struct {
	service  *services.AdsService
	validate *validator.Validate
}

// NewAdsHandler creates a new AdsHandler.
func NewAdsHandler(service *services.AdsService) *AdsHandler {
	return &AdsHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public advertisement routes.
func (h *AdsHandler) RegisterRoutes(router fiber.Router) {
	adRoutes := router.Group("/ads")
	adRoutes.Get("/", h.HandleAllActive)
	adRoutes.Get("/random", h.HandleRandomActive)
}

// RegisterAdminRoutes registers the admin advertisement routes.
func (h *AdsHandler) RegisterAdminRoutes(router fiber.Router) {
	adRoutes := router.Group("/ads")
	adRoutes.Get("/", h.HandleListAll)
	adRoutes.Post("/", h.HandleCreate)
	adRoutes.Post("/uploads", h.HandleGenerateUploadTicket)
	adRoutes.Put("/:id", h.HandleUpdate)
	adRoutes.Delete("/:id", h.HandleDelete)
}

// HandleAllActive returns every active ad for client-side popup rotation.
func (h *AdsHandler) HandleAllActive(c *fiber.Ctx) error {
	ads, err := h.service.AllActive()
	if err != nil {
		log.Printf("Error listing active ads: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(ads)
}

// HandleRandomActive returns one random active ad, or null when none exist.
func (h *AdsHandler) HandleRandomActive(c *fiber.Ctx) error {
	ad, err := h.service.RandomActive()
	if err != nil {
		log.Printf("Error picking random ad: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(ad)
}

// HandleListAll returns every ad regardless of active flag.
func (h *AdsHandler) HandleListAll(c *fiber.Ctx) error {
	ads, err := h.service.ListAllAds(callerID(c))
	if err != nil {
		log.Printf("Error listing all ads: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(ads)
}

// AdRequest represents the create/update body for an advertisement.
type AdRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	ImageID  *string `json:"imageId" validate:"omitempty,uuid"`
	Link     *string `json:"link" validate:"omitempty,url"`
	IsActive *bool   `json:"isActive"`
}

// HandleCreate creates a new ad. The active flag defaults to true when
// omitted.
func (h *AdsHandler) HandleCreate(c *fiber.Ctx) error {
	var req AdRequest
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
	ad := models.Advertisement{
		Title:    req.Title,
		ImageID:  req.ImageID,
		Link:     req.Link,
		IsActive: isActive,
	}
	if err := h.service.CreateAd(callerID(c), &ad); err != nil {
		log.Printf("Error creating ad: %v", err)
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ad)
}

// HandleUpdate replaces the mutable fields of an ad; the active flag must be
// sent explicitly.
func (h *AdsHandler) HandleUpdate(c *fiber.Ctx) error {
	var req AdRequest
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
			"message": "isActive is required for ad updates",
		})
	}

	ad := models.Advertisement{
		ID:       c.Params("id"),
		Title:    req.Title,
		ImageID:  req.ImageID,
		Link:     req.Link,
		IsActive: *req.IsActive,
	}
	if err := h.service.UpdateAd(callerID(c), &ad); err != nil {
		log.Printf("Error updating ad %s: %v", ad.ID, err)
		return serviceError(c, err)
	}
	return c.JSON(ad)
}

// HandleGenerateUploadTicket issues a short-lived image upload URL.
func (h *AdsHandler) HandleGenerateUploadTicket(c *fiber.Ctx) error {
	ticket, err := h.service.GenerateUploadTicket(callerID(c))
	if err != nil {
		log.Printf("Error issuing upload ticket: %v", err)
		return serviceError(c, err)
	}
	return c.JSON(ticket)
}

// HandleDelete hard-deletes an ad.
func (h *AdsHandler) HandleDelete(c *fiber.Ctx) error {
	adID := c.Params("id")
	if err := h.service.DeleteAd(callerID(c), adID); err != nil {
		log.Printf("Error deleting ad %s: %v", adID, err)
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Advertisement deleted successfully",
	})
}
