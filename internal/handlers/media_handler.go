package handlers

import (
	"bytes"
	"log"
	"net/url"

	"katalog/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// MediaHandler serves the signed media URLs issued by the media store:
// ticket holders PUT file bytes, resolved URLs GET them back. Access is
// gated by the URL signature alone; the store issues PUT tickets only to
// admins.
type MediaHandler struct {
	store *storage.Store
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(store *storage.Store) *MediaHandler {
	return &MediaHandler{
		store: store,
	}
}

// RegisterRoutes registers the media routes at the app root, outside the
// API group, because the signed URLs embed this exact path.
func (h *MediaHandler) RegisterRoutes(app *fiber.App) {
	app.Put("/media", h.HandleUpload)
	app.Get("/media", h.HandleDownload)
}

// HandleUpload accepts one direct binary upload against a valid ticket.
func (h *MediaHandler) HandleUpload(c *fiber.Ctx) error {
	key, err := h.verifiedKey(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid or expired upload ticket",
		})
	}

	if err := h.store.Save(key, bytes.NewReader(c.Body())); err != nil {
		log.Printf("Error storing media %s: %v", key, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store file",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"fileRef": key,
	})
}

// HandleDownload streams a stored file back to the holder of a resolved URL.
func (h *MediaHandler) HandleDownload(c *fiber.Ctx) error {
	key, err := h.verifiedKey(c)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Invalid or expired media URL",
		})
	}

	reader, err := h.store.Open(key)
	if err != nil {
		log.Printf("Error opening media %s: %v", key, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "File not found",
		})
	}
	return c.SendStream(reader)
}

func (h *MediaHandler) verifiedKey(c *fiber.Ctx) (string, error) {
	u, err := url.ParseRequestURI(c.OriginalURL())
	if err != nil {
		return "", err
	}
	return h.store.VerifyURL(u)
}
