package handler

import (
	"net/http"

	"grove/internal/content"
	"grove/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the static site content.
type ContentHandler struct {
	catalog *content.Catalog
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(catalog *content.Catalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

// Notices returns the buzzboard announcements.
func (h *ContentHandler) Notices(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.Notices(), "Notices retrieved successfully")
}

// Memories returns the memory-tree entries.
func (h *ContentHandler) Memories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.Memories(), "Memories retrieved successfully")
}

// Sharings returns the alumni testimonials.
func (h *ContentHandler) Sharings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.catalog.Sharings(), "Sharings retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
