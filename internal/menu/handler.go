package menu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iam-fast/meyers-scraper/internal/kanpla"
)

// ExportResult reports where an export landed.
type ExportResult struct {
	File      string `json:"file"`
	ObjectKey string `json:"object_key,omitempty"`
}

// Exporter persists a processed menu mapping.
type Exporter interface {
	Export(ctx context.Context, menus *Menus) (ExportResult, error)
}

type Handler struct {
	service  *Service
	exporter Exporter
	logger   *slog.Logger
}

func NewHandler(service *Service, exporter Exporter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, exporter: exporter, logger: logger}
}

// --------------------------------------------------
// GET /api/health
// --------------------------------------------------
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "meyers-scraper-api",
	})
}

// --------------------------------------------------
// GET /api/menus
// --------------------------------------------------
func (h *Handler) GetAllMenus(c *gin.Context) {
	params := paramsFromQuery(c)

	menus, params, err := h.service.FetchAll(c.Request.Context(), params)
	if err != nil {
		h.fail(c, params, err)
		return
	}

	if menus.Len() == 0 {
		h.respondError(c, http.StatusNotFound, "No menu data found", params)
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Success:  true,
		Message:  successMessage(menus.Len()),
		Data:     menus,
		Metadata: h.metadata(c, params).WithTotal(menus.Len()),
	})
}

// --------------------------------------------------
// GET /api/menus/:date
// --------------------------------------------------
func (h *Handler) GetMenuByDate(c *gin.Context) {
	date := c.Param("date")
	params := paramsFromQuery(c)

	dm, params, err := h.service.FetchByDate(c.Request.Context(), date, params)
	if err != nil {
		h.fail(c, params, err)
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Success:  true,
		Message:  "Successfully retrieved menu for " + date,
		Data:     dm,
		Metadata: h.metadata(c, params).WithDate(date),
	})
}

// --------------------------------------------------
// POST /api/menus/export
// --------------------------------------------------
func (h *Handler) ExportMenus(c *gin.Context) {
	params := paramsFromQuery(c)

	menus, params, err := h.service.FetchAll(c.Request.Context(), params)
	if err != nil {
		h.fail(c, params, err)
		return
	}

	if menus.Len() == 0 {
		h.respondError(c, http.StatusNotFound, "No menu data found", params)
		return
	}

	result, err := h.exporter.Export(c.Request.Context(), menus)
	if err != nil {
		h.logger.Error("export failed", "error", err)
		h.respondError(c, http.StatusInternalServerError, "Export failed: "+err.Error(), params)
		return
	}

	c.JSON(http.StatusOK, Envelope{
		Success:  true,
		Message:  successMessage(menus.Len()) + ", exported",
		Data:     result,
		Metadata: h.metadata(c, params).WithTotal(menus.Len()),
	})
}

func (h *Handler) fail(c *gin.Context, params kanpla.Params, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}
	h.respondError(c, status, err.Error(), params)
}

func (h *Handler) respondError(c *gin.Context, status int, message string, params kanpla.Params) {
	c.JSON(status, Envelope{
		Success:  false,
		Message:  message,
		Data:     nil,
		Metadata: h.metadata(c, params),
	})
}

func (h *Handler) metadata(c *gin.Context, params kanpla.Params) *Metadata {
	md := NewMetadata(params)
	md.RequestID = c.GetString("requestID")
	return md
}

// httpStatus maps pipeline errors to response codes: caller mistakes to
// 4xx, vendor/network trouble to 502, anything else to 500.
func httpStatus(err error) int {
	var apiErr *kanpla.APIError
	var urlErr *url.Error
	switch {
	case errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &apiErr), errors.As(err, &urlErr),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func paramsFromQuery(c *gin.Context) kanpla.Params {
	return kanpla.Params{
		SchoolID:      c.Query("school_id"),
		Language:      c.Query("language"),
		TargetOfferID: c.Query("target_offer_id"),
	}
}

func successMessage(n int) string {
	return fmt.Sprintf("Successfully retrieved %d date menus", n)
}
