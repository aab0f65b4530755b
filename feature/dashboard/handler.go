package dashboard

import (
	"treeboard/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory tree.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the tree routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tree")
	group.Get("/", h.HandleTree)
	group.Get("/meta", h.HandleMeta)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleTree returns the current tree snapshot.
// @Summary Current Inventory Tree
// @Description Returns the latest merged inventory tree with load metadata. Never fails: before the first successful load the tree is empty.
// @Tags tree
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Tree Snapshot"
// @Router /tree [get]
func (h *Handler) HandleTree(c *fiber.Ctx) error {
	current := h.service.CurrentTree()
	return c.JSON(fiber.Map{
		"tree": current,
		"meta": h.meta(),
	})
}

// HandleMeta returns load metadata without the tree payload.
// @Summary Tree Load Metadata
// @Description Returns when the current tree was loaded and how long the load took.
// @Tags tree
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Load Metadata"
// @Router /tree/meta [get]
func (h *Handler) HandleMeta(c *fiber.Ctx) error {
	return c.JSON(h.meta())
}

// HandleRefresh triggers a reload of the tree.
// @Summary Refresh Inventory Tree
// @Description Rebuilds the tree from the upstream sources. Always responds 200: a failed reload keeps the previous tree visible.
// @Tags tree
// @Accept json
// @Produce json
// @Param force query boolean false "Skip the development cache and refetch"
// @Success 200 {object} map[string]interface{} "Refresh Result"
// @Router /tree/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	force := c.Query("force") == "true"
	l.Info("Tree refresh requested", zap.Bool("force", force))

	h.service.Invalidate(c.Context(), force)

	current := h.service.CurrentTree()
	return c.JSON(fiber.Map{
		"status": "refreshed",
		"roots":  len(current.Roots),
		"nodes":  current.NodeCount(),
		"meta":   h.meta(),
	})
}

func (h *Handler) meta() fiber.Map {
	meta := fiber.Map{}
	if t := h.service.LastLoadTime(); !t.IsZero() {
		meta["last_load_time"] = t
		meta["last_load_duration_ms"] = h.service.LastLoadDuration().Milliseconds()
	}
	return meta
}
