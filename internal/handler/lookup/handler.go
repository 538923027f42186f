package lookup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/service/lookup"
)

// Handler serves the lookup lists as bare arrays, matching what the Residen
// app already parses.
type Handler struct {
	service *lookup.Service
}

func NewHandler(service *lookup.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/appointments_category", h.ListCategories)
	r.GET("/appointments_room", h.ListRooms)
	r.GET("/appointments_status", h.ListStatuses)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	if rooms == nil {
		rooms = []*model.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *Handler) ListStatuses(c *gin.Context) {
	statuses, err := h.service.ListStatuses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list statuses"})
		return
	}
	if statuses == nil {
		statuses = []*model.StatusOption{}
	}
	c.JSON(http.StatusOK, statuses)
}
