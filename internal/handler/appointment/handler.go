package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/service/appointment"
	apperrors "github.com/residenhealth/patient-sync-api/pkg/errors"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.PUT("/patient/:pid/appointment/:eid", h.UpdateAppointment)
	r.GET("/appointments", h.ListAppointments)
}

// UpdateAppointment keeps the response contract the Residen app already
// consumes: 200 {success, eid, pid} or 400 {error}.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patient ID"})
		return
	}

	eid, err := strconv.ParseInt(c.Param("eid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment ID"})
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateAppointment(c.Request.Context(), pid, eid, &req); err != nil {
		if apperrors.KindOf(err) == apperrors.KindValidation {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"eid":     c.Param("eid"),
		"pid":     c.Param("pid"),
	})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	filters := &model.AppointmentFilters{
		FacilityID: c.Query("facility"),
		ProviderID: c.Query("provider"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}

	appointments, err := h.service.ListAppointments(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list appointments"})
		return
	}
	if appointments == nil {
		appointments = []*model.Appointment{}
	}

	c.JSON(http.StatusOK, appointments)
}
