package patient

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/service/patient"
	"github.com/residenhealth/patient-sync-api/pkg/httputil"
)

type Handler struct {
	service *patient.Service
}

func NewHandler(service *patient.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/patient", h.CreatePatient)
	r.GET("/patient/:pid", h.GetPatient)
	r.PUT("/patient/:pid", h.UpdatePatient)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.Patient
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid request body"})
		return
	}

	created, err := h.service.CreatePatient(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, created)
}

func (h *Handler) GetPatient(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid patient ID"})
		return
	}

	found, err := h.service.GetPatient(c.Request.Context(), pid)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, found)
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid patient ID"})
		return
	}

	var req model.Patient
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid request body"})
		return
	}

	updated, err := h.service.UpdatePatient(c.Request.Context(), pid, &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, updated)
}
