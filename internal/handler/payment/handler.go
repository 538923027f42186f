package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/service/payment"
	"github.com/residenhealth/patient-sync-api/pkg/httputil"
)

type Handler struct {
	service *payment.Service
}

func NewHandler(service *payment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/patient/:pid/encounter/:eid/payment", h.RecordPayment)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	pid, err := strconv.ParseInt(c.Param("pid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid patient ID"})
		return
	}

	eid, err := strconv.ParseInt(c.Param("eid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid encounter ID"})
		return
	}

	var body model.RecordPaymentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, httputil.Response{
				Success: false,
				Error:   "Missing required fields: amount, method, or source.",
			})
			return
		}
		c.JSON(http.StatusBadRequest, httputil.Response{Success: false, Error: "invalid request body"})
		return
	}

	receipt, err := h.service.RecordPayment(c.Request.Context(), &model.PaymentRequest{
		PatientID:   pid,
		EncounterID: eid,
		Amount:      body.Amount,
		Method:      body.Method,
		Source:      body.Source,
		Description: body.Description,
	})
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, receipt)
}
