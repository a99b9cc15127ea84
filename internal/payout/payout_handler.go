package payout

import (
	"net/http"

	payouterrors "go-payroll/internal/payout/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Generate(c *gin.Context) {
	var req GeneratePayoutsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusCreated, len(resp), resp)
}

// GetHistory returns payout history. Employees only ever see their own rows;
// managers and admins see everything, optionally narrowed by ?employee_id.
func (h *Handler) GetHistory(c *gin.Context) {
	employeeID := c.Query("employee_id")
	if c.GetString("role") == "employee" {
		employeeID = c.GetString("employee_id")
	}

	resp, err := h.service.GetHistory(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.SuccessWithCount(c, http.StatusOK, len(resp), resp)
}

// GetSlip serves the slip URL. Only the payout's owner or an admin may
// fetch it; managers do not get blanket access to other people's slips.
func (h *Handler) GetSlip(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if c.GetString("role") != "admin" {
		payout, err := h.service.GetByID(ctx, id)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		if !payout.IsOwner(c.GetString("employee_id")) {
			h.writeServiceError(c, payouterrors.ErrNotPayoutOwner)
			return
		}
	}

	resp, err := h.service.GetSlip(ctx, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkAsPaid(c *gin.Context) {
	resp, err := h.service.MarkAsPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
