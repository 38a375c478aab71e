package billing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grehub24-dot/campusflow/internal/shared/apperror"
	"github.com/grehub24-dot/campusflow/internal/shared/response"
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

func (h *Handler) GetInvoice(c *gin.Context) {
	resp, err := h.service.InvoiceForStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetOutstanding(c *gin.Context) {
	resp, err := h.service.OutstandingInvoices(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDashboard(c *gin.Context) {
	resp, err := h.service.DashboardSummary(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
