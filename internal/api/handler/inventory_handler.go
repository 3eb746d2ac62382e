package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizdata/business-api/internal/api/metrics"
	"github.com/bizdata/business-api/internal/core/ports"
	"github.com/bizdata/business-api/pkg/logger"
)

// InventoryHandler handles inventory report requests.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type sendReportRequest struct {
	ToEmail    string `json:"to_email"    validate:"required,email"`
	Subject    string `json:"subject"     validate:"max=200"`
	Body       string `json:"body"        validate:"max=2000"`
	CompanyNIT string `json:"company_nit" validate:"max=20"`
}

type sendReportResponse struct {
	Message string `json:"message"`
}

// SendReport handles POST /api/inventory/report/send.
//
// @Summary      Send inventory report
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendReportRequest  true  "Report request"
// @Success      200   {object}  sendReportResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/inventory/report/send [post]
func (h *InventoryHandler) SendReport(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req sendReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	log := logger.Get()
	log.Info().
		Str("requested_by", identity.Email).
		Str("to", req.ToEmail).
		Str("company_nit", req.CompanyNIT).
		Msg("inventory report requested")

	start := time.Now()
	err = h.service.SendReport(c.Request().Context(), ports.SendReportInput{
		ToEmail:    req.ToEmail,
		Subject:    req.Subject,
		Body:       req.Body,
		CompanyNIT: req.CompanyNIT,
	})
	if err != nil {
		metrics.ReportsSentTotal.WithLabelValues("error").Inc()
		metrics.ReportDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return err
	}

	metrics.ReportsSentTotal.WithLabelValues("sent").Inc()
	metrics.ReportDuration.WithLabelValues("sent").Observe(time.Since(start).Seconds())
	return c.JSON(http.StatusOK, sendReportResponse{
		Message: "inventory report sent to " + req.ToEmail,
	})
}
