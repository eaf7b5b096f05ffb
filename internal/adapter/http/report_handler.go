package http

import (
	"net/http"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"
)

type ReportHandler struct {
	service interfaces.ReportService
	logger  logger.Logger
}

func NewReportHandler(service interfaces.ReportService, logger logger.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// HandleSalesReport serves GET /reports/sales?start=&end=.
func (h *ReportHandler) HandleSalesReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed, nil)
		return
	}

	start, end, ok := parsePeriodQuery(w, r)
	if !ok {
		return
	}

	result, err := h.service.SalesReport(r.Context(), start, end)
	if err != nil {
		h.logger.Error("report_failed", "Failed to build sales report", "", nil, err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
