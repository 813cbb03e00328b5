package reports

import (
	"fmt"
	"net/http"

	"github.com/chris/gateway-dashboard/pkg/handlers/respond"
	"github.com/chris/gateway-dashboard/pkg/mapping"
	"github.com/chris/gateway-dashboard/pkg/service"
)

// ReportsHandler holds the dependencies for reporting handlers.
type ReportsHandler struct {
	Service service.ReportService
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{Service: svc}
}

func (h *ReportsHandler) ListPaymentSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.Service.FetchPaymentSummaries(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve payment summaries: %v", err), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiPaymentSummaries(summaries))
}

func (h *ReportsHandler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.FetchSystemStats(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve system stats: %v", err), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiSystemStats(stats))
}
