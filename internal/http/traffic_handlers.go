package http

import (
	"net/http"

	"restaurant-insights/internal/ingestors"
	"restaurant-insights/internal/reports"

	"github.com/go-chi/chi/v5"
)

const (
	paramRestaurantID = "restaurantID"
	queryTimeframe    = "timeframe"
)

type ingestTrafficHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestTrafficHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestTrafficHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /restaurants/{restaurantID}/traffic requests.
func (h *ingestTrafficHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), chi.URLParam(r, paramRestaurantID), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	// the response is already committed, an encode failure can only be logged by the caller
	_ = writeJSON(w, http.StatusAccepted, result)
	return nil
}

type trafficReportHandler struct {
	reportService reports.ReportService
}

func NewTrafficReportHandler(reportService reports.ReportService) AppHttpHandler {
	return &trafficReportHandler{
		reportService: reportService,
	}
}

// Handle processes GET /restaurants/{restaurantID}/traffic/report requests.
func (h *trafficReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	report, err := h.reportService.BuildReport(r.Context(), chi.URLParam(r, paramRestaurantID), r.URL.Query().Get(queryTimeframe))
	if err != nil {
		return err
	}

	_ = writeJSON(w, http.StatusOK, report)
	return nil
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
