package controllers

import (
	"context"
	"net/http"

	"voyago/voyago/services/pdf"
	"voyago/voyago/types"
	"voyago/voyago/utils/logging"

	"go.uber.org/zap"
)

type ExportController struct{}

func NewExportController() *ExportController {
	return &ExportController{}
}

// Export renders the itinerary as a PDF attachment. Nothing is stored;
// the bytes exist only for this response.
func (c *ExportController) Export(ctx context.Context, req types.ExportRequest) ([]byte, int, any) {
	if req.Country == "" || len(req.Days) == 0 {
		return nil, http.StatusBadRequest, types.Envelope{
			Error: "Country and itinerary days are required",
			Data:  []types.ItineraryDay{},
		}
	}

	duration := req.Duration
	if duration <= 0 {
		duration = len(req.Days)
	}

	data, err := pdf.RenderItinerary(req.Country, duration, req.Days)
	if err != nil {
		logging.ErrorLogger.Error("PDF generation failed", zap.Error(err))
		return nil, http.StatusInternalServerError, types.Envelope{
			Error: "Failed to generate PDF",
			Data:  []types.ItineraryDay{},
		}
	}
	return data, http.StatusOK, nil
}
