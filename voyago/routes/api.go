package routes

import (
	"encoding/json"
	"net/http"

	"voyago/voyago/controllers"
	"voyago/voyago/types"

	"github.com/go-chi/chi/v5"
)

// API wires the travel endpoints under one router; main mounts it at /api.
func API(
	planner *controllers.PlannerController,
	images *controllers.ImagesController,
	export *controllers.ExportController,
	health *controllers.HealthController,
) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", health.HealthCheck)

	r.Post("/search-images", func(w http.ResponseWriter, req *http.Request) {
		var body types.ImageSearchRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, types.Envelope{
				Error: "Invalid request body",
				Data:  []types.TravelImage{},
			})
			return
		}
		status, resp := images.SearchImages(req.Context(), body)
		writeJSON(w, status, resp)
	})

	r.Post("/generate-itinerary", func(w http.ResponseWriter, req *http.Request) {
		var body types.TripRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, types.Envelope{
				Error: "Invalid request body",
				Data:  []types.ItineraryDay{},
			})
			return
		}
		status, resp := planner.GenerateItinerary(req.Context(), body)
		writeJSON(w, status, resp)
	})

	r.Post("/parse-travel-request", func(w http.ResponseWriter, req *http.Request) {
		var body types.ParseRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, types.Envelope{
				Error: "Invalid request body",
				Data:  types.ParsedTravelIntent{},
			})
			return
		}
		status, resp := planner.ParseTravelRequest(req.Context(), body)
		writeJSON(w, status, resp)
	})

	r.Post("/chat", func(w http.ResponseWriter, req *http.Request) {
		var body types.ChatRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, types.Envelope{
				Error: "Invalid request body",
				Data:  "",
			})
			return
		}
		status, resp := planner.Chat(req.Context(), body)
		writeJSON(w, status, resp)
	})

	r.Post("/export-pdf", func(w http.ResponseWriter, req *http.Request) {
		var body types.ExportRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, types.Envelope{
				Error: "Invalid request body",
				Data:  []types.ItineraryDay{},
			})
			return
		}
		pdfBytes, status, errResp := export.Export(req.Context(), body)
		if errResp != nil {
			writeJSON(w, status, errResp)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=voyago-itinerary.pdf")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		w.Write(pdfBytes)
	})

	r.HandleFunc("/chat/ws", chatSocket(planner, images))

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
