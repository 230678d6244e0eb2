package types

// Envelope is the JSON shape every /api endpoint answers with.
// Data keeps the per-endpoint zero-value shape even on errors so
// clients never branch on error vs success payload structure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

type TripRequest struct {
	Country   string `json:"country"`
	Duration  int    `json:"duration"`
	StartCity string `json:"startCity,omitempty"`
	FinalCity string `json:"finalCity,omitempty"`
}

// ParsedTravelIntent is what the travel parser extracts from one
// free-text message. HasRequiredInfo is true only when both country
// and duration were found.
type ParsedTravelIntent struct {
	Country            string `json:"country"`
	Duration           int    `json:"duration"`
	StartCity          string `json:"startCity"`
	FinalCity          string `json:"finalCity"`
	HasRequiredInfo    bool   `json:"hasRequiredInfo"`
	ParsedSuccessfully bool   `json:"parsedSuccessfully"`
}

type ItineraryDay struct {
	Day        int      `json:"day"`
	City       string   `json:"city"`
	Activities []string `json:"activities"`
}

type TravelImage struct {
	URL             string `json:"url"`
	Title           string `json:"title"`
	Source          string `json:"source"`
	Thumbnail       string `json:"thumbnail"`
	Photographer    string `json:"photographer,omitempty"`
	PhotographerURL string `json:"photographerUrl,omitempty"`
}

type ImageList struct {
	Images []TravelImage `json:"images"`
}

type ImageSearchRequest struct {
	Query   string `json:"query"`
	Country string `json:"country,omitempty"`
}

type ParseRequest struct {
	Message string `json:"message"`
}

type ChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

type ExportRequest struct {
	Country  string         `json:"country"`
	Duration int            `json:"duration"`
	Days     []ItineraryDay `json:"days"`
}
