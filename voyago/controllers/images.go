package controllers

import (
	"context"
	"net/http"

	"voyago/voyago/services/unsplash"
	"voyago/voyago/types"
	"voyago/voyago/utils/logging"

	"go.uber.org/zap"
)

// PhotoSearcher is what the images endpoint needs from the Unsplash
// client; tests substitute their own.
type PhotoSearcher interface {
	Enabled() bool
	SearchPhotos(ctx context.Context, query, country string) ([]types.TravelImage, error)
}

type ImagesController struct {
	photos PhotoSearcher
}

func NewImagesController(photos PhotoSearcher) *ImagesController {
	return &ImagesController{photos: photos}
}

// SearchImages answers 200 with real or placeholder images for every
// valid query; only a missing query is an error.
func (c *ImagesController) SearchImages(ctx context.Context, req types.ImageSearchRequest) (int, any) {
	if req.Query == "" {
		return http.StatusBadRequest, types.Envelope{
			Error: "Search query is required",
			Data:  []types.TravelImage{},
		}
	}

	if !c.photos.Enabled() {
		logging.AppLogger.Info("Unsplash API key not configured, using free placeholder images")
		return http.StatusOK, placeholderEnvelope(req.Query)
	}

	images, err := c.photos.SearchPhotos(ctx, req.Query, req.Country)
	if err != nil {
		logging.ErrorLogger.Error("image search failed", zap.Error(err))
		return http.StatusOK, placeholderEnvelope(req.Query)
	}
	if len(images) == 0 {
		return http.StatusOK, placeholderEnvelope(req.Query)
	}

	return http.StatusOK, types.Envelope{
		Success: true,
		Data:    types.ImageList{Images: images},
	}
}

func placeholderEnvelope(query string) types.Envelope {
	return types.Envelope{
		Success: true,
		Data: types.ImageList{
			Images: []types.TravelImage{unsplash.PlaceholderImage(query)},
		},
	}
}
