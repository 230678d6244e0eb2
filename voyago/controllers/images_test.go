package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"voyago/voyago/types"
	"voyago/voyago/utils/logging"
)

type stubSearcher struct {
	enabled bool
	images  []types.TravelImage
	err     error

	lastQuery   string
	lastCountry string
}

func (s *stubSearcher) Enabled() bool { return s.enabled }

func (s *stubSearcher) SearchPhotos(ctx context.Context, query, country string) ([]types.TravelImage, error) {
	s.lastQuery = query
	s.lastCountry = country
	return s.images, s.err
}

func imagesFrom(t *testing.T, body any) []types.TravelImage {
	t.Helper()
	env, ok := body.(types.Envelope)
	if !ok {
		t.Fatalf("expected types.Envelope, got %T", body)
	}
	list, ok := env.Data.(types.ImageList)
	if !ok {
		t.Fatalf("expected image list data, got %#v", env.Data)
	}
	return list.Images
}

func TestSearchImagesMissingQuery(t *testing.T) {
	logging.InitNopLogger()
	c := NewImagesController(&stubSearcher{enabled: true})

	status, body := c.SearchImages(context.Background(), types.ImageSearchRequest{})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	env := body.(types.Envelope)
	if env.Error != "Search query is required" {
		t.Errorf("unexpected error message %q", env.Error)
	}
	if imgs, ok := env.Data.([]types.TravelImage); !ok || len(imgs) != 0 {
		t.Errorf("data must be an empty image array, got %#v", env.Data)
	}
}

func TestSearchImagesDisabledFallsBackToPlaceholder(t *testing.T) {
	logging.InitNopLogger()
	c := NewImagesController(&stubSearcher{enabled: false})

	status, body := c.SearchImages(context.Background(), types.ImageSearchRequest{Query: "Tokyo"})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	images := imagesFrom(t, body)
	if len(images) != 1 {
		t.Fatalf("expected exactly one placeholder, got %d", len(images))
	}
	if images[0].Source != "Free Image Service" {
		t.Errorf("expected a placeholder image, got source %q", images[0].Source)
	}
}

func TestSearchImagesUpstreamErrorFallsBackToPlaceholder(t *testing.T) {
	logging.InitNopLogger()
	c := NewImagesController(&stubSearcher{enabled: true, err: errors.New("rate limited")})

	status, body := c.SearchImages(context.Background(), types.ImageSearchRequest{Query: "Kyoto"})
	if status != http.StatusOK {
		t.Fatalf("upstream failures must still answer 200, got %d", status)
	}
	if images := imagesFrom(t, body); images[0].Source != "Free Image Service" {
		t.Errorf("expected a placeholder image, got source %q", images[0].Source)
	}
}

func TestSearchImagesEmptyResultsFallBackToPlaceholder(t *testing.T) {
	logging.InitNopLogger()
	c := NewImagesController(&stubSearcher{enabled: true, images: []types.TravelImage{}})

	_, body := c.SearchImages(context.Background(), types.ImageSearchRequest{Query: "Osaka"})
	if images := imagesFrom(t, body); images[0].Source != "Free Image Service" {
		t.Errorf("expected a placeholder image, got source %q", images[0].Source)
	}
}

func TestSearchImagesReturnsUpstreamResults(t *testing.T) {
	logging.InitNopLogger()
	want := []types.TravelImage{
		{URL: "https://images.example/1.jpg", Title: "Mount Fuji", Source: "Unsplash"},
		{URL: "https://images.example/2.jpg", Title: "Fuji at dawn", Source: "Unsplash"},
	}
	searcher := &stubSearcher{enabled: true, images: want}
	c := NewImagesController(searcher)

	status, body := c.SearchImages(context.Background(), types.ImageSearchRequest{Query: "Mount Fuji", Country: "Japan"})
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	env := body.(types.Envelope)
	if !env.Success {
		t.Errorf("expected success envelope, got %+v", env)
	}
	images := imagesFrom(t, body)
	if len(images) != 2 || images[0].Title != "Mount Fuji" {
		t.Errorf("upstream results mangled: %#v", images)
	}
	if searcher.lastQuery != "Mount Fuji" || searcher.lastCountry != "Japan" {
		t.Errorf("query not forwarded: %q %q", searcher.lastQuery, searcher.lastCountry)
	}
}
