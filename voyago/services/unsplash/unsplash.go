// Package unsplash wraps the Unsplash photo search API and the free
// placeholder services the app falls back to when no key is set.
package unsplash

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voyago/voyago/types"
	"voyago/voyago/utils/httputils"
)

const perPage = 3

type Client struct {
	accessKey  string
	baseURL    string
	httpClient *http.Client
}

func NewClient(accessKey string) *Client {
	return &Client{
		accessKey: accessKey,
		baseURL:   "https://api.unsplash.com",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether an access key is configured. Without one the
// caller should serve placeholder images instead.
func (c *Client) Enabled() bool {
	return c.accessKey != ""
}

type searchResponse struct {
	Results []struct {
		AltDescription string `json:"alt_description"`
		URLs           struct {
			Regular string `json:"regular"`
			Small   string `json:"small"`
		} `json:"urls"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// SearchPhotos queries Unsplash with the travel-tuned search string
// built from query and country. An empty slice with a nil error means
// Unsplash had nothing; callers fall back to placeholders.
func (c *Client) SearchPhotos(ctx context.Context, query, country string) ([]types.TravelImage, error) {
	searchQuery := strings.TrimSpace(fmt.Sprintf("%s %s travel destination", query, country))

	params := url.Values{}
	params.Set("query", searchQuery)
	params.Set("per_page", fmt.Sprint(perPage))
	params.Set("orientation", "landscape")
	params.Set("content_filter", "high")

	var resp searchResponse
	err := httputils.GetJSON(ctx, c.httpClient, c.baseURL+"/search/photos", params, "Client-ID "+c.accessKey, &resp)
	if err != nil {
		return nil, err
	}

	images := make([]types.TravelImage, 0, len(resp.Results))
	for _, item := range resp.Results {
		title := item.AltDescription
		if title == "" {
			title = query + " - Travel Photo"
		}
		images = append(images, types.TravelImage{
			URL:             item.URLs.Regular,
			Title:           title,
			Source:          "Unsplash",
			Thumbnail:       item.URLs.Small,
			Photographer:    item.User.Name,
			PhotographerURL: item.User.Links.HTML,
		})
	}
	return images, nil
}

var placeholderServices = []string{
	"https://picsum.photos/400/300",
	"https://source.unsplash.com/400x300",
	"https://loremflickr.com/400/300",
}

// PlaceholderImage builds one image URL from a randomly chosen free
// service, embedding the comma-joined query terms where the service
// supports them.
func PlaceholderImage(query string) types.TravelImage {
	service := placeholderServices[rand.Intn(len(placeholderServices))]
	searchTerm := url.QueryEscape(strings.Join(strings.Fields(query), ","))

	var imageURL string
	switch {
	case strings.Contains(service, "unsplash"):
		imageURL = fmt.Sprintf("%s/?%s,travel,destination", service, searchTerm)
	case strings.Contains(service, "loremflickr"):
		imageURL = fmt.Sprintf("%s/%s,travel", service, searchTerm)
	default:
		imageURL = fmt.Sprintf("%s?random=%d", service, rand.Intn(1000))
	}

	return types.TravelImage{
		URL:       imageURL,
		Title:     query + " - Travel Photo",
		Source:    "Free Image Service",
		Thumbnail: imageURL,
	}
}
