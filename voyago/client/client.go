// Package client is the Go consumer of the /api surface. It satisfies
// conversation.PlannerAPI, so the CLI chat runs the same engine the
// websocket host does.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"voyago/voyago/types"
	"voyago/voyago/utils/httputils"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	var env envelope
	status, err := httputils.PostJSON(ctx, c.httpClient, c.baseURL+path, body, &env)
	if err != nil {
		return err
	}
	if status != http.StatusOK || !env.Success {
		if env.Error != "" {
			return fmt.Errorf("%s", env.Error)
		}
		return fmt.Errorf("request failed with status %d", status)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) ParseTravelRequest(ctx context.Context, message string) (types.ParsedTravelIntent, error) {
	var parsed types.ParsedTravelIntent
	err := c.post(ctx, "/api/parse-travel-request", types.ParseRequest{Message: message}, &parsed)
	return parsed, err
}

func (c *Client) GenerateItinerary(ctx context.Context, req types.TripRequest) ([]types.ItineraryDay, error) {
	var days []types.ItineraryDay
	err := c.post(ctx, "/api/generate-itinerary", req, &days)
	return days, err
}

func (c *Client) SearchImages(ctx context.Context, query, country string) ([]types.TravelImage, error) {
	var list types.ImageList
	err := c.post(ctx, "/api/search-images", types.ImageSearchRequest{Query: query, Country: country}, &list)
	return list.Images, err
}

// Chat hits the free-form travel chat endpoint, outside the planning
// state machine.
func (c *Client) Chat(ctx context.Context, message, chatContext string) (string, error) {
	var reply string
	err := c.post(ctx, "/api/chat", types.ChatRequest{Message: message, Context: chatContext}, &reply)
	return reply, err
}

func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status %d", resp.StatusCode)
	}
	return nil
}
