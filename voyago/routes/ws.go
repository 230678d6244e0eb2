package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"voyago/voyago/controllers"
	"voyago/voyago/conversation"
	"voyago/voyago/types"
	"voyago/voyago/utils/logging"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// chatSocket hosts one conversation engine per connection. All dialogue
// state lives on the socket and dies with it; nothing is stored
// server-side between connections.
func chatSocket(planner *controllers.PlannerController, images *controllers.ImagesController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		sessionID := uuid.New().String()
		engine := conversation.New(localPlanner{planner: planner, images: images})

		logging.AppLogger.Info("chat session opened", zap.String("session_id", sessionID))

		if err := writeMessages(ctx, conn, engine.Messages()); err != nil {
			return
		}

		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			if typ != websocket.MessageText {
				conn.Close(websocket.StatusUnsupportedData, "unsupported data")
				return
			}

			replies := engine.HandleMessage(ctx, string(data))
			if err := writeMessages(ctx, conn, replies); err != nil {
				return
			}
		}
	}
}

func writeMessages(ctx context.Context, conn *websocket.Conn, msgs []conversation.Message) error {
	for _, msg := range msgs {
		payload, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
			return err
		}
	}
	return nil
}

// localPlanner adapts the controllers to conversation.PlannerAPI so
// the websocket host skips the HTTP round trip.
type localPlanner struct {
	planner *controllers.PlannerController
	images  *controllers.ImagesController
}

func (l localPlanner) ParseTravelRequest(ctx context.Context, message string) (types.ParsedTravelIntent, error) {
	status, body := l.planner.ParseTravelRequest(ctx, types.ParseRequest{Message: message})
	return decodeEnvelope[types.ParsedTravelIntent](status, body)
}

func (l localPlanner) GenerateItinerary(ctx context.Context, req types.TripRequest) ([]types.ItineraryDay, error) {
	status, body := l.planner.GenerateItinerary(ctx, req)
	return decodeEnvelope[[]types.ItineraryDay](status, body)
}

func (l localPlanner) SearchImages(ctx context.Context, query, country string) ([]types.TravelImage, error) {
	status, body := l.images.SearchImages(ctx, types.ImageSearchRequest{Query: query, Country: country})
	list, err := decodeEnvelope[types.ImageList](status, body)
	if err != nil {
		return nil, err
	}
	return list.Images, nil
}

// decodeEnvelope re-reads a controller response the way an HTTP client
// would: marshal whatever body shape it produced, then pull the typed
// data back out of the envelope.
func decodeEnvelope[T any](status int, body any) (T, error) {
	var out T

	raw, err := json.Marshal(body)
	if err != nil {
		return out, err
	}

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return out, err
	}
	if status != http.StatusOK || !env.Success {
		if env.Error != "" {
			return out, fmt.Errorf("%s", env.Error)
		}
		return out, fmt.Errorf("request failed with status %d", status)
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, err
	}
	return out, nil
}
