// Package conversation implements the trip-planning dialogue: a small
// state machine that turns free-text messages into parser and planner
// calls and an append-only message log. State lives in memory for one
// session only; there is no server-side storage behind it.
package conversation

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"voyago/voyago/types"

	"github.com/google/uuid"
)

// PlannerAPI is the surface the engine needs from the travel API.
// client.Client implements it over HTTP; the websocket host wires the
// controllers in directly.
type PlannerAPI interface {
	ParseTravelRequest(ctx context.Context, message string) (types.ParsedTravelIntent, error)
	GenerateItinerary(ctx context.Context, req types.TripRequest) ([]types.ItineraryDay, error)
	SearchImages(ctx context.Context, query, country string) ([]types.TravelImage, error)
}

const (
	welcomeMessage = "Hi! I'm your AI travel buddy 🌍 Let's plan your perfect trip! Just tell me where you want to go and for how long."
	newTripMessage = "Let's plan another amazing trip! 🌍 Where would you like to go next and for how long?"

	askBothMessage = "I'd love to help plan your trip! Could you tell me which country you'd like to visit and for how many days? For example: \"I want to visit Italy for 7 days\" 🗺️"

	generationFailedMessage = "Sorry, I couldn't generate an itinerary right now. Please make sure the backend server is running and try again! 🛠️"

	changeSpecificsMessage = "I'd be happy to help you adjust your travel plans! 🔄 What would you like to change? You can:\n\n• Ask for a different destination\n• Change the duration\n• Modify start/end cities\n• Or start completely fresh with \"new trip\"! 🎯"

	modifyClarifyMessage = "I didn't detect any specific changes to make. Could you tell me what you'd like to modify? For example:\n\n• \"Change destination to France\"\n• \"Make it 10 days instead\"\n• \"Start from Paris\"\n• \"End in Rome\" 🔄"
)

type Engine struct {
	api      PlannerAPI
	state    State
	trip     TripData
	messages []Message
	rng      *rand.Rand
}

type Option func(*Engine)

// WithRandSource fixes the canned-response selection, for tests.
func WithRandSource(src rand.Source) Option {
	return func(e *Engine) { e.rng = rand.New(src) }
}

func New(api PlannerAPI, opts ...Option) *Engine {
	e := &Engine{
		api: api,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.add(MessageBot, welcomeMessage)
	return e
}

func (e *Engine) State() State   { return e.state }
func (e *Engine) Trip() TripData { return e.trip }

// Messages returns the full session log.
func (e *Engine) Messages() []Message { return e.messages }

// HandleMessage runs one dialogue turn and returns the messages it
// appended, the user's own echo included.
func (e *Engine) HandleMessage(ctx context.Context, text string) []Message {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	start := len(e.messages)
	e.add(MessageUser, text)

	switch e.state {
	case StateGathering:
		e.handleGathering(ctx, text)
	case StateCompleted:
		e.handleCompleted(ctx, text)
	default:
		// StatePlanning never persists across turns, so anything else
		// is a fresh planning request.
		e.handleInitial(ctx, text)
	}

	if start > len(e.messages) {
		// NewTrip replaced the log mid-turn.
		start = 0
	}
	return e.messages[start:]
}

// NewTrip resets the session: empty trip data, initial state, and a
// fresh welcome replacing the old log.
func (e *Engine) NewTrip() {
	e.messages = nil
	e.trip = TripData{}
	e.state = StateInitial
	e.add(MessageBot, newTripMessage)
}

func (e *Engine) handleInitial(ctx context.Context, text string) {
	parsed := e.parse(ctx, text)

	switch {
	case parsed.HasRequiredInfo:
		e.trip = TripData{
			Country:   parsed.Country,
			Duration:  parsed.Duration,
			StartCity: parsed.StartCity,
			FinalCity: parsed.FinalCity,
		}
		e.add(MessageBot, confirmationMessage(parsed))
		e.state = StatePlanning
		e.generate(ctx)

	case parsed.Country != "":
		e.trip.Country = parsed.Country
		e.trip.StartCity = parsed.StartCity
		e.trip.FinalCity = parsed.FinalCity
		e.add(MessageBot, fmt.Sprintf("Great choice! %s is amazing! 🎉 How many days are you planning to stay?", parsed.Country))
		e.state = StateGathering

	case parsed.Duration > 0:
		e.trip.Duration = parsed.Duration
		e.trip.StartCity = parsed.StartCity
		e.trip.FinalCity = parsed.FinalCity
		e.add(MessageBot, fmt.Sprintf("A %d-day trip sounds perfect! 🌟 Where would you like to go?", parsed.Duration))
		e.state = StateGathering

	default:
		e.add(MessageBot, askBothMessage)
	}
}

func (e *Engine) handleGathering(ctx context.Context, text string) {
	parsed := e.parse(ctx, text)

	switch {
	case e.trip.Country == "" && parsed.Country != "":
		e.trip.Country = parsed.Country
		e.mergeCities(parsed)
		e.add(MessageBot, fmt.Sprintf("Excellent! I'll plan your %d-day adventure in %s. Let me create the perfect itinerary for you... 🎒", e.trip.Duration, parsed.Country))
		e.state = StatePlanning
		e.generate(ctx)

	case e.trip.Duration == 0 && parsed.Duration > 0:
		e.trip.Duration = parsed.Duration
		e.mergeCities(parsed)
		e.add(MessageBot, fmt.Sprintf("Perfect! A %d-day trip to %s. Let me craft your itinerary... 🗓️", parsed.Duration, e.trip.Country))
		e.state = StatePlanning
		e.generate(ctx)

	case e.trip.Country == "":
		e.add(MessageBot, "I didn't catch the country name. Could you please tell me which country you'd like to visit? 🌍")

	case e.trip.Duration == 0:
		e.add(MessageBot, "How many days are you planning to stay? Please let me know the number of days! 📅")
	}
}

func (e *Engine) handleCompleted(ctx context.Context, text string) {
	lower := strings.ToLower(text)

	rule := intents.classify(lower)
	if rule == nil {
		e.add(MessageBot, intents.Default)
		return
	}

	switch rule.Name {
	case "change":
		if intents.mentionsTripField(lower) {
			e.handleModification(ctx, text)
		} else {
			e.add(MessageBot, changeSpecificsMessage)
		}
	case "new_trip":
		e.NewTrip()
	default:
		e.add(MessageBot, rule.Responses[e.rng.Intn(len(rule.Responses))])
	}
}

func (e *Engine) handleModification(ctx context.Context, text string) {
	parsed := e.parse(ctx, text)

	var changes []string
	if parsed.Country != "" && parsed.Country != e.trip.Country {
		e.trip.Country = parsed.Country
		changes = append(changes, "📍 Destination: "+parsed.Country)
	}
	if parsed.Duration > 0 && parsed.Duration != e.trip.Duration {
		e.trip.Duration = parsed.Duration
		changes = append(changes, fmt.Sprintf("📅 Duration: %d days", parsed.Duration))
	}
	if parsed.StartCity != "" && parsed.StartCity != e.trip.StartCity {
		e.trip.StartCity = parsed.StartCity
		changes = append(changes, "🛫 Starting from: "+parsed.StartCity)
	}
	if parsed.FinalCity != "" && parsed.FinalCity != e.trip.FinalCity {
		e.trip.FinalCity = parsed.FinalCity
		changes = append(changes, "🛬 Ending in: "+parsed.FinalCity)
	}

	if len(changes) == 0 {
		e.add(MessageBot, modifyClarifyMessage)
		return
	}

	msg := "I've updated your trip plan! 🔄\n\n"
	for _, change := range changes {
		msg += change + "\n"
	}
	msg += "\nLet me generate your new itinerary... ✨"
	e.add(MessageBot, msg)

	e.state = StatePlanning
	e.generate(ctx)
}

// generate runs the planning pass-through: one itinerary call, then
// sequential image lookups for the extracted places. Failure drops
// back to initial but keeps the gathered trip data for a retry.
func (e *Engine) generate(ctx context.Context) {
	days, err := e.api.GenerateItinerary(ctx, types.TripRequest{
		Country:   e.trip.Country,
		Duration:  e.trip.Duration,
		StartCity: e.trip.StartCity,
		FinalCity: e.trip.FinalCity,
	})
	if err != nil {
		e.add(MessageBot, generationFailedMessage)
		e.state = StateInitial
		return
	}

	places := ExtractPlaces(days)

	e.add(MessageBot, "Here's your personalized itinerary! 🎉")
	e.add(MessageItinerary, days)

	if len(places) > 0 {
		e.add(MessageBot, "Let me show you some beautiful photos of the places you'll visit! 📸")
		for _, place := range places {
			e.add(MessageImage, ImageAttachment{
				Place: place,
				Image: e.fetchPlaceImage(ctx, place),
			})
		}
	}

	e.add(MessageBot, "I hope you love this itinerary! 🎒 For travel tips and general chat, visit our Travel Chat. Want to plan another trip? Just say \"new trip\"! ✈️")
	e.state = StateCompleted
}

// fetchPlaceImage never fails the turn: any lookup problem yields a
// random placeholder so the remaining places still get their photos.
func (e *Engine) fetchPlaceImage(ctx context.Context, place string) types.TravelImage {
	images, err := e.api.SearchImages(ctx, place, e.trip.Country)
	if err == nil && len(images) > 0 {
		return images[0]
	}
	return types.TravelImage{
		URL:    fmt.Sprintf("https://picsum.photos/400/300?random=%d", e.rng.Intn(1000)),
		Title:  place + " - Travel Photo",
		Source: "Placeholder",
	}
}

// parse swallows transport errors: a failed parse behaves like a
// message nothing could be extracted from.
func (e *Engine) parse(ctx context.Context, text string) types.ParsedTravelIntent {
	parsed, err := e.api.ParseTravelRequest(ctx, text)
	if err != nil {
		return types.ParsedTravelIntent{}
	}
	return parsed
}

func (e *Engine) mergeCities(parsed types.ParsedTravelIntent) {
	if parsed.StartCity != "" {
		e.trip.StartCity = parsed.StartCity
	}
	if parsed.FinalCity != "" {
		e.trip.FinalCity = parsed.FinalCity
	}
}

func confirmationMessage(parsed types.ParsedTravelIntent) string {
	msg := fmt.Sprintf("Perfect! I'll plan a %d-day trip to %s", parsed.Duration, parsed.Country)
	switch {
	case parsed.StartCity != "" && parsed.FinalCity != "":
		msg += fmt.Sprintf(" starting from %s and ending in %s", parsed.StartCity, parsed.FinalCity)
	case parsed.StartCity != "":
		msg += " starting from " + parsed.StartCity
	case parsed.FinalCity != "":
		msg += " ending in " + parsed.FinalCity
	}
	return msg + " for you. Let me craft the perfect itinerary... ✈️"
}

func (e *Engine) add(msgType MessageType, content any) {
	e.messages = append(e.messages, Message{
		ID:        uuid.New(),
		Type:      msgType,
		Content:   content,
		Timestamp: time.Now(),
	})
}
