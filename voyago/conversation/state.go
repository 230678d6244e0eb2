package conversation

import (
	"time"

	"voyago/voyago/types"

	"github.com/google/uuid"
)

// State is the tag governing how the next free-text user message is
// interpreted. Planning never survives a turn: it is entered and left
// on the same HandleMessage call.
type State int

const (
	StateInitial State = iota
	StateGathering
	StatePlanning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateGathering:
		return "gathering"
	case StatePlanning:
		return "planning"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// TripData accumulates the current planning cycle's fields. Zero
// values mean "not provided yet".
type TripData struct {
	Country   string
	Duration  int
	StartCity string
	FinalCity string
}

func (t TripData) Complete() bool {
	return t.Country != "" && t.Duration > 0
}

type MessageType string

const (
	MessageUser      MessageType = "user"
	MessageBot       MessageType = "bot"
	MessageItinerary MessageType = "itinerary"
	MessageImage     MessageType = "image"
)

// Message is one entry of the append-only session log. Content is a
// string for user/bot, []types.ItineraryDay for itinerary, and
// ImageAttachment for image.
type Message struct {
	ID        uuid.UUID   `json:"id"`
	Type      MessageType `json:"type"`
	Content   any         `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

type ImageAttachment struct {
	Place string            `json:"place"`
	Image types.TravelImage `json:"image"`
}
