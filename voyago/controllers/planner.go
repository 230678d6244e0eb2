package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"voyago/voyago/config"
	"voyago/voyago/services/pybridge"
	"voyago/voyago/types"
	"voyago/voyago/utils/jsonutils"
)

// PlannerController owns the three script-backed endpoints. Each call
// spawns at most one subprocess and maps its single outcome to a
// status + body; nothing is retried.
type PlannerController struct {
	runner *pybridge.Runner
	cfg    config.Config
}

func NewPlannerController(runner *pybridge.Runner, cfg config.Config) *PlannerController {
	return &PlannerController{runner: runner, cfg: cfg}
}

// serviceProfile bundles the per-script error strings and the typed
// empty data each endpoint promises clients even on failure.
type serviceProfile struct {
	startFailed string
	exitError   string
	emptyData   any
}

var (
	plannerProfile = serviceProfile{
		startFailed: "Failed to start AI service",
		exitError:   "AI service temporarily unavailable",
		emptyData:   []types.ItineraryDay{},
	}
	parserProfile = serviceProfile{
		startFailed: "Failed to start AI parsing service",
		exitError:   "AI parsing service temporarily unavailable",
		emptyData:   types.ParsedTravelIntent{},
	}
	chatProfile = serviceProfile{
		startFailed: "Failed to start chat service",
		exitError:   "Chat service temporarily unavailable",
		emptyData:   "",
	}
)

func (c *PlannerController) GenerateItinerary(ctx context.Context, req types.TripRequest) (int, any) {
	if req.Country == "" || req.Duration <= 0 {
		return http.StatusBadRequest, types.Envelope{
			Error: "Country and duration are required fields",
			Data:  plannerProfile.emptyData,
		}
	}

	args := []string{req.Country, strconv.Itoa(req.Duration)}
	if req.StartCity != "" {
		args = append(args, req.StartCity)
	}
	if req.FinalCity != "" {
		args = append(args, req.FinalCity)
	}

	res := c.runner.Run(ctx, c.cfg.PlannerTimeout, c.cfg.PlannerScript(), args...)
	return bridgeResponse(res, plannerProfile)
}

func (c *PlannerController) ParseTravelRequest(ctx context.Context, req types.ParseRequest) (int, any) {
	if req.Message == "" {
		return http.StatusBadRequest, types.Envelope{
			Error: "Message is required",
			Data:  parserProfile.emptyData,
		}
	}

	res := c.runner.Run(ctx, c.cfg.ParserTimeout, c.cfg.ParserScript(), req.Message)
	return bridgeResponse(res, parserProfile)
}

func (c *PlannerController) Chat(ctx context.Context, req types.ChatRequest) (int, any) {
	if req.Message == "" {
		return http.StatusBadRequest, types.Envelope{
			Error: "Message is required",
			Data:  chatProfile.emptyData,
		}
	}

	args := []string{req.Message}
	if req.Context != "" {
		args = append(args, req.Context)
	}

	res := c.runner.Run(ctx, c.cfg.ChatTimeout, c.cfg.ChatScript(), args...)
	return bridgeResponse(res, chatProfile)
}

// bridgeResponse maps the one bridge result to the one HTTP response.
// A clean exit forwards the script's own envelope verbatim; stderr
// stays in the logs and never reaches the client body.
func bridgeResponse(res pybridge.Result, profile serviceProfile) (int, any) {
	switch res.Outcome {
	case pybridge.OutcomeTimeout:
		return http.StatusRequestTimeout, types.Envelope{
			Error: "Request timeout",
			Data:  profile.emptyData,
		}
	case pybridge.OutcomeStartFailed:
		return http.StatusInternalServerError, types.Envelope{
			Error: profile.startFailed,
			Data:  profile.emptyData,
		}
	case pybridge.OutcomeExitError:
		return http.StatusInternalServerError, types.Envelope{
			Error: profile.exitError,
			Data:  profile.emptyData,
		}
	}

	payload := jsonutils.ExtractJSON(string(res.Stdout))
	if !json.Valid([]byte(payload)) {
		return http.StatusInternalServerError, types.Envelope{
			Error: "Failed to parse AI response",
			Data:  profile.emptyData,
		}
	}
	return http.StatusOK, json.RawMessage(payload)
}
