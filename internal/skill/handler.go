// Package skill classifies a platform request and builds the turn's response.
package skill

import (
	"bitbucket.org/sotavant/sensei-skill/internal/logger"
	"bitbucket.org/sotavant/sensei-skill/internal/models"
	"bitbucket.org/sotavant/sensei-skill/internal/speech"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
)

var (
	ErrUnrecognizedIntent = errors.New("unrecognized intent")
	ErrMissingIntent      = errors.New("intent request without intent")
)

const failurePrefix = "Exception: "

type Outcome int

const (
	// OutcomeEnvelope means Result.Envelope holds the response for the platform.
	OutcomeEnvelope Outcome = iota
	// OutcomeEmpty is a bare success with no payload.
	OutcomeEmpty
	// OutcomeFailure means Result.Failure describes what went wrong.
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEnvelope:
		return "envelope"
	case OutcomeEmpty:
		return "empty"
	case OutcomeFailure:
		return "failure"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Result is the single outcome of one turn.
type Result struct {
	Outcome  Outcome
	Envelope *models.Response
	Failure  string
}

type Handler struct {
	lifecycle Lifecycle
	intents   map[string]intentFunc
}

// NewHandler returns a turn handler. A nil lc is replaced by NopLifecycle.
func NewHandler(lc Lifecycle) *Handler {
	if lc == nil {
		lc = NopLifecycle{}
	}
	return &Handler{
		lifecycle: lc,
		intents:   intentTable(),
	}
}

// Handle runs one turn. It never panics: every fault is reported as OutcomeFailure.
func (h *Handler) Handle(ctx context.Context, req models.Request) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			logger.Log.Error("turn panicked", zap.Any("panic", p))
			res = failed(fmt.Errorf("%v", p))
		}
	}()

	logger.Log.Info("Application id", zap.String("application_id", req.Session.Application.ApplicationID))

	env, err := h.handle(ctx, req)
	if err != nil {
		logger.Log.Debug("turn failed", zap.String("type", string(req.Request.Type)), zap.Error(err))
		return failed(err)
	}
	if env == nil {
		return Result{Outcome: OutcomeEmpty}
	}
	return Result{Outcome: OutcomeEnvelope, Envelope: env}
}

func (h *Handler) handle(ctx context.Context, req models.Request) (*models.Response, error) {
	if req.Session.New {
		h.lifecycle.SessionStarted(ctx, req.Request.RequestID, req.Session)
	}

	switch req.Request.Type {
	case models.TypeLaunchRequest:
		attrs, resp := welcome()
		env := speech.Envelope(attrs, resp)
		return &env, nil
	case models.TypeIntentRequest:
		attrs, resp, err := h.route(req.Request.Intent, req.Session.Attributes)
		if err != nil {
			return nil, err
		}
		env := speech.Envelope(attrs, resp)
		return &env, nil
	case models.TypeSessionEndedRequest:
		h.lifecycle.SessionEnded(ctx, req.Request, req.Session)
		return nil, nil
	default:
		logger.Log.Debug("ignoring request", zap.String("type", string(req.Request.Type)))
		return nil, nil
	}
}

func (h *Handler) route(intent *models.Intent, attrs map[string]string) (map[string]string, models.SpeechletResponse, error) {
	if intent == nil {
		return nil, models.SpeechletResponse{}, ErrMissingIntent
	}

	fn, ok := h.intents[intent.Name]
	if !ok {
		return nil, models.SpeechletResponse{}, fmt.Errorf("%w: %q", ErrUnrecognizedIntent, intent.Name)
	}

	attrs, resp := fn(intent, attrs)
	return attrs, resp, nil
}

func failed(err error) Result {
	return Result{Outcome: OutcomeFailure, Failure: failurePrefix + err.Error()}
}
