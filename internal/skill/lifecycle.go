package skill

import (
	"bitbucket.org/sotavant/sensei-skill/internal/logger"
	"bitbucket.org/sotavant/sensei-skill/internal/models"
	"context"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/lifecycle_mock.go -package=mock bitbucket.org/sotavant/sensei-skill/internal/skill Lifecycle

// Lifecycle receives session start and end notifications.
type Lifecycle interface {
	SessionStarted(ctx context.Context, requestID string, session models.Session)
	SessionEnded(ctx context.Context, req models.TurnRequest, session models.Session)
}

// NopLifecycle only logs the notifications.
type NopLifecycle struct{}

func (NopLifecycle) SessionStarted(_ context.Context, requestID string, session models.Session) {
	logger.Log.Debug("session started",
		zap.String("request_id", requestID),
		zap.String("session_id", session.SessionID),
	)
}

func (NopLifecycle) SessionEnded(_ context.Context, req models.TurnRequest, session models.Session) {
	logger.Log.Debug("session ended",
		zap.String("request_id", req.RequestID),
		zap.String("session_id", session.SessionID),
		zap.String("reason", req.Reason),
	)
}
