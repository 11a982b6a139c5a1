package main

import (
	"bitbucket.org/sotavant/sensei-skill/internal/logger"
	"bitbucket.org/sotavant/sensei-skill/internal/metrics"
	"bitbucket.org/sotavant/sensei-skill/internal/models"
	"bitbucket.org/sotavant/sensei-skill/internal/skill"
	"encoding/json"
	"go.uber.org/zap"
	"net/http"
	"time"
)

type app struct {
	skill   *skill.Handler
	metrics *metrics.Metrics
}

func newApp(h *skill.Handler, m *metrics.Metrics) *app {
	return &app{skill: h, metrics: m}
}

func (a *app) routes(metricsPath string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, a.metrics.Handler())
	mux.HandleFunc("/", logger.RequestLogger(gzipMiddleware(a.webhook)))
	return mux
}

func (a *app) webhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		logger.Log.Debug("got request with bad method", zap.String("method", r.Method))

		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	logger.Log.Debug("decoding request")
	var req models.Request
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil {
		logger.Log.Debug("cannot decode request JSON body", zap.Error(err))

		http.Error(w, "Exception: "+err.Error(), http.StatusInternalServerError)
		return
	}

	start := time.Now()
	ctx, span := metrics.StartTurn(r.Context(), req)
	res := a.skill.Handle(ctx, req)
	metrics.EndTurn(span, res.Outcome.String(), res.Failure)

	// имя интента пишем в метрики только для распознанных интентов
	var intent string
	if res.Outcome == skill.OutcomeEnvelope && req.Request.Intent != nil {
		intent = req.Request.Intent.Name
	}
	a.metrics.ObserveTurn(req.Request.Type, intent, res.Outcome.String(), time.Since(start))

	switch res.Outcome {
	case skill.OutcomeEmpty:
		logger.Log.Debug("sending HTTP 204 response")
		w.WriteHeader(http.StatusNoContent)
		return
	case skill.OutcomeFailure:
		logger.Log.Debug("turn failed", zap.String("failure", res.Failure))
		http.Error(w, res.Failure, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	// сериализуем ответ сервера
	enc := json.NewEncoder(w)
	if err := enc.Encode(res.Envelope); err != nil {
		logger.Log.Debug("error encoding response", zap.Error(err))
		return
	}
	logger.Log.Debug("sending HTTP 200 response")
}
