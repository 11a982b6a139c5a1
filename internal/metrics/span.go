package metrics

import (
	"bitbucket.org/sotavant/sensei-skill/internal/models"
	"context"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const turnSpanName = "skill.turn"

// StartTurn opens the span covering one turn of req.
func StartTurn(ctx context.Context, req models.Request) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("skill.request.type", RequestTypeLabel(req.Request.Type)),
		attribute.String("skill.request.id", req.Request.RequestID),
		attribute.Bool("skill.session.new", req.Session.New),
	}
	if req.Request.Intent != nil {
		attrs = append(attrs, attribute.String("skill.intent", req.Request.Intent.Name))
	}

	return otel.Tracer(serviceName).Start(ctx, turnSpanName,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attrs...),
	)
}

// EndTurn records the turn outcome and ends the span.
// A non-empty failure is attached as an exception event and marks the span failed.
func EndTurn(span trace.Span, outcome, failure string) {
	span.SetAttributes(attribute.String("skill.outcome", outcome))
	if failure != "" {
		span.AddEvent("exception", trace.WithAttributes(
			attribute.String("exception.message", failure),
		))
		span.SetStatus(codes.Error, failure)
	}
	span.End()
}
