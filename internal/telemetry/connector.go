package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/promptpolish/promptpolish/internal/connector"
)

// instrumentedConnector records one span per model round-trip
type instrumentedConnector struct {
	inner     connector.Connector
	tracer    trace.Tracer
	provider  string
	sessionID string
}

// WrapConnector returns a Connector that traces every Send through inner.
// provider names the backing model provider; sessionID correlates all spans
// of one refinement session.
func (p *Provider) WrapConnector(inner connector.Connector, provider, sessionID string) connector.Connector {
	return &instrumentedConnector{
		inner:     inner,
		tracer:    p.tracer,
		provider:  provider,
		sessionID: sessionID,
	}
}

func (ic *instrumentedConnector) Send(ctx context.Context, message string, history []connector.Turn) (connector.Reply, error) {
	ctx, span := ic.tracer.Start(ctx, "model.round_trip", trace.WithAttributes(
		attribute.String("model.provider", ic.provider),
		attribute.String("session.id", ic.sessionID),
		attribute.Int("request.message_chars", len(message)),
		attribute.Int("request.history_turns", len(history)),
	))
	defer span.End()

	reply, err := ic.inner.Send(ctx, message, history)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return reply, err
	}

	span.SetAttributes(attribute.Int("response.content_chars", len(reply.Content)))
	return reply, nil
}
