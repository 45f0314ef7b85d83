package metrics

import (
	"context"
	"strconv"

	"github.com/halcyard/TradeCenter_Go/internal/event"
)

// EventMetricsCollector subscribes to trade lifecycle events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// RegisterHandlers subscribes the collector to the event bus
func (c *EventMetricsCollector) RegisterHandlers(bus event.Bus) {
	bus.Subscribe(event.TradeCreated, c.handleTradeCreated)
	bus.Subscribe(event.TradeDeleted, counterHandler(func() { TradesDeleted.Inc() }))
	bus.Subscribe(event.OfferMade, counterHandler(func() { OffersMade.Inc() }))
	bus.Subscribe(event.OfferWithdrawn, counterHandler(func() { OffersWithdrawn.Inc() }))
	bus.Subscribe(event.WinnerChosen, counterHandler(func() { WinnersChosen.Inc() }))
	bus.Subscribe(event.TradeCompleted, counterHandler(func() { TradesCompleted.Inc() }))
	bus.Subscribe(event.FeedbackLeft, counterHandler(func() { FeedbackLeft.Inc() }))
}

func (c *EventMetricsCollector) handleTradeCreated(ctx context.Context, e event.Event) error {
	hardcore := false
	if p, ok := e.Payload.(event.TradeEventPayloadV1); ok {
		hardcore = p.Hardcore
	}
	TradesCreated.WithLabelValues(strconv.FormatBool(hardcore)).Inc()
	return nil
}

func counterHandler(inc func()) event.Handler {
	return func(ctx context.Context, e event.Event) error {
		inc()
		return nil
	}
}
