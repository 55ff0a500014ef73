package services

import (
	"context"
	"fmt"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"
)

// EventFanout delivers bid events to connected websocket clients. It serves
// both as the direct delivery path and as the handler for an event
// subscriber, so events published by another instance reach local clients
// the same way.
type EventFanout struct {
	broadcaster domain.AuctionBroadcaster
	notifier    domain.ParticipantNotifier
	connManager domain.ConnectionManager
	log         logger.Logger
}

func NewEventFanout(broadcaster domain.AuctionBroadcaster, notifier domain.ParticipantNotifier,
	connManager domain.ConnectionManager, log logger.Logger) *EventFanout {
	return &EventFanout{
		broadcaster: broadcaster,
		notifier:    notifier,
		connManager: connManager,
		log:         log,
	}
}

func (f *EventFanout) Start(ctx context.Context, subscriber domain.EventSubscriber) error {
	f.log.Info("Starting bid event fanout")
	return subscriber.SubscribeToBidEvents(ctx, f.Handle)
}

func (f *EventFanout) Handle(event *domain.BidEvent) error {
	f.log.Debug("Handling bid event", "type", event.Type, "auction_id", event.AuctionID)

	switch event.Type {
	case domain.BidAccepted:
		return f.handleBidAccepted(event)
	case domain.BidRejected:
		return f.handleBidRejected(event)
	case domain.AuctionEnded:
		return f.handleAuctionEnded(event)
	}

	return fmt.Errorf("unknown event type %q", event.Type)
}

func (f *EventFanout) handleBidAccepted(event *domain.BidEvent) error {
	return f.broadcaster.BroadcastToAuction(context.Background(), event.AuctionID, map[string]interface{}{
		"type":           "bid_update",
		"current_bid":    event.Amount,
		"current_winner": event.Winner,
		"timestamp":      event.Timestamp,
	})
}

// Rejections concern only the bidder, not the room.
func (f *EventFanout) handleBidRejected(event *domain.BidEvent) error {
	if event.ParticipantID == "" {
		return nil
	}
	return f.notifier.NotifyParticipant(context.Background(), event.ParticipantID, map[string]interface{}{
		"type":      "bid_rejected",
		"reason":    event.Reason,
		"timestamp": event.Timestamp,
	})
}

func (f *EventFanout) handleAuctionEnded(event *domain.BidEvent) error {
	if err := f.broadcaster.BroadcastToAuction(context.Background(), event.AuctionID, map[string]interface{}{
		"type":      "auction_closed",
		"winner":    event.Winner,
		"timestamp": event.Timestamp,
	}); err != nil {
		f.log.Error("Failed to broadcast auction closed event", "error", err)
		return err
	}

	if err := f.connManager.CloseAndUnregisterConnections(event.AuctionID); err != nil {
		f.log.Error("Failed to finalize connections for auction",
			"auction_id", event.AuctionID, "error", err)
		return err
	}
	return nil
}
