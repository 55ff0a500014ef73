package domain

import (
	"context"
)

// Event interfaces
type EventPublisher interface {
	PublishBidEvent(ctx context.Context, event *BidEvent) error
}

type EventSubscriber interface {
	SubscribeToBidEvents(ctx context.Context, handler EventHandler) error
}

type EventHandler func(event *BidEvent) error

// Notification interfaces
type ParticipantNotifier interface {
	NotifyParticipant(ctx context.Context, participantID string, message interface{}) error
}

type AuctionBroadcaster interface {
	BroadcastToAuction(ctx context.Context, auctionID string, message interface{}) error
}

// WebSocket interfaces
type WebSocketConnection interface {
	Send(message interface{}) error
	Close() error
	ParticipantID() string
	AuctionID() string
}

type ConnectionManager interface {
	RegisterConnection(participantID, auctionID string, conn WebSocketConnection) error
	UnregisterConnection(participantID, auctionID string) error
	GetConnectionsForAuction(auctionID string) []WebSocketConnection
	GetConnectionsForParticipant(participantID string) []WebSocketConnection
	BroadcastToAuction(auctionID string, message interface{}) error
	NotifyParticipant(participantID string, message interface{}) error
	CloseAndUnregisterConnections(auctionID string) error
}
