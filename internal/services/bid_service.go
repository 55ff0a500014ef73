package services

import (
	"context"
	"errors"
	"time"

	"auction-house/internal/domain"
	"auction-house/internal/metrics"
	"auction-house/pkg/logger"

	"github.com/shopspring/decimal"
)

// BidService orchestrates bid placement and auction closing around the
// house: it applies the transition, updates counters, and fans the resulting
// event out to listeners. When an event publisher is configured the event
// goes through it and a subscriber delivers it to websocket clients; without
// one the local fanout is invoked directly.
type BidService struct {
	house  *HouseService
	fanout *EventFanout
	events domain.EventPublisher
	log    logger.Logger
}

func NewBidService(house *HouseService, fanout *EventFanout, events domain.EventPublisher, log logger.Logger) *BidService {
	return &BidService{
		house:  house,
		fanout: fanout,
		events: events,
		log:    log,
	}
}

// PlaceBid applies the bid and returns a snapshot of the auction as the bid
// left it, so callers report the state of their own bid even when a higher
// one lands right behind it.
func (s *BidService) PlaceBid(ctx context.Context, auctionID, participantID string, amount decimal.Decimal) (domain.AuctionState, error) {
	s.log.Info("Placing bid", "auction_id", auctionID, "participant_id", participantID, "amount", amount)

	state, err := s.house.PlaceBid(auctionID, participantID, amount)
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			metrics.BidsRejected.WithLabelValues(reason).Inc()
			s.emit(ctx, &domain.BidEvent{
				Type:          domain.BidRejected,
				AuctionID:     auctionID,
				ParticipantID: participantID,
				Amount:        amount,
				Reason:        reason,
				Timestamp:     time.Now(),
			})
		}
		return domain.AuctionState{}, err
	}

	metrics.BidsAccepted.Inc()
	s.emit(ctx, &domain.BidEvent{
		Type:          domain.BidAccepted,
		AuctionID:     auctionID,
		ParticipantID: participantID,
		Amount:        amount,
		Winner:        state.WinnerName,
		Timestamp:     time.Now(),
	})
	return state, nil
}

// CloseAuction closes the auction and reports the winner name, empty when no
// bid was ever accepted. Closing an already closed auction re-broadcasts the
// closed event but cannot change the frozen winner or bid.
func (s *BidService) CloseAuction(ctx context.Context, auctionID string) (string, error) {
	winner, err := s.house.CloseAuction(auctionID)
	if err != nil {
		return "", err
	}

	if winner == "" {
		s.log.Info("Auction closed with no winner", "auction_id", auctionID)
	} else {
		s.log.Info("Auction closed", "auction_id", auctionID, "winner", winner)
	}

	metrics.AuctionsClosed.Inc()
	s.emit(ctx, &domain.BidEvent{
		Type:      domain.AuctionEnded,
		AuctionID: auctionID,
		Winner:    winner,
		Timestamp: time.Now(),
	})
	return winner, nil
}

func (s *BidService) emit(ctx context.Context, event *domain.BidEvent) {
	if s.events != nil {
		if err := s.events.PublishBidEvent(ctx, event); err != nil {
			s.log.Error("Failed to publish bid event", "type", event.Type, "error", err)
		}
		return
	}

	if err := s.fanout.Handle(event); err != nil {
		s.log.Error("Failed to deliver bid event", "type", event.Type, "error", err)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuctionClosed):
		return "auction_closed"
	case errors.Is(err, domain.ErrInvalidBid):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_balance"
	default:
		return ""
	}
}
