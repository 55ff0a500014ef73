package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BidEvent struct {
	Type          BidEventType    `json:"type"`
	AuctionID     string          `json:"auction_id"`
	ParticipantID string          `json:"participant_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Winner        string          `json:"winner,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

type BidEventType string

const (
	BidAccepted  BidEventType = "bid_accepted"
	BidRejected  BidEventType = "bid_rejected"
	AuctionEnded BidEventType = "auction_closed"
)
