package domain

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

type AuctionKind int

const (
	KindItem AuctionKind = iota
	KindArt
)

func (k AuctionKind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindArt:
		return "art"
	default:
		return "unknown"
	}
}

type AuctionStatus int

const (
	AuctionOpen AuctionStatus = iota
	AuctionClosed
)

func (s AuctionStatus) String() string {
	switch s {
	case AuctionOpen:
		return "Open"
	case AuctionClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Auction holds the bidding state for a single lot. The two kinds share the
// same state machine and differ only in the Detail field and its label.
type Auction struct {
	ID          string
	Kind        AuctionKind
	Title       string
	Detail      string // description for item auctions, artist for art auctions
	StartingBid decimal.Decimal
	CurrentBid  decimal.Decimal
	WinnerName  string
	Status      AuctionStatus
}

// AuctionState is a point-in-time copy of an auction's fields. Callers that
// release whatever lock guards the auction read state from the copy, never
// from the live struct.
type AuctionState struct {
	ID          string
	Kind        AuctionKind
	Title       string
	Detail      string
	StartingBid decimal.Decimal
	CurrentBid  decimal.Decimal
	WinnerName  string
	Status      AuctionStatus
}

func (s AuctionState) IsOpen() bool {
	return s.Status == AuctionOpen
}

func NewItemAuction(id, title string, startingBid decimal.Decimal, description string) *Auction {
	return newAuction(id, KindItem, title, startingBid, description)
}

func NewArtAuction(id, title string, startingBid decimal.Decimal, artist string) *Auction {
	return newAuction(id, KindArt, title, startingBid, artist)
}

func newAuction(id string, kind AuctionKind, title string, startingBid decimal.Decimal, detail string) *Auction {
	return &Auction{
		ID:          id,
		Kind:        kind,
		Title:       title,
		Detail:      detail,
		StartingBid: startingBid,
		CurrentBid:  startingBid,
		Status:      AuctionOpen,
	}
}

// PlaceBid validates and applies a bid. Preconditions are checked in order:
// the auction must be open, the amount must strictly exceed the current bid
// (equal bids are rejected), and the bidder must be able to cover it. On
// success the full amount is deducted immediately; a superseded bidder is
// never refunded when outbid.
func (a *Auction) PlaceBid(bidder *Participant, amount decimal.Decimal) error {
	if a.Status != AuctionOpen {
		return ErrAuctionClosed
	}
	if amount.LessThanOrEqual(a.CurrentBid) {
		return ErrInvalidBid
	}
	if amount.GreaterThan(bidder.Balance) {
		return ErrInsufficientFunds
	}

	if err := bidder.Deduct(amount); err != nil {
		return err
	}
	a.CurrentBid = amount
	a.WinnerName = bidder.Name
	return nil
}

// Close marks the auction closed and returns the winner's name, empty when no
// bid was ever accepted. CurrentBid and WinnerName are frozen from this point;
// a repeated Close re-reports the same winner without mutating anything.
func (a *Auction) Close() string {
	a.Status = AuctionClosed
	return a.WinnerName
}

func (a *Auction) IsOpen() bool {
	return a.Status == AuctionOpen
}

// State copies the auction's fields. The caller must still hold the lock that
// guards the auction.
func (a *Auction) State() AuctionState {
	return AuctionState{
		ID:          a.ID,
		Kind:        a.Kind,
		Title:       a.Title,
		Detail:      a.Detail,
		StartingBid: a.StartingBid,
		CurrentBid:  a.CurrentBid,
		WinnerName:  a.WinnerName,
		Status:      a.Status,
	}
}

func (a *Auction) WriteInfo(w io.Writer) {
	switch a.Kind {
	case KindArt:
		fmt.Fprintf(w, "Art Auction: %s\n", a.Title)
		fmt.Fprintf(w, "Artist: %s\n", a.Detail)
	default:
		fmt.Fprintf(w, "Item Auction: %s\n", a.Title)
		fmt.Fprintf(w, "Description: %s\n", a.Detail)
	}
	fmt.Fprintf(w, "Starting Bid: %s\n", a.StartingBid)
	fmt.Fprintf(w, "Current Bid: %s\n", a.CurrentBid)
	fmt.Fprintf(w, "Auction Status: %s\n", a.Status)
}
