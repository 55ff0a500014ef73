package services

import (
	"fmt"
	"io"
	"sync"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"

	"github.com/shopspring/decimal"
)

const separator = "---------------------------"

// HouseService owns the participant and auction collections and renders the
// house reports. A single mutex serializes bid placement, closing, and
// additions so that check-then-act on the current bid and the balance
// deduction stay atomic under concurrent HTTP callers.
type HouseService struct {
	mu              sync.Mutex
	name            string
	maxParticipants int
	maxAuctions     int
	participants    []*domain.Participant
	auctions        []*domain.Auction
	log             logger.Logger
}

// NewHouseService creates an empty house. A zero max means unbounded.
func NewHouseService(name string, maxParticipants, maxAuctions int, log logger.Logger) *HouseService {
	return &HouseService{
		name:            name,
		maxParticipants: maxParticipants,
		maxAuctions:     maxAuctions,
		log:             log,
	}
}

func (h *HouseService) AddParticipant(p *domain.Participant) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxParticipants > 0 && len(h.participants) >= h.maxParticipants {
		h.log.Warn("Cannot add more participants, auction house is full",
			"participant", p.Name, "max", h.maxParticipants)
		return domain.ErrHouseFull
	}

	h.participants = append(h.participants, p)
	h.log.Info("Participant added", "participant_id", p.ID, "name", p.Name)
	return nil
}

func (h *HouseService) AddAuction(a *domain.Auction) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxAuctions > 0 && len(h.auctions) >= h.maxAuctions {
		h.log.Warn("Cannot add more auctions, auction house is full",
			"auction", a.Title, "max", h.maxAuctions)
		return domain.ErrHouseFull
	}

	h.auctions = append(h.auctions, a)
	h.log.Info("Auction added", "auction_id", a.ID, "title", a.Title, "kind", a.Kind.String())
	return nil
}

// PlaceBid resolves the references and runs the auction's bid transition
// under the house lock. The returned snapshot carries the resulting state;
// the live auction never leaves the lock, so callers can read the snapshot
// while later bids mutate the auction.
func (h *HouseService) PlaceBid(auctionID, participantID string, amount decimal.Decimal) (domain.AuctionState, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	auction := h.findAuction(auctionID)
	if auction == nil {
		return domain.AuctionState{}, domain.ErrAuctionNotFound
	}
	bidder := h.findParticipant(participantID)
	if bidder == nil {
		return domain.AuctionState{}, domain.ErrParticipantNotFound
	}

	if err := auction.PlaceBid(bidder, amount); err != nil {
		return domain.AuctionState{}, err
	}
	return auction.State(), nil
}

// CloseAuction closes the auction and returns the frozen winner name, empty
// when no bid was ever accepted.
func (h *HouseService) CloseAuction(auctionID string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	auction := h.findAuction(auctionID)
	if auction == nil {
		return "", domain.ErrAuctionNotFound
	}
	return auction.Close(), nil
}

// Auction returns a snapshot of the auction with the given ID.
func (h *HouseService) Auction(id string) (domain.AuctionState, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if a := h.findAuction(id); a != nil {
		return a.State(), nil
	}
	return domain.AuctionState{}, domain.ErrAuctionNotFound
}

// Participant returns a copy of the participant with the given ID.
func (h *HouseService) Participant(id string) (domain.Participant, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if p := h.findParticipant(id); p != nil {
		return *p, nil
	}
	return domain.Participant{}, domain.ErrParticipantNotFound
}

func (h *HouseService) findAuction(id string) *domain.Auction {
	for _, a := range h.auctions {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (h *HouseService) findParticipant(id string) *domain.Participant {
	for _, p := range h.participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (h *HouseService) WriteAuctionsInfo(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintln(w, "Auction House: Available Auctions")
	for _, a := range h.auctions {
		a.WriteInfo(w)
		fmt.Fprintln(w, separator)
	}
}

func (h *HouseService) WriteParticipantsInfo(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintln(w, "Auction House: Participants")
	for _, p := range h.participants {
		p.WriteInfo(w)
		fmt.Fprintln(w, separator)
	}
}

// WriteEndOfDaySummary renders the three-section report: all participants,
// each auction with the affordability listing, and the closed auctions with
// their winners. The "Bids" section lists every participant whose current
// balance covers the auction's current bid; the house keeps no bid log, so
// this stands in for one. Winners are resolved by name with a linear search;
// a name that no longer matches any participant is skipped without comment.
func (h *HouseService) WriteEndOfDaySummary(w io.Writer) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintln(w, "End of Day Summary:")

	fmt.Fprintln(w, "Participants: ")
	for _, p := range h.participants {
		p.WriteInfo(w)
		fmt.Fprintln(w, separator)
	}

	fmt.Fprintln(w, "Auctions: ")
	for _, a := range h.auctions {
		a.WriteInfo(w)
		fmt.Fprintln(w, separator)
		fmt.Fprintln(w, "Bids: ")
		for _, p := range h.participants {
			if p.Balance.GreaterThanOrEqual(a.CurrentBid) {
				fmt.Fprintf(w, "Participant: %s\n", p.Name)
				fmt.Fprintf(w, "Bid Amount: %s\n", a.CurrentBid)
				fmt.Fprintln(w, separator)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "Auction Winners and Items Won: ")
	for _, a := range h.auctions {
		if a.IsOpen() {
			continue
		}
		fmt.Fprintf(w, "Auction: %s\n", a.Title)
		if a.WinnerName != "" {
			fmt.Fprintf(w, "Winner: %s\n", a.WinnerName)
			for _, p := range h.participants {
				if p.Name == a.WinnerName {
					fmt.Fprintf(w, "Participant %s won the item.\n", p.Name)
					break
				}
			}
		} else {
			fmt.Fprintln(w, "No winner for this auction.")
		}
		fmt.Fprintln(w, separator)
	}
}
