package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"auction-house/internal/domain"
	"auction-house/internal/services"
	"auction-house/pkg/logger"
	"auction-house/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type HouseHandler struct {
	house *services.HouseService
	bids  *services.BidService
	log   logger.Logger
}

type CreateParticipantRequest struct {
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
	AccountDetails string `json:"account_details"`
	Gender         string `json:"gender"`
	Balance        string `json:"balance"`
}

type CreateParticipantResponse struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Balance       string `json:"balance"`
}

type CreateAuctionRequest struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	StartingBid string `json:"starting_bid"`
	Description string `json:"description,omitempty"`
	Artist      string `json:"artist,omitempty"`
}

type CreateAuctionResponse struct {
	AuctionID   string `json:"auction_id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	StartingBid string `json:"starting_bid"`
	Status      string `json:"status"`
}

type PlaceBidRequest struct {
	ParticipantID string `json:"participant_id"`
	Amount        string `json:"amount"`
}

func NewHouseHandler(house *services.HouseService, bids *services.BidService, log logger.Logger) *HouseHandler {
	return &HouseHandler{
		house: house,
		bids:  bids,
		log:   log,
	}
}

func (h *HouseHandler) CreateParticipant(c echo.Context) error {
	var req CreateParticipantRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil || balance.IsNegative() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Balance must be a non-negative amount"})
	}

	participant := domain.NewParticipant(utils.GenerateID("participant"), req.Name,
		balance, req.PhoneNumber, req.AccountDetails, req.Gender)

	if err := h.house.AddParticipant(participant); err != nil {
		return h.domainError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateParticipantResponse{
		ParticipantID: participant.ID,
		Name:          participant.Name,
		Balance:       participant.Balance.String(),
	})
}

func (h *HouseHandler) CreateAuction(c echo.Context) error {
	var req CreateAuctionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title is required"})
	}

	startingBid, err := decimal.NewFromString(req.StartingBid)
	if err != nil || startingBid.IsNegative() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Starting bid must be a non-negative amount"})
	}

	var auction *domain.Auction
	switch req.Kind {
	case "item", "":
		auction = domain.NewItemAuction(utils.GenerateID("auction"), req.Title, startingBid, req.Description)
	case "art":
		auction = domain.NewArtAuction(utils.GenerateID("auction"), req.Title, startingBid, req.Artist)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Kind must be item or art"})
	}

	if err := h.house.AddAuction(auction); err != nil {
		return h.domainError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateAuctionResponse{
		AuctionID:   auction.ID,
		Kind:        auction.Kind.String(),
		Title:       auction.Title,
		StartingBid: auction.StartingBid.String(),
		Status:      auction.Status.String(),
	})
}

func (h *HouseHandler) PlaceBid(c echo.Context) error {
	auctionID := c.Param("id")

	var req PlaceBidRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Amount must be a positive amount"})
	}

	auction, err := h.bids.PlaceBid(c.Request().Context(), auctionID, req.ParticipantID, amount)
	if err != nil {
		return h.domainError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":     "Bid placed successfully!",
		"auction_id":  auction.ID,
		"current_bid": auction.CurrentBid.String(),
		"winner":      auction.WinnerName,
	})
}

func (h *HouseHandler) CloseAuction(c echo.Context) error {
	auctionID := c.Param("id")

	winner, err := h.bids.CloseAuction(c.Request().Context(), auctionID)
	if err != nil {
		return h.domainError(c, err)
	}

	message := "Auction closed. No winner."
	if winner != "" {
		message = "Auction closed. Winner: " + winner
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":    message,
		"auction_id": auctionID,
		"winner":     winner,
	})
}

func (h *HouseHandler) ListParticipants(c echo.Context) error {
	var buf bytes.Buffer
	h.house.WriteParticipantsInfo(&buf)
	return c.String(http.StatusOK, buf.String())
}

func (h *HouseHandler) ListAuctions(c echo.Context) error {
	var buf bytes.Buffer
	h.house.WriteAuctionsInfo(&buf)
	return c.String(http.StatusOK, buf.String())
}

func (h *HouseHandler) EndOfDaySummary(c echo.Context) error {
	var buf bytes.Buffer
	h.house.WriteEndOfDaySummary(&buf)
	return c.String(http.StatusOK, buf.String())
}

// domainError maps the sentinel domain errors onto HTTP statuses. Every kind
// is recoverable at the call site; the caller decides whether to resubmit.
func (h *HouseHandler) domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrAuctionNotFound), errors.Is(err, domain.ErrParticipantNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrAuctionClosed):
		return c.JSON(http.StatusConflict, map[string]string{"error": "Bid placement failed: auction is closed"})
	case errors.Is(err, domain.ErrInvalidBid):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Bid placement failed: invalid bid amount"})
	case errors.Is(err, domain.ErrInsufficientFunds):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Bid placement failed: insufficient balance"})
	case errors.Is(err, domain.ErrHouseFull):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		h.log.Error("Unexpected error", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
