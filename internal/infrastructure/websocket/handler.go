package websocket

import (
	"context"
	"net/http"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// BidPlacer is the part of the bid service the websocket read loop needs.
type BidPlacer interface {
	PlaceBid(ctx context.Context, auctionID, participantID string, amount decimal.Decimal) (domain.AuctionState, error)
}

// AuctionLookup resolves an auction snapshot for connection-time checks.
type AuctionLookup interface {
	Auction(id string) (domain.AuctionState, error)
}

type Handler struct {
	auctions    AuctionLookup
	bids        BidPlacer
	connManager domain.ConnectionManager
	log         logger.Logger
}

func NewHandler(auctions AuctionLookup, bids BidPlacer, connManager domain.ConnectionManager, log logger.Logger) *Handler {
	return &Handler{
		auctions:    auctions,
		bids:        bids,
		connManager: connManager,
		log:         log,
	}
}

// HandleConnection upgrades the request and attaches the client to the
// auction's feed. Clients may also place bids over the socket.
func (h *Handler) HandleConnection(c echo.Context) error {
	auctionID := c.Param("id")

	auction, err := h.auctions.Auction(auctionID)
	if err != nil {
		h.log.Error("Failed to find auction", "auction_id", auctionID, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, "auction not found")
	}

	if !auction.IsOpen() {
		h.log.Info("Rejected connection, auction is closed", "auction_id", auctionID)
		return echo.NewHTTPError(http.StatusForbidden, "auction is closed")
	}

	participantID := c.QueryParam("participant_id")
	if participantID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "participant_id required")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Error("Failed to upgrade connection", "error", err)
		return err
	}

	wsConn := NewConnection(conn, participantID, auctionID)

	if err := h.connManager.RegisterConnection(participantID, auctionID, wsConn); err != nil {
		h.log.Error("Failed to register connection", "error", err)
		conn.Close()
		return nil
	}

	go h.handleMessages(wsConn, participantID, auctionID)
	return nil
}

func (h *Handler) handleMessages(conn *Connection, participantID, auctionID string) {
	defer func() {
		h.connManager.UnregisterConnection(participantID, auctionID)
		conn.Close()
	}()

	for {
		var msg map[string]interface{}
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.Debug("Connection read ended", "participant_id", participantID, "error", err)
			break
		}

		msgType, ok := msg["type"].(string)
		if !ok {
			continue
		}

		switch msgType {
		case "place_bid":
			h.handleBidMessage(conn, participantID, auctionID, msg)
		case "ping":
			conn.Send(map[string]string{"type": "pong"})
		}
	}
}

func (h *Handler) handleBidMessage(conn *Connection, participantID, auctionID string, msg map[string]interface{}) {
	amountStr, ok := msg["amount"].(string)
	if !ok {
		conn.Send(map[string]string{"type": "error", "message": "invalid amount"})
		return
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		conn.Send(map[string]string{"type": "error", "message": "invalid amount format"})
		return
	}

	if _, err := h.bids.PlaceBid(context.Background(), auctionID, participantID, amount); err != nil {
		conn.Send(map[string]string{"type": "error", "message": err.Error()})
	}
}
