package handlers

import (
	"auction-house/internal/infrastructure/websocket"
	"auction-house/internal/services"
	"auction-house/pkg/logger"

	"github.com/labstack/echo/v4"
)

type WebSocketHandler struct {
	wsHandler *websocket.Handler
}

func NewWebSocketHandler(house *services.HouseService, bids *services.BidService,
	connManager *websocket.ConnectionManager, log logger.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		wsHandler: websocket.NewHandler(house, bids, connManager, log),
	}
}

func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	return h.wsHandler.HandleConnection(c)
}
