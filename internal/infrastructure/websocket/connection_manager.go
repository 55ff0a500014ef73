package websocket

import (
	"sync"

	"auction-house/internal/domain"
	"auction-house/pkg/logger"
)

// ConnectionManager tracks live websocket connections per auction and per
// participant.
type ConnectionManager struct {
	connections map[string]map[string]domain.WebSocketConnection // auctionID -> participantID -> connection
	byBidder    map[string][]domain.WebSocketConnection          // participantID -> connections
	mutex       sync.RWMutex
	log         logger.Logger
}

func NewConnectionManager(log logger.Logger) *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]map[string]domain.WebSocketConnection),
		byBidder:    make(map[string][]domain.WebSocketConnection),
		log:         log,
	}
}

func (cm *ConnectionManager) RegisterConnection(participantID, auctionID string, conn domain.WebSocketConnection) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	if cm.connections[auctionID] == nil {
		cm.connections[auctionID] = make(map[string]domain.WebSocketConnection)
	}
	cm.connections[auctionID][participantID] = conn

	cm.byBidder[participantID] = append(cm.byBidder[participantID], conn)

	cm.log.Info("Connection registered", "participant_id", participantID, "auction_id", auctionID)
	return nil
}

func (cm *ConnectionManager) UnregisterConnection(participantID, auctionID string) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	cm.removeLocked(participantID, auctionID)

	cm.log.Info("Connection unregistered", "participant_id", participantID, "auction_id", auctionID)
	return nil
}

// removeLocked drops the connection from both indexes. Caller holds the lock.
func (cm *ConnectionManager) removeLocked(participantID, auctionID string) {
	if auctionConns, exists := cm.connections[auctionID]; exists {
		delete(auctionConns, participantID)
		if len(auctionConns) == 0 {
			delete(cm.connections, auctionID)
		}
	}

	var kept []domain.WebSocketConnection
	for _, conn := range cm.byBidder[participantID] {
		if conn.AuctionID() != auctionID {
			kept = append(kept, conn)
		}
	}
	if len(kept) == 0 {
		delete(cm.byBidder, participantID)
	} else {
		cm.byBidder[participantID] = kept
	}
}

func (cm *ConnectionManager) CloseAndUnregisterConnections(auctionID string) error {
	cm.mutex.Lock()
	defer cm.mutex.Unlock()

	for participantID, conn := range cm.connections[auctionID] {
		if err := conn.Close(); err != nil {
			cm.log.Error("Failed to close connection", "participant_id", participantID,
				"auction_id", auctionID, "error", err)
		}
		cm.removeLocked(participantID, auctionID)
	}

	cm.log.Info("Connections closed for auction", "auction_id", auctionID)
	return nil
}

func (cm *ConnectionManager) GetConnectionsForAuction(auctionID string) []domain.WebSocketConnection {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	var connections []domain.WebSocketConnection
	for _, conn := range cm.connections[auctionID] {
		connections = append(connections, conn)
	}
	return connections
}

func (cm *ConnectionManager) GetConnectionsForParticipant(participantID string) []domain.WebSocketConnection {
	cm.mutex.RLock()
	defer cm.mutex.RUnlock()

	return cm.byBidder[participantID]
}

// BroadcastToAuction hands the structured message to every connection in the
// auction's room. Connections serialize it themselves, so broadcast frames
// carry the same JSON object shape as direct sends.
func (cm *ConnectionManager) BroadcastToAuction(auctionID string, message interface{}) error {
	connections := cm.GetConnectionsForAuction(auctionID)

	for _, conn := range connections {
		if err := conn.Send(message); err != nil {
			cm.log.Error("Failed to send message", "participant_id", conn.ParticipantID(),
				"auction_id", auctionID, "error", err)
			// Continue to other connections
		}
	}

	return nil
}

func (cm *ConnectionManager) NotifyParticipant(participantID string, message interface{}) error {
	connections := cm.GetConnectionsForParticipant(participantID)

	for _, conn := range connections {
		if err := conn.Send(message); err != nil {
			cm.log.Error("Failed to send message", "participant_id", participantID, "error", err)
		}
	}

	return nil
}
