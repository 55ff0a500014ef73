package websocket

import (
	"github.com/gorilla/websocket"
)

type Connection struct {
	conn          *websocket.Conn
	participantID string
	auctionID     string
}

func NewConnection(conn *websocket.Conn, participantID, auctionID string) *Connection {
	return &Connection{
		conn:          conn,
		participantID: participantID,
		auctionID:     auctionID,
	}
}

func (c *Connection) Send(message interface{}) error {
	return c.conn.WriteJSON(message)
}

func (c *Connection) Close() error {
	return c.conn.Close()
}

func (c *Connection) ParticipantID() string {
	return c.participantID
}

func (c *Connection) AuctionID() string {
	return c.auctionID
}

// ReadJSON reads the next JSON message from the peer.
func (c *Connection) ReadJSON(v interface{}) error {
	return c.conn.ReadJSON(v)
}
