package websocket

import (
	"testing"

	"auction-house/pkg/logger"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

type fakeConn struct {
	participantID string
	auctionID     string
	sent          []interface{}
	closed        bool
}

func (f *fakeConn) Send(message interface{}) error {
	f.sent = append(f.sent, message)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func (f *fakeConn) ParticipantID() string { return f.participantID }
func (f *fakeConn) AuctionID() string     { return f.auctionID }

func TestBroadcastToAuction(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	c1 := &fakeConn{participantID: "p1", auctionID: "a1"}
	c2 := &fakeConn{participantID: "p2", auctionID: "a1"}
	other := &fakeConn{participantID: "p3", auctionID: "a2"}

	assert.Nil(t, cm.RegisterConnection("p1", "a1", c1))
	assert.Nil(t, cm.RegisterConnection("p2", "a1", c2))
	assert.Nil(t, cm.RegisterConnection("p3", "a2", other))

	assert.Nil(t, cm.BroadcastToAuction("a1", map[string]string{"type": "bid_update"}))

	assert.Equal(t, 1, len(c1.sent))
	check.Equal(t, 1, len(c2.sent))
	check.Equal(t, 0, len(other.sent))
	// The structured message reaches the connection as-is, so WriteJSON
	// serializes it as an object rather than a base64 string.
	check.Equal(t, map[string]string{"type": "bid_update"}, c1.sent[0].(map[string]string))
}

func TestNotifyParticipant(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	c1 := &fakeConn{participantID: "p1", auctionID: "a1"}
	c2 := &fakeConn{participantID: "p1", auctionID: "a2"}

	assert.Nil(t, cm.RegisterConnection("p1", "a1", c1))
	assert.Nil(t, cm.RegisterConnection("p1", "a2", c2))

	assert.Nil(t, cm.NotifyParticipant("p1", map[string]string{"type": "bid_rejected"}))

	assert.Equal(t, 1, len(c1.sent))
	check.Equal(t, 1, len(c2.sent))
	check.Equal(t, map[string]string{"type": "bid_rejected"}, c1.sent[0].(map[string]string))
}

func TestUnregisterConnection(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	c1 := &fakeConn{participantID: "p1", auctionID: "a1"}
	assert.Nil(t, cm.RegisterConnection("p1", "a1", c1))

	assert.Nil(t, cm.UnregisterConnection("p1", "a1"))

	check.Equal(t, 0, len(cm.GetConnectionsForAuction("a1")))
	check.Equal(t, 0, len(cm.GetConnectionsForParticipant("p1")))
}

func TestCloseAndUnregisterConnections(t *testing.T) {
	cm := NewConnectionManager(logger.NewNop())

	c1 := &fakeConn{participantID: "p1", auctionID: "a1"}
	c2 := &fakeConn{participantID: "p2", auctionID: "a1"}
	other := &fakeConn{participantID: "p1", auctionID: "a2"}

	assert.Nil(t, cm.RegisterConnection("p1", "a1", c1))
	assert.Nil(t, cm.RegisterConnection("p2", "a1", c2))
	assert.Nil(t, cm.RegisterConnection("p1", "a2", other))

	assert.Nil(t, cm.CloseAndUnregisterConnections("a1"))

	check.True(t, c1.closed)
	check.True(t, c2.closed)
	check.False(t, other.closed)
	check.Equal(t, 0, len(cm.GetConnectionsForAuction("a1")))
	check.Equal(t, 1, len(cm.GetConnectionsForParticipant("p1")))
}
