package domain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
	"github.com/shopspring/decimal"
)

func newBidder(name string, balance int64) *Participant {
	return NewParticipant("participant-"+name, name, decimal.NewFromInt(balance), "", "", "")
}

func TestPlaceBid_AcceptsHigherBidAndDeductsBalance(t *testing.T) {
	john := newBidder("John", 1000)
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")

	err := auction.PlaceBid(john, decimal.NewFromInt(600))

	assert.Nil(t, err)
	check.Equal(t, "600", auction.CurrentBid.String())
	check.Equal(t, "John", auction.WinnerName)
	check.Equal(t, "400", john.Balance.String())
	check.True(t, auction.IsOpen())
}

func TestPlaceBid_EqualAmountRejected(t *testing.T) {
	john := newBidder("John", 1000)
	alice := newBidder("Alice", 2000)
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")

	assert.Nil(t, auction.PlaceBid(john, decimal.NewFromInt(600)))

	// Ties are rejected, not just lower bids.
	err := auction.PlaceBid(alice, decimal.NewFromInt(600))

	check.True(t, errors.Is(err, ErrInvalidBid))
	check.Equal(t, "600", auction.CurrentBid.String())
	check.Equal(t, "John", auction.WinnerName)
	check.Equal(t, "2000", alice.Balance.String())
}

func TestPlaceBid_LowerAmountRejected(t *testing.T) {
	alice := newBidder("Alice", 2000)
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")

	err := auction.PlaceBid(alice, decimal.NewFromInt(400))

	check.True(t, errors.Is(err, ErrInvalidBid))
	check.Equal(t, "500", auction.CurrentBid.String())
	check.Equal(t, "", auction.WinnerName)
	check.Equal(t, "2000", alice.Balance.String())
}

func TestPlaceBid_InsufficientBalanceRejected(t *testing.T) {
	robert := newBidder("Robert", 0)
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")

	err := auction.PlaceBid(robert, decimal.NewFromInt(600))

	check.True(t, errors.Is(err, ErrInsufficientFunds))
	check.Equal(t, "500", auction.CurrentBid.String())
	check.Equal(t, "", auction.WinnerName)
	check.Equal(t, "0", robert.Balance.String())
}

func TestPlaceBid_ClosedAuctionRejectedRegardlessOfAmount(t *testing.T) {
	mike := newBidder("Mike", 3000)
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")
	auction.Close()

	err := auction.PlaceBid(mike, decimal.NewFromInt(2500))

	check.True(t, errors.Is(err, ErrAuctionClosed))
	check.Equal(t, "500", auction.CurrentBid.String())
	check.Equal(t, "3000", mike.Balance.String())
}

func TestPlaceBid_OutbidBidderIsNotRefunded(t *testing.T) {
	john := newBidder("John", 1000)
	alice := newBidder("Alice", 2000)
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")

	assert.Nil(t, auction.PlaceBid(john, decimal.NewFromInt(600)))
	assert.Nil(t, auction.PlaceBid(alice, decimal.NewFromInt(700)))

	check.Equal(t, "700", auction.CurrentBid.String())
	check.Equal(t, "Alice", auction.WinnerName)
	// John's 600 stays deducted even though Alice outbid him.
	check.Equal(t, "400", john.Balance.String())
	check.Equal(t, "1300", alice.Balance.String())
}

func TestClose_NoBidsReportsNoWinner(t *testing.T) {
	auction := NewArtAuction("auction-1", "Painting", decimal.NewFromInt(2000), "Renowned artist")

	winner := auction.Close()

	check.Equal(t, "", winner)
	check.False(t, auction.IsOpen())
}

func TestClose_ReportsLastAcceptedBidder(t *testing.T) {
	john := newBidder("John", 1000)
	alice := newBidder("Alice", 2000)
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")

	assert.Nil(t, auction.PlaceBid(john, decimal.NewFromInt(600)))
	assert.Nil(t, auction.PlaceBid(alice, decimal.NewFromInt(700)))

	check.Equal(t, "Alice", auction.Close())
}

func TestClose_RepeatedCloseKeepsFrozenState(t *testing.T) {
	john := newBidder("John", 1000)
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")

	assert.Nil(t, auction.PlaceBid(john, decimal.NewFromInt(600)))

	check.Equal(t, "John", auction.Close())
	check.Equal(t, "John", auction.Close())
	check.Equal(t, "600", auction.CurrentBid.String())
	check.Equal(t, "400", john.Balance.String())
}

func TestWriteInfo_ItemAuction(t *testing.T) {
	auction := NewItemAuction("auction-1", "Laptop", decimal.NewFromInt(500), "Brand new laptop")

	var buf bytes.Buffer
	auction.WriteInfo(&buf)

	want := "Item Auction: Laptop\n" +
		"Description: Brand new laptop\n" +
		"Starting Bid: 500\n" +
		"Current Bid: 500\n" +
		"Auction Status: Open\n"
	check.Equal(t, want, buf.String())
}

func TestWriteInfo_ArtAuction(t *testing.T) {
	auction := NewArtAuction("auction-2", "Painting", decimal.NewFromInt(2000), "Renowned artist")
	auction.Close()

	var buf bytes.Buffer
	auction.WriteInfo(&buf)

	want := "Art Auction: Painting\n" +
		"Artist: Renowned artist\n" +
		"Starting Bid: 2000\n" +
		"Current Bid: 2000\n" +
		"Auction Status: Closed\n"
	check.Equal(t, want, buf.String())
}
