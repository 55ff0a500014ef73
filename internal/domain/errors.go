package domain

import "errors"

var (
	ErrInsufficientFunds   = errors.New("insufficient balance")
	ErrInvalidBid          = errors.New("invalid bid amount")
	ErrAuctionClosed       = errors.New("auction is closed")
	ErrHouseFull           = errors.New("auction house is full")
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrParticipantNotFound = errors.New("participant not found")
)
