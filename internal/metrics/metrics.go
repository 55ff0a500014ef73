package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BidsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_house_bids_accepted_total",
		Help: "Number of bids accepted.",
	})

	BidsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_house_bids_rejected_total",
		Help: "Number of bids rejected, by reason.",
	}, []string{"reason"})

	AuctionsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_house_auctions_closed_total",
		Help: "Number of auctions closed.",
	})
)
