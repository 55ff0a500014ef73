package services

import (
	"testing"

	"auction-house/internal/domain"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestSeedDemoData(t *testing.T) {
	h := newTestHouse(0, 0)

	assert.Nil(t, SeedDemoData(h))

	assert.Equal(t, 10, len(h.participants))
	assert.Equal(t, 2, len(h.auctions))

	check.Equal(t, "John", h.participants[0].Name)
	check.Equal(t, "1000", h.participants[0].Balance.String())
	check.Equal(t, "Daniel", h.participants[9].Name)

	check.Equal(t, "Laptop", h.auctions[0].Title)
	check.Equal(t, domain.KindItem, h.auctions[0].Kind)
	check.Equal(t, "Painting", h.auctions[1].Title)
	check.Equal(t, domain.KindArt, h.auctions[1].Kind)
	check.True(t, h.auctions[0].IsOpen())
	check.True(t, h.auctions[1].IsOpen())
}
