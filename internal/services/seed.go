package services

import (
	"auction-house/internal/domain"
	"auction-house/pkg/utils"

	"github.com/shopspring/decimal"
)

// SeedDemoData loads the sample participants and auctions used for demos and
// manual testing.
func SeedDemoData(house *HouseService) error {
	participants := []struct {
		name    string
		balance int64
		phone   string
		account string
		gender  string
	}{
		{"John", 1000, "1234567890", "A123456789", "Male"},
		{"Alice", 2000, "9876543210", "B987654321", "Female"},
		{"Robert", 0, "7894561230", "C789456123", "Male"},
		{"Tom", 1500, "2345678901", "D234567890", "Male"},
		{"Emma", 1800, "8765432109", "E876543210", "Female"},
		{"Alex", 1200, "3456789012", "F345678901", "Male"},
		{"Sarah", 2500, "7654321098", "G765432109", "Female"},
		{"Mike", 3000, "4567890123", "H456789012", "Male"},
		{"Emily", 1400, "6543210987", "I654321098", "Female"},
		{"Daniel", 1600, "5678901234", "J567890123", "Male"},
	}

	for _, p := range participants {
		participant := domain.NewParticipant(utils.GenerateID("participant"), p.name,
			decimal.NewFromInt(p.balance), p.phone, p.account, p.gender)
		if err := house.AddParticipant(participant); err != nil {
			return err
		}
	}

	laptop := domain.NewItemAuction(utils.GenerateID("auction"), "Laptop",
		decimal.NewFromInt(500), "Brand new laptop")
	if err := house.AddAuction(laptop); err != nil {
		return err
	}

	painting := domain.NewArtAuction(utils.GenerateID("auction"), "Painting",
		decimal.NewFromInt(2000), "Renowned artist")
	return house.AddAuction(painting)
}
