package config

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	assert.Nil(t, err)

	check.Equal(t, 8080, cfg.Server.Port)
	check.Equal(t, "0.0.0.0", cfg.Server.Host)
	check.False(t, cfg.Redis.Enabled)
	check.Equal(t, "localhost:6379", cfg.Redis.Address)
	check.Equal(t, "Auction House", cfg.House.Name)
	check.Equal(t, 0, cfg.House.MaxParticipants)
	check.Equal(t, 0, cfg.House.MaxAuctions)
	check.False(t, cfg.House.SeedDemoData)
	check.True(t, cfg.Summary.Enabled)
	check.Equal(t, "0 0 18 * * *", cfg.Summary.CronSpec)
}
