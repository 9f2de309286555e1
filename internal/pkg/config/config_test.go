//go:build unit

package config_test

import (
	"testing"

	"campsite-reservation/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "success: test config", mutate: func(*config.Config) {}},
		{name: "success: memory storage needs no database", mutate: func(c *config.Config) {
			c.Storage.Driver = config.StorageMemory
			c.DB = config.DBConfig{}
		}},
		{name: "error: unknown storage driver", mutate: func(c *config.Config) { c.Storage.Driver = "sqlite" }, wantErr: "unknown STORAGE_DRIVER"},
		{name: "error: postgres without credentials", mutate: func(c *config.Config) { c.DB.User = "" }, wantErr: "DB_USER and DB_NAME"},
		{name: "error: zero minimum length", mutate: func(c *config.Config) { c.Reservation.MinLength = 0 }, wantErr: "must be >= 1"},
		{name: "error: min length above max", mutate: func(c *config.Config) { c.Reservation.MinLength = 4 }, wantErr: "exceeds max length"},
		{name: "error: negative offset", mutate: func(c *config.Config) { c.Reservation.MinStartOffsetDays = -1 }, wantErr: "must be >= 0"},
		{name: "error: min offset above max", mutate: func(c *config.Config) { c.Reservation.MinStartOffsetDays = 31 }, wantErr: "exceeds max start offset"},
		{name: "error: unknown time zone", mutate: func(c *config.Config) { c.Reservation.TimeZone = "Mars/Olympus" }, wantErr: "invalid RESERVATION_TIMEZONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReservationConfig_Location(t *testing.T) {
	loc, err := config.ReservationConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	loc, err = config.ReservationConfig{TimeZone: "Asia/Tokyo"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", config.StorageMemory)
	t.Setenv("RESERVATION_MAX_LENGTH", "5")
	t.Setenv("BROKER_POLL_INTERVAL", "500ms")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Reservation.MaxLength)
	assert.Equal(t, 1, cfg.Reservation.MinLength)
	assert.Equal(t, "500ms", cfg.Broker.PollInterval.String())
	assert.Equal(t, []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}, cfg.CORS.AllowMethods)
}
