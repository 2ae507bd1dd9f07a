package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordify/internal/domain"
	"ordify/internal/notify"
	"ordify/internal/repository"
)

func TestAuthenticate(t *testing.T) {
	svc := New(repository.NewMemory(), notify.Nop{})

	tests := []struct {
		name    string
		pin     string
		wantErr error
		role    domain.Role
		station string
	}{
		{name: "admin", pin: "000000", role: domain.RoleAdmin},
		{name: "server", pin: "111111", role: domain.RoleServer},
		{name: "italian chef gets station", pin: "222222", role: domain.RoleChefItalian, station: domain.CategoryItalian},
		{name: "barista gets station", pin: "444444", role: domain.RoleBarista, station: domain.CategoryDrinks},
		{name: "too short", pin: "123", wantErr: domain.ErrInvalidPin},
		{name: "non numeric", pin: "12a456", wantErr: domain.ErrInvalidPin},
		{name: "unknown", pin: "987654", wantErr: domain.ErrUnknownPin},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Auth.Authenticate(tc.pin)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.role, resp.Role)
			assert.Equal(t, tc.station, resp.Station)
		})
	}
}

func TestStationForRole(t *testing.T) {
	svc := New(repository.NewMemory(), notify.Nop{})

	station, err := svc.Auth.Station(domain.RoleChefMexican)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryMexican, station)

	_, err = svc.Auth.Station(domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrUnrecognizedRole)
}
