package service

import (
	"ordify/internal/domain"
	"ordify/internal/repository"
)

type AuthServiceInterface interface {
	Authenticate(pin string) (domain.LoginResponse, error)
	Station(role domain.Role) (string, error)
}

type AuthService struct {
	users repository.UserRepositoryInterface
}

func NewAuthService(users repository.UserRepositoryInterface) AuthServiceInterface {
	return &AuthService{users: users}
}

// Authenticate resolves a 6-digit PIN against the static user
// directory. Kitchen and bar roles also get their station key so the
// caller can route them to the right queue.
func (s *AuthService) Authenticate(pin string) (domain.LoginResponse, error) {
	if !validPin(pin) {
		return domain.LoginResponse{}, domain.ErrInvalidPin
	}
	u, ok := s.users.UserByPIN(pin)
	if !ok {
		return domain.LoginResponse{}, domain.ErrUnknownPin
	}
	resp := domain.LoginResponse{Name: u.Name, Role: u.Role}
	if station, ok := domain.StationForRole(u.Role); ok {
		resp.Station = station
	}
	return resp, nil
}

// Station maps a kitchen/bar role to its fulfillment queue. Roles
// without a station (admin, server) are rejected.
func (s *AuthService) Station(role domain.Role) (string, error) {
	station, ok := domain.StationForRole(role)
	if !ok {
		return "", domain.ErrUnrecognizedRole
	}
	return station, nil
}

func validPin(pin string) bool {
	if len(pin) != 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
