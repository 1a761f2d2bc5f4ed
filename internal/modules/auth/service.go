package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"homestay/internal/domain"
	"homestay/internal/facade"
)

const minPasswordLen = 8

type jwtService interface {
	GenerateToken(userID, role string, isAdmin bool) (string, error)
}

// Service owns registration and login. It hashes credentials before they
// reach the facade, which only ever stores the hash.
type Service struct {
	facade *facade.Facade
	jwt    jwtService
}

type LoginResult struct {
	Account     *domain.User
	Role        facade.Role
	AccessToken string
}

func NewService(f *facade.Facade, jwt jwtService) *Service {
	return &Service{facade: f, jwt: jwt}
}

// Register creates a guest or host account. The very first account on a
// fresh install becomes an admin.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, facade.Role, error) {
	if len(req.Password) < minPasswordLen {
		return nil, "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	isFirst, err := s.facade.IsFirstAccount(ctx)
	if err != nil {
		return nil, "", err
	}

	params := facade.CreateUserParams{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      isFirst,
	}

	switch facade.Role(req.Role) {
	case facade.RoleGuest:
		u, err := s.facade.CreateUser(ctx, params)
		if err != nil {
			return nil, "", err
		}
		return u, facade.RoleGuest, nil
	case facade.RoleHost:
		h, err := s.facade.CreateHost(ctx, params)
		if err != nil {
			return nil, "", err
		}
		return &h.User, facade.RoleHost, nil
	default:
		return nil, "", ErrUnknownRole
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	account, role, err := s.facade.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, facade.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(account.ID, string(role), account.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Account: account, Role: role, AccessToken: token}, nil
}
