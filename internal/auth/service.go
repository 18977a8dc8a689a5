package auth

import (
	"context"
	"time"

	"github.com/portfolio-cms/portfolio-cms/internal/db/models"
)

// UserLookup is the slice of the user repository the login flow needs.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthResult is a successful login: a signed token plus the credential-free
// user view.
type AuthResult struct {
	Token string          `json:"token"`
	User  models.UserSafe `json:"user"`
}

// Service performs credential verification and token issuance.
type Service struct {
	users    UserLookup
	tokenTTL time.Duration
}

// NewService creates an auth service. A zero ttl means the default lifetime.
func NewService(users UserLookup, tokenTTL time.Duration) *Service {
	if tokenTTL == 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{users: users, tokenTTL: tokenTTL}
}

// Login verifies a username/password pair and issues a token. An unknown
// username and a wrong password both return (nil, nil) so callers cannot
// distinguish them. A non-nil error means the store failed, not that the
// credentials were bad.
func (s *Service) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Burn a hash comparison anyway so response timing does not
		// reveal whether the username exists.
		CheckPassword(password, dummyHash)
		return nil, nil
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, nil
	}

	token, err := GenerateToken(user.ID, user.Username, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user.Safe()}, nil
}

// dummyHash is a valid bcrypt digest of an unguessable value, used to keep
// the unknown-user path as slow as the wrong-password path.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
