package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lmhoang06/waiedu-task-management/internal/domain/entity"
	"github.com/lmhoang06/waiedu-task-management/internal/domain/repository"
	"github.com/lmhoang06/waiedu-task-management/pkg/helpers"
)

// AuthService verifies credentials, issues session tokens and resolves
// bearer tokens back into principals.
type AuthService struct {
	Users  repository.UserRepository
	Tokens repository.TokenRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, JWT: jwt, Logger: logger}
}

// LoginInput carries the mutually exclusive identifier pair plus password.
// Email is consulted only when Username is absent.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// LoginResult is the authenticated user together with the freshly issued
// access token.
type LoginResult struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// Login authenticates and, on success, performs token cleanup, token insert
// and the last_login stamp as one atomic store write.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Username == "" && in.Email == "" {
		return nil, Coded(CodeMissingCredentials, "Username or email is required.", "")
	}
	if in.Password == "" {
		return nil, Coded(CodeMissingCredentials, "Password is required.", "")
	}

	var (
		u   *entity.User
		err error
	)
	if in.Username != "" {
		u, err = s.Users.GetByUsername(ctx, in.Username)
	} else {
		u, err = s.Users.GetByEmail(ctx, in.Email)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeUserNotFound, "No user found with the provided credentials.", "Invalid username/email or password.")
		}
		return nil, err
	}

	if u.Status != entity.UserActive {
		return nil, Coded(CodeUserNotActive, fmt.Sprintf("User status is %s.", u.Status), "User account is not active.")
	}

	if !helpers.CompareHashAndPassword(u.Password, in.Password) {
		return nil, Coded(CodeInvalidPassword, "Password is incorrect.", "Invalid username/email or password.")
	}

	token, exp, err := s.JWT.Generate(u.ID, u.Username, u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		return nil, err
	}

	// Expired-token purge, token insert and last_login update commit together;
	// a crash mid-login must not leave a token without the login stamp.
	if err := s.Tokens.CompleteLogin(ctx, &entity.UserToken{
		UserID:    u.ID,
		Token:     token,
		ExpiresAt: exp,
	}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u.LastLogin = &now

	return &LoginResult{User: u, AccessToken: token, ExpiresAt: exp}, nil
}

// ResolvePrincipal turns a bearer token into the live user behind it.
// Signature and expiry come from the stateless verifier; the user row must
// still exist. The token row itself is checked only at logout.
func (s *AuthService) ResolvePrincipal(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, Coded(CodeInvalidToken, "Token is invalid or expired.", "Invalid or expired token.")
	}
	uid, err := claims.UserID()
	if err != nil {
		return nil, Coded(CodeInvalidToken, "Token is invalid or expired.", "Invalid or expired token.")
	}
	u, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Coded(CodeUserNotFound, "User not found.", "")
		}
		return nil, err
	}
	return u, nil
}

// Logout deletes the presented token row for the principal. A second logout
// with the same token reports TOKEN_NOT_FOUND rather than silently passing.
func (s *AuthService) Logout(ctx context.Context, u *entity.User, token string) error {
	err := s.Tokens.Delete(ctx, u.ID, token)
	if errors.Is(err, repository.ErrNotFound) {
		return Coded(CodeTokenNotFound, "Token not found in database.", "Token not found or already logged out.")
	}
	return err
}
