package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/PVL06/OC-P12-Epic/internal/core/domain"
	"github.com/PVL06/OC-P12-Epic/internal/core/ports"
	"github.com/PVL06/OC-P12-Epic/internal/pkg/password"
)

// AuthService implements login, token issuing and password changes. The
// limiter is optional; when nil, failed-login throttling is disabled.
type AuthService struct {
	repo      ports.CollaboratorRepository
	limiter   ports.LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.CollaboratorRepository, limiter ports.LoginLimiter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, limiter: limiter, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Login verifies the credentials and returns a signed token embedding the
// collaborator's id, name and role, expiring after the configured TTL.
func (s *AuthService) Login(ctx context.Context, email, pwd string) (string, error) {
	if s.limiter != nil {
		locked, err := s.limiter.TooMany(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login limiter unavailable")
		} else if locked {
			return "", domain.ErrTooManyLogins
		}
	}

	collab, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCollaboratorNotFound) {
			s.recordFailure(ctx, email)
			return "", domain.ErrInvalidEmail
		}
		return "", err
	}

	ok, err := password.Verify(collab.PasswordHash, pwd)
	if err != nil {
		return "", err
	}
	if !ok {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidPassword
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	return s.issueToken(collab)
}

// ChangePassword replaces the authenticated actor's hash. The new password
// has already passed the length rule at the handler boundary.
func (s *AuthService) ChangePassword(ctx context.Context, actor domain.Actor, pwd string) error {
	hash, err := password.Hash(pwd)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, actor.ID, map[string]any{"password_hash": hash})
}

func (s *AuthService) issueToken(collab *domain.Collaborator) (string, error) {
	claims := jwt.MapClaims{
		"id":   collab.ID,
		"name": collab.Name,
		"role": string(collab.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.Fail(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter record failed")
	}
}
