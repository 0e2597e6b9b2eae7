// Package auth simulates authentication for the single local user. There is
// no account registry and no real credential check: any well-formed email
// with a long-enough password is accepted after an artificial delay. Failures
// are reported with a single generic error so the caller cannot distinguish
// "wrong password" from "no such account".
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/acormier/liftlog/internal/constants"
	"github.com/acormier/liftlog/internal/logger"
	"github.com/acormier/liftlog/internal/models"
	"github.com/acormier/liftlog/internal/storage"
	"github.com/acormier/liftlog/internal/validation"
)

// ErrInvalidCredentials is returned for any malformed email or too-short
// password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotLoggedIn is returned by profile operations when no session exists.
var ErrNotLoggedIn = errors.New("not logged in")

// Service manages the simulated session over the storage provider.
type Service struct {
	store storage.Provider
	delay time.Duration
}

func NewService(store storage.Provider) *Service {
	return &Service{
		store: store,
		delay: constants.LoginDelay,
	}
}

// SetDelay overrides the artificial auth latency; used by tests.
func (s *Service) SetDelay(d time.Duration) {
	s.delay = d
}

// sleep waits for the given artificial delay unless the context is cancelled
// first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Login validates the credentials and establishes a session. The display name
// is derived from the email local part.
func (s *Service) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := sleep(ctx, s.delay); err != nil {
		return models.User{}, err
	}

	if validation.ValidateEmail(email) != nil || validation.ValidatePassword(password) != nil {
		logger.Debug("Login rejected", "email", email)
		return models.User{}, ErrInvalidCredentials
	}

	user := models.User{
		ID:    uuid.New().String(),
		Email: email,
		Name:  strings.SplitN(email, "@", 2)[0],
	}
	if err := s.store.SaveUser(user); err != nil {
		return models.User{}, err
	}

	logger.Info("User logged in", "email", email)
	return user, nil
}

// Register validates the registration fields and establishes a session.
func (s *Service) Register(ctx context.Context, email, password, name string) (models.User, error) {
	if err := sleep(ctx, s.delay); err != nil {
		return models.User{}, err
	}

	if validation.ValidateEmail(email) != nil ||
		validation.ValidatePassword(password) != nil ||
		validation.ValidateName(name) != nil {
		logger.Debug("Registration rejected", "email", email)
		return models.User{}, ErrInvalidCredentials
	}

	user := models.User{
		ID:    uuid.New().String(),
		Email: email,
		Name:  name,
	}
	if err := s.store.SaveUser(user); err != nil {
		return models.User{}, err
	}

	logger.Info("User registered", "email", email)
	return user, nil
}

// LoginWithGoogle simulates a social login; it always succeeds with a fixed
// demo profile after a longer delay.
func (s *Service) LoginWithGoogle(ctx context.Context) (models.User, error) {
	if err := sleep(ctx, s.delay*3/2); err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:     uuid.New().String(),
		Email:  "user@gmail.com",
		Name:   "Fitness Enthusiast",
		Avatar: "https://ui-avatars.com/api/?name=Fitness+Enthusiast&background=FF6B35&color=fff",
	}
	if err := s.store.SaveUser(user); err != nil {
		return models.User{}, err
	}

	logger.Info("User logged in via Google")
	return user, nil
}

// Logout clears the persisted session.
func (s *Service) Logout() error {
	return s.store.DeleteUser()
}

// CurrentUser returns the active session user, if any.
func (s *Service) CurrentUser() (models.User, bool, error) {
	return s.store.GetUser()
}

// IsAuthenticated reports whether a session exists.
func (s *Service) IsAuthenticated() bool {
	_, ok, err := s.store.GetUser()
	return err == nil && ok
}

// UpdateProfile merges the patch into the current user and persists it.
func (s *Service) UpdateProfile(patch models.UserPatch) (models.User, error) {
	user, ok, err := s.store.GetUser()
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrNotLoggedIn
	}

	patch.Apply(&user)
	if patch.Email != nil {
		if err := validation.ValidateEmail(user.Email); err != nil {
			return models.User{}, err
		}
	}
	if err := s.store.SaveUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
