// Package settings owns the user profile. Screens that show or edit the
// profile receive a *Store instead of reading shared package state.
package settings

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/emilianohg/devboard/internal/models"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidEmail     = errors.New("email address is invalid")
)

// Storage is the persistence the store reads from and writes through to.
type Storage interface {
	Load() (models.Profile, error)
	Save(models.Profile) error
}

type Store struct {
	mu        sync.RWMutex
	storage   Storage
	log       *zap.Logger
	profile   models.Profile
	listeners []func(models.Profile)
}

// NewStore loads the current profile from storage.
func NewStore(storage Storage, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	profile, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &Store{storage: storage, log: log, profile: profile}, nil
}

func (s *Store) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Update validates and persists p, then notifies listeners. On error the
// current profile is left as it was.
func (s *Store) Update(p models.Profile) error {
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)
	if err := Validate(p); err != nil {
		return err
	}

	s.mu.Lock()
	if err := s.storage.Save(p); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("save profile: %w", err)
	}
	s.profile = p
	listeners := append([]func(models.Profile){}, s.listeners...)
	s.mu.Unlock()

	s.log.Info("profile updated", zap.String("username", p.Username))
	for _, fn := range listeners {
		fn(p)
	}
	return nil
}

// OnChange registers fn to run after every successful Update.
func (s *Store) OnChange(fn func(models.Profile)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func Validate(p models.Profile) error {
	if strings.TrimSpace(p.Username) == "" {
		return ErrUsernameRequired
	}
	addr, err := mail.ParseAddress(p.Email)
	if err != nil || addr.Address != strings.TrimSpace(p.Email) {
		return ErrInvalidEmail
	}
	return nil
}
