package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/port"
)

var _ port.SettingsManager = (*SettingsService)(nil)

// SettingsService owns user preferences and the first-run onboarding flag.
// Like the wishlist tracker it is write-through: every update rewrites the
// persisted settings blob in full.
type SettingsService struct {
	mu       sync.Mutex
	store    port.SettingsStore
	settings domain.UserSettings
}

// NewSettingsService loads persisted settings once, defaulting on an absent
// or corrupt blob.
func NewSettingsService(store port.SettingsStore) *SettingsService {
	const op = "NewSettingsService"

	settings, err := store.LoadSettings()
	if err != nil {
		if errors.Is(err, domain.ErrCorruptState) {
			slog.Warn("settings state is corrupt, using defaults",
				"op", op, "err", err)
		} else {
			slog.Error("failed to load settings, using defaults",
				"op", op, "err", err)
		}
		settings = domain.DefaultSettings()
	}
	return &SettingsService{store: store, settings: settings}
}

// Settings returns the current preferences.
func (s *SettingsService) Settings(ctx context.Context) domain.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings replaces the preferences and persists them.
func (s *SettingsService) UpdateSettings(
	ctx context.Context, settings domain.UserSettings,
) error {
	const op = "SettingsService.UpdateSettings"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, c := range settings.FavoriteCategories {
		if !c.Valid() {
			return fmt.Errorf(
				"%s: category %q: %w", op, c, domain.ErrInvalidInput,
			)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = settings
	if err := s.store.SaveSettings(settings); err != nil {
		slog.Error("failed to persist settings", "op", op, "err", err)
	}
	return nil
}

// CompletedOnboarding reports whether first-run onboarding has finished.
// A missing or unreadable flag counts as not completed.
func (s *SettingsService) CompletedOnboarding(ctx context.Context) bool {
	const op = "SettingsService.CompletedOnboarding"

	done, err := s.store.CompletedOnboarding()
	if err != nil {
		slog.Warn("failed to read onboarding flag", "op", op, "err", err)
		return false
	}
	return done
}

// SetCompletedOnboarding persists the onboarding flag.
func (s *SettingsService) SetCompletedOnboarding(
	ctx context.Context, done bool,
) error {
	const op = "SettingsService.SetCompletedOnboarding"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.store.SetCompletedOnboarding(done); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Reset restores default settings and clears the persisted blob and the
// onboarding flag.
func (s *SettingsService) Reset(ctx context.Context) error {
	const op = "SettingsService.Reset"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = domain.DefaultSettings()
	if err := s.store.ClearSettings(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
