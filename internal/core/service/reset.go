package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/savora-app/savora/internal/core/port"
)

var _ port.AppResetter = (*ResetService)(nil)

// ResetService implements the "reset app" action: wishlists, settings and
// the onboarding flag all go back to first-run state.
type ResetService struct {
	wishlists *WishlistService
	settings  *SettingsService
}

func NewResetService(
	wishlists *WishlistService, settings *SettingsService,
) ResetService {
	return ResetService{wishlists: wishlists, settings: settings}
}

func (s ResetService) ResetApp(ctx context.Context) error {
	const op = "ResetService.ResetApp"

	if err := s.wishlists.Clear(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.settings.Reset(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slog.Info("application state reset", "op", op)
	return nil
}
