package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/service"
)

type fakeSettingsStore struct {
	settings   domain.UserSettings
	loadErr    error
	onboarded  bool
	saveCalls  int
	clearCalls int
}

func (s *fakeSettingsStore) LoadSettings() (domain.UserSettings, error) {
	if s.loadErr != nil {
		return domain.UserSettings{}, s.loadErr
	}
	return s.settings, nil
}

func (s *fakeSettingsStore) SaveSettings(settings domain.UserSettings) error {
	s.saveCalls++
	s.settings = settings
	return nil
}

func (s *fakeSettingsStore) CompletedOnboarding() (bool, error) {
	return s.onboarded, nil
}

func (s *fakeSettingsStore) SetCompletedOnboarding(done bool) error {
	s.onboarded = done
	return nil
}

func (s *fakeSettingsStore) ClearSettings() error {
	s.clearCalls++
	s.settings = domain.UserSettings{}
	s.onboarded = false
	return nil
}

func TestSettingsService(t *testing.T) {
	t.Run("UpdatePersistsWriteThrough", func(t *testing.T) {
		store := &fakeSettingsStore{settings: domain.DefaultSettings()}
		svc := service.NewSettingsService(store)

		updated := domain.DefaultSettings()
		updated.DarkModeEnabled = true
		updated.PreferredCurrency = "EUR"
		updated.FavoriteCategories = []domain.Category{domain.CategoryBooks}

		require.NoError(t, svc.UpdateSettings(t.Context(), updated))
		assert.Equal(t, updated, svc.Settings(t.Context()))
		assert.Equal(t, 1, store.saveCalls)
	})

	t.Run("RejectsUnknownCategory", func(t *testing.T) {
		store := &fakeSettingsStore{settings: domain.DefaultSettings()}
		svc := service.NewSettingsService(store)

		bad := domain.DefaultSettings()
		bad.FavoriteCategories = []domain.Category{"Groceries"}

		err := svc.UpdateSettings(t.Context(), bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, store.saveCalls)
	})

	t.Run("CorruptStateFallsBackToDefaults", func(t *testing.T) {
		store := &fakeSettingsStore{loadErr: domain.ErrCorruptState}
		svc := service.NewSettingsService(store)

		assert.Equal(t, domain.DefaultSettings(), svc.Settings(t.Context()))
	})

	t.Run("OnboardingFlag", func(t *testing.T) {
		store := &fakeSettingsStore{settings: domain.DefaultSettings()}
		svc := service.NewSettingsService(store)

		assert.False(t, svc.CompletedOnboarding(t.Context()))
		require.NoError(t, svc.SetCompletedOnboarding(t.Context(), true))
		assert.True(t, svc.CompletedOnboarding(t.Context()))
	})

	t.Run("ResetRestoresDefaults", func(t *testing.T) {
		store := &fakeSettingsStore{settings: domain.DefaultSettings()}
		svc := service.NewSettingsService(store)

		custom := domain.DefaultSettings()
		custom.EmailNotifications = true
		require.NoError(t, svc.UpdateSettings(t.Context(), custom))

		require.NoError(t, svc.Reset(t.Context()))
		assert.Equal(t, domain.DefaultSettings(), svc.Settings(t.Context()))
		assert.Equal(t, 1, store.clearCalls)
	})
}

func TestResetService(t *testing.T) {
	wishlistStore := &fakeWishlistStore{}
	settingsStore := &fakeSettingsStore{settings: domain.DefaultSettings()}

	wishlists := service.NewWishlistService(wishlistStore)
	settings := service.NewSettingsService(settingsStore)
	resetter := service.NewResetService(wishlists, settings)

	_, err := wishlists.AddItem(t.Context(), flagshipPhone())
	require.NoError(t, err)
	require.NoError(t, settings.SetCompletedOnboarding(t.Context(), true))

	require.NoError(t, resetter.ResetApp(t.Context()))

	assert.Empty(t, wishlists.Wishlists(t.Context()))
	assert.Equal(t, domain.DefaultSettings(), settings.Settings(t.Context()))
	assert.False(t, settings.CompletedOnboarding(t.Context()))
}
