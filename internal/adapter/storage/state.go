package storage

import (
	"fmt"

	"github.com/savora-app/savora/internal/core/domain"
	"github.com/savora-app/savora/internal/core/port"
	"github.com/savora-app/savora/pkg/schema"
)

// Persisted-state keys. Absence of a key means "use defaults".
const (
	KeyWishlists  = "wishlists"
	KeySettings   = "userSettings"
	KeyOnboarding = "hasCompletedOnboarding"
)

var _ port.WishlistStore = (*StateRepository)(nil)
var _ port.SettingsStore = (*StateRepository)(nil)

// StateRepository persists user-owned state as versioned avro blobs in the
// injected key-value store. Every save rewrites the blob in full; a blob
// that fails to decode surfaces domain.ErrCorruptState so callers can fall
// back to defaults with a distinguishable signal.
type StateRepository struct {
	kv            port.KeyValueStore
	wishlistSerde schema.Serde
	settingsSerde schema.Serde
}

func NewStateRepository(kv port.KeyValueStore) (StateRepository, error) {
	const op = "NewStateRepository"

	wishlistSerde, err := schema.NewWishlistsSerdeV1()
	if err != nil {
		return StateRepository{}, fmt.Errorf("%s: %w", op, err)
	}
	settingsSerde, err := schema.NewUserSettingsSerdeV1()
	if err != nil {
		return StateRepository{}, fmt.Errorf("%s: %w", op, err)
	}
	return StateRepository{
		kv:            kv,
		wishlistSerde: wishlistSerde,
		settingsSerde: settingsSerde,
	}, nil
}

func (r StateRepository) LoadWishlists() ([]domain.Wishlist, error) {
	const op = "StateRepository.LoadWishlists"

	data, ok, err := r.kv.Get(KeyWishlists)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return nil, nil
	}

	var record schema.WishlistsV1
	if err := r.wishlistSerde.Decode(data, &record); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, domain.ErrCorruptState)
	}
	return wishlistsToDomain(record), nil
}

func (r StateRepository) SaveWishlists(ws []domain.Wishlist) error {
	const op = "StateRepository.SaveWishlists"

	data, err := r.wishlistSerde.Encode(wishlistsToRecord(ws))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.kv.Set(KeyWishlists, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r StateRepository) ClearWishlists() error {
	const op = "StateRepository.ClearWishlists"

	if err := r.kv.Delete(KeyWishlists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r StateRepository) LoadSettings() (domain.UserSettings, error) {
	const op = "StateRepository.LoadSettings"

	data, ok, err := r.kv.Get(KeySettings)
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return domain.DefaultSettings(), nil
	}

	var record schema.UserSettingsV1
	if err := r.settingsSerde.Decode(data, &record); err != nil {
		return domain.UserSettings{}, fmt.Errorf(
			"%s: %v: %w", op, err, domain.ErrCorruptState,
		)
	}
	return settingsToDomain(record), nil
}

func (r StateRepository) SaveSettings(s domain.UserSettings) error {
	const op = "StateRepository.SaveSettings"

	data, err := r.settingsSerde.Encode(settingsToRecord(s))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.kv.Set(KeySettings, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r StateRepository) CompletedOnboarding() (bool, error) {
	const op = "StateRepository.CompletedOnboarding"

	data, ok, err := r.kv.Get(KeyOnboarding)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok && len(data) == 1 && data[0] == 1, nil
}

func (r StateRepository) SetCompletedOnboarding(done bool) error {
	const op = "StateRepository.SetCompletedOnboarding"

	value := []byte{0}
	if done {
		value[0] = 1
	}
	if err := r.kv.Set(KeyOnboarding, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r StateRepository) ClearSettings() error {
	const op = "StateRepository.ClearSettings"

	if err := r.kv.Delete(KeySettings); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.kv.Delete(KeyOnboarding); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
