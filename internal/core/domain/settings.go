package domain

// UserSettings is the flat user-preference bag persisted under its own key.
type UserSettings struct {
	NotificationsEnabled     bool
	PriceAlertsEnabled       bool
	DealNotificationsEnabled bool
	EmailNotifications       bool
	DarkModeEnabled          bool
	PreferredCurrency        string
	FavoriteCategories       []Category
}

// DefaultSettings is the state used before the user has saved anything and
// after a reset.
func DefaultSettings() UserSettings {
	return UserSettings{
		NotificationsEnabled:     true,
		PriceAlertsEnabled:       true,
		DealNotificationsEnabled: true,
		EmailNotifications:       false,
		DarkModeEnabled:          false,
		PreferredCurrency:        "USD",
	}
}
