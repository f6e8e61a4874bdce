package schema

// Persisted user settings, version 1.
const UserSettingsSchemaTextV1 = `{
	"type": "record",
	"namespace": "savora.state",
	"name": "user_settings",
	"fields": [
		{"name": "notifications_enabled", "type": "boolean"},
		{"name": "price_alerts_enabled", "type": "boolean"},
		{"name": "deal_notifications_enabled", "type": "boolean"},
		{"name": "email_notifications", "type": "boolean"},
		{"name": "dark_mode_enabled", "type": "boolean"},
		{"name": "preferred_currency", "type": "string"},
		{"name": "favorite_categories", "type": {"type": "array", "items": "string"}}
	]
}`

type UserSettingsV1 struct {
	NotificationsEnabled     bool     `avro:"notifications_enabled"`
	PriceAlertsEnabled       bool     `avro:"price_alerts_enabled"`
	DealNotificationsEnabled bool     `avro:"deal_notifications_enabled"`
	EmailNotifications       bool     `avro:"email_notifications"`
	DarkModeEnabled          bool     `avro:"dark_mode_enabled"`
	PreferredCurrency        string   `avro:"preferred_currency"`
	FavoriteCategories       []string `avro:"favorite_categories"`
}
