package schema

// Persisted wishlist state, version 1. Categories travel as their stable
// string tags and timestamps as unix milliseconds.
const WishlistsSchemaTextV1 = `{
	"type": "record",
	"namespace": "savora.state",
	"name": "wishlists",
	"fields": [
		{"name": "wishlists", "type": {"type": "array", "items": {
			"type": "record",
			"name": "wishlist",
			"fields": [
				{"name": "wishlist_id", "type": "string"},
				{"name": "name", "type": "string"},
				{"name": "is_shared", "type": "boolean"},
				{"name": "created_date", "type": "long"},
				{"name": "items", "type": {"type": "array", "items": {
					"type": "record",
					"name": "wishlist_item",
					"fields": [
						{"name": "item_id", "type": "string"},
						{"name": "product_id", "type": "string"},
						{"name": "product_name", "type": "string"},
						{"name": "product_image_ref", "type": "string"},
						{"name": "current_price", "type": "double"},
						{"name": "target_price", "type": ["null", "double"], "default": null},
						{"name": "price_alert_enabled", "type": "boolean"},
						{"name": "notes", "type": "string"},
						{"name": "added_date", "type": "long"},
						{"name": "category", "type": "string"}
					]
				}}}
			]
		}}}
	]
}`

type (
	WishlistsV1 struct {
		Wishlists []WishlistV1 `avro:"wishlists"`
	}

	WishlistV1 struct {
		WishlistID  string           `avro:"wishlist_id"`
		Name        string           `avro:"name"`
		IsShared    bool             `avro:"is_shared"`
		CreatedDate int64            `avro:"created_date"`
		Items       []WishlistItemV1 `avro:"items"`
	}

	WishlistItemV1 struct {
		ItemID            string   `avro:"item_id"`
		ProductID         string   `avro:"product_id"`
		ProductName       string   `avro:"product_name"`
		ProductImageRef   string   `avro:"product_image_ref"`
		CurrentPrice      float64  `avro:"current_price"`
		TargetPrice       *float64 `avro:"target_price"`
		PriceAlertEnabled bool     `avro:"price_alert_enabled"`
		Notes             string   `avro:"notes"`
		AddedDate         int64    `avro:"added_date"`
		Category          string   `avro:"category"`
	}
)
