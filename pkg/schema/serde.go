package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

// Serde encodes and decodes one versioned record type. Both directions use
// the schema the serde was constructed with, so persisted blobs stay
// readable as long as the V1 schema text is kept stable.
type Serde struct {
	avroSchema avro.Schema
}

func (s Serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s Serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}

// NewWishlistsSerdeV1 builds the serde for the persisted wishlist
// collection.
func NewWishlistsSerdeV1() (Serde, error) {
	const op = "NewWishlistsSerdeV1"
	return newSerde(op, WishlistsSchemaTextV1)
}

// NewUserSettingsSerdeV1 builds the serde for persisted user settings.
func NewUserSettingsSerdeV1() (Serde, error) {
	const op = "NewUserSettingsSerdeV1"
	return newSerde(op, UserSettingsSchemaTextV1)
}

func newSerde(op, schemaText string) (Serde, error) {
	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return Serde{}, fmt.Errorf("%s: %w", op, err)
	}
	return Serde{avroSchema: avroSchema}, nil
}
