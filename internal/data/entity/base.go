package entity

import (
	"time"

	"github.com/google/uuid"
)

type Base struct {
	ID        uuid.UUID `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type BaseSimple struct {
	ID        uuid.UUID `bson:"_id"`
	CreatedAt time.Time `bson:"created_at"`
}
