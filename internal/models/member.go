package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is member entity
type Member struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
