package db_models

import (
	"time"

	"github.com/google/uuid"
)

type TripFeedback struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TripID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionID uuid.UUID `gorm:"type:uuid;not null"`
	Comment   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
