package db_models

import "github.com/google/uuid"

// SavedTrip is a generated itinerary a planner session chose to keep.
// Criteria and Itinerary are stored as the JSON the planner produced; the
// flows themselves never read this table.
type SavedTrip struct {
	BaseModel
	SessionID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:text;not null"`
	Criteria  string    `gorm:"type:jsonb;not null"`
	Itinerary string    `gorm:"type:jsonb;not null"`
}
