package event

import "time"

// Categories the center publishes events under. Creation and update reject
// anything outside this set.
const (
	CategoryMeditation = "Meditation"
	CategoryDhammaTalk = "Dhamma Talk"
	CategoryWorkshop   = "Workshop"
	CategoryRetreat    = "Retreat"
	CategoryCeremony   = "Ceremony"
	CategoryCommunity  = "Community"
)

// Event is a scheduled happening at the center. The photos column is the
// legacy URL-list representation kept for older content; new uploads live
// in the images table and reference the event by owner id.
type Event struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description;not null" json:"description"`
	Category    string    `gorm:"column:category;not null" json:"category"`
	EventDate   time.Time `gorm:"column:event_date;not null;index" json:"event_date"`
	Photos      string    `gorm:"column:photos;default:'[]'" json:"-"` // JSON-encoded URL list
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Event) TableName() string { return "events" }

// IsUpcoming classifies the event relative to now; an event starting
// exactly now still counts as upcoming.
func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.EventDate.Before(now)
}
