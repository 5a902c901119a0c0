package event

import (
	"time"

	"templecms/internal/pkg/photos"
)

// ListFilter selects which events a public listing returns.
type ListFilter string

const (
	FilterAll      ListFilter = "all"
	FilterUpcoming ListFilter = "upcoming"
	FilterPast     ListFilter = "past"
)

// CreateEventRequest requires every field; the photos list carries legacy
// image URLs and each entry must be a well-formed URL.
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Category    string    `json:"category" validate:"required,oneof=Meditation 'Dhamma Talk' Workshop Retreat Ceremony Community"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	Photos      []string  `json:"photos" validate:"omitempty,dive,url"`
}

// UpdateEventRequest applies only the supplied fields; nil pointers leave
// the stored value untouched.
type UpdateEventRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Description *string    `json:"description" validate:"omitempty,min=1"`
	Category    *string    `json:"category" validate:"omitempty,oneof=Meditation 'Dhamma Talk' Workshop Retreat Ceremony Community"`
	EventDate   *time.Time `json:"event_date"`
	Photos      *[]string  `json:"photos" validate:"omitempty,dive,url"`
}

// EventResponse is the wire shape; the legacy photos column is decoded
// back into a list.
type EventResponse struct {
	Event
	Photos []string `json:"photos"`
}

func toResponse(e *Event) EventResponse {
	return EventResponse{
		Event:  *e,
		Photos: photos.Decode(e.Photos),
	}
}

func toResponses(events []Event) []EventResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = toResponse(&events[i])
	}
	return out
}
