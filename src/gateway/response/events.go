package response

import (
	"encoding/json"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/model"
)

type Event struct {
	Id               uint            `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description,omitempty"`
	VenueName        string          `json:"venue_name"`
	VenueCity        string          `json:"venue_city,omitempty"`
	ApplicationId    string          `json:"application_id,omitempty"`
	Showtimes        json.RawMessage `json:"showtimes"`
	PosterHash       string          `json:"poster_hash,omitempty"`
	TicketPriceCents int64           `json:"ticket_price_cents"`
	TotalSeats       int             `json:"total_seats"`
	IsActive         bool            `json:"is_active"`
}

type GetEvents struct {
	Events []Event `json:"events"`
}

func EventToResponse(event *model.Event) *Event {
	return &Event{
		Id:               event.ID,
		Title:            event.Title,
		Description:      event.Description,
		VenueName:        event.VenueName,
		VenueCity:        event.VenueCity,
		ApplicationId:    event.ApplicationId,
		Showtimes:        event.Showtimes.Bytes,
		PosterHash:       event.PosterHash,
		TicketPriceCents: event.TicketPriceCents,
		TotalSeats:       event.TotalSeats,
		IsActive:         event.IsActive,
	}
}

func EventsToResponse(events []model.Event) *GetEvents {
	out := make([]Event, len(events))
	for i := range events {
		out[i] = *EventToResponse(&events[i])
	}
	return &GetEvents{Events: out}
}
