package request

// SaveEvent creates or updates a show listing
type SaveEvent struct {
	Title            string   `json:"title" binding:"required"`
	Description      string   `json:"description"`
	VenueName        string   `json:"venue_name" binding:"required"`
	VenueCity        string   `json:"venue_city"`
	ApplicationId    string   `json:"application_id"`
	Showtimes        []string `json:"showtimes"`
	PosterHash       string   `json:"poster_hash"`
	TicketPriceCents int64    `json:"ticket_price_cents"`
	TotalSeats       int      `json:"total_seats"`
}
