package model

import (
	"time"

	"github.com/jackc/pgtype"
)

const (
	TableEvent = "events"
)

// Event is a show listing hosted by an approved theater
type Event struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string
	Description string
	VenueName   string
	VenueCity   string

	// Theater application the venue was approved under
	ApplicationId string

	// Showtimes as a JSON array of RFC3339 timestamps
	Showtimes pgtype.JSONB `gorm:"type:jsonb"`

	// Content hash of the poster pinned to IPFS
	PosterHash string

	TicketPriceCents int64
	TotalSeats       int

	IsActive bool
}

func (Event) TableName() string {
	return TableEvent
}
