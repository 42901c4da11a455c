package model

import "time"

const (
	TableApplicationRecord = "application_records"
)

// ApplicationRecord is a local cache row of a reconciled theater application,
// kept so admin listings survive registry outages. The registry stays the
// source of truth, rows are upserted on every reconciliation pass.
type ApplicationRecord struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ApplicationId string `gorm:"uniqueIndex"`
	OwnerIdentity string `gorm:"index"`
	OwnerWallet   string

	DocumentHash  string
	Status        uint8
	DisplayStatus string
	TransactionId string

	SubmittedAt int64
	ReviewNotes string

	// Last fetch served stale index data instead of an authoritative read
	Stale bool
}

func (ApplicationRecord) TableName() string {
	return TableApplicationRecord
}
