package request

// DecideApplication is the body of an accept or reject decision
type DecideApplication struct {
	ReviewNotes string `json:"review_notes"`
}
