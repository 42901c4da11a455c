package submit

import (
	"encoding/json"
	"time"
)

// DocumentGenerator turns the merged form data into the immutable artifact
// that gets content-addressed. Injectable so tests can force failures.
type DocumentGenerator func(form *Form, generatedAt time.Time) ([]byte, error)

// applicationDocument is the pinned artifact layout. Once pinned it is
// immutable; the content hash is the only reference the registry stores.
type applicationDocument struct {
	Schema      string         `json:"schema"`
	GeneratedAt int64          `json:"generated_at"`
	Owner       OwnerDetails   `json:"owner"`
	Theater     TheaterDetails `json:"theater"`
	Legal       LegalDocuments `json:"legal"`
}

// GenerateJSONDocument is the default generator
func GenerateJSONDocument(form *Form, generatedAt time.Time) ([]byte, error) {
	doc := applicationDocument{
		Schema:      "theater-application/v1",
		GeneratedAt: generatedAt.Unix(),
		Owner:       form.Owner,
		Theater:     form.Theater,
		Legal:       form.Legal,
	}
	return json.MarshalIndent(&doc, "", "  ")
}
