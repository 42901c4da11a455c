package submit

import (
	"github.com/go-playground/validator/v10"
)

// OwnerDetails is the first form step
type OwnerDetails struct {
	FullName      string `json:"full_name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=7"`
	IdentityProof string `json:"identity_proof" validate:"required"`
}

// TheaterDetails is the second form step
type TheaterDetails struct {
	Name           string `json:"name" validate:"required,min=2"`
	AddressLine    string `json:"address_line" validate:"required"`
	City           string `json:"city" validate:"required"`
	State          string `json:"state" validate:"required"`
	PostalCode     string `json:"postal_code" validate:"required,min=4"`
	Screens        int    `json:"screens" validate:"required,min=1,max=50"`
	SeatsPerScreen int    `json:"seats_per_screen" validate:"required,min=10,max=2000"`
}

// LegalDocuments is the third form step
type LegalDocuments struct {
	OwnershipDeed      string `json:"ownership_deed" validate:"required"`
	TradeLicenseNumber string `json:"trade_license_number" validate:"required"`
	GstNumber          string `json:"gst_number" validate:"required"`
	NocCertificate     string `json:"noc_certificate"`
}

// Form holds the merged data of all completed steps. Backward navigation
// never clears it; re-submitted steps overwrite their own section only.
type Form struct {
	Owner   OwnerDetails   `json:"owner"`
	Theater TheaterDetails `json:"theater"`
	Legal   LegalDocuments `json:"legal"`
}

var validate = validator.New()

func validateStep(step interface{}) error {
	err := validate.Struct(step)
	if err != nil {
		return &ValidationError{cause: err}
	}
	return nil
}
