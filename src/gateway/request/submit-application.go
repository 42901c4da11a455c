package request

import "github.com/bharathkumaracharips/BookMyBlock-sub000/src/submit"

// SubmitApplication carries all three form steps for a non-interactive
// submission
type SubmitApplication struct {
	OwnerIdentity string `json:"owner_identity" binding:"required"`
	OwnerWallet   string `json:"owner_wallet" binding:"required"`

	Owner   submit.OwnerDetails   `json:"owner"`
	Theater submit.TheaterDetails `json:"theater"`
	Legal   submit.LegalDocuments `json:"legal"`
}
