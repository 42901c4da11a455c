package response

import (
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/reconcile"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/submit"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/model"
)

type Application struct {
	Id            string `json:"id"`
	OwnerIdentity string `json:"owner_identity"`
	OwnerWallet   string `json:"owner_wallet"`
	DocumentHash  string `json:"document_hash"`
	Status        string `json:"status"`
	TransactionId string `json:"transaction_id,omitempty"`
	SubmittedAt   int64  `json:"submitted_at"`
	UpdatedAt     int64  `json:"updated_at,omitempty"`
	ReviewNotes   string `json:"review_notes,omitempty"`
	Stale         bool   `json:"stale,omitempty"`
}

type GetApplications struct {
	Applications []Application `json:"applications"`
}

func ReconciledToResponse(applications []reconcile.Application) *GetApplications {
	out := make([]Application, len(applications))
	for i, application := range applications {
		out[i] = Application{
			Id:            application.ID,
			OwnerIdentity: application.OwnerIdentity,
			OwnerWallet:   application.OwnerWallet.Hex(),
			DocumentHash:  application.DocumentHash,
			Status:        application.DisplayStatus,
			TransactionId: application.TransactionID,
			SubmittedAt:   application.SubmittedAt,
			UpdatedAt:     application.UpdatedAt,
			ReviewNotes:   application.ReviewNotes,
			Stale:         application.Stale,
		}
	}

	return &GetApplications{Applications: out}
}

// RecordsToResponse serves the cached rows when the registry is unreachable
func RecordsToResponse(records []model.ApplicationRecord) *GetApplications {
	out := make([]Application, len(records))
	for i, record := range records {
		out[i] = Application{
			Id:            record.ApplicationId,
			OwnerIdentity: record.OwnerIdentity,
			OwnerWallet:   record.OwnerWallet,
			DocumentHash:  record.DocumentHash,
			Status:        record.DisplayStatus,
			TransactionId: record.TransactionId,
			SubmittedAt:   record.SubmittedAt,
			ReviewNotes:   record.ReviewNotes,
			Stale:         true,
		}
	}

	return &GetApplications{Applications: out}
}

type SubmittedApplication struct {
	Id            string `json:"id"`
	TransactionId string `json:"transaction_id"`
	DocumentHash  string `json:"document_hash"`
}

func SubmitResultToResponse(result *submit.Result) *SubmittedApplication {
	return &SubmittedApplication{
		Id:            result.ApplicationID,
		TransactionId: result.TransactionID,
		DocumentHash:  result.DocumentHash,
	}
}
