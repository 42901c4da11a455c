package registry

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/vocab"

	"github.com/ethereum/go-ethereum/common"
)

// Application is the typed form of the positional tuples the contract returns.
// Raw tuples never leave this package.
type Application struct {
	// Registry assigned identifier, e.g. "APP_7". Empty in records coming
	// from the per-user index, which does not carry the id.
	ID string

	// Stable external identity of the submitting user
	OwnerIdentity string

	// Chain address associated with the owner at submission time
	OwnerWallet common.Address

	// Content address of the application document in the blob store
	DocumentHash string

	// Raw registry status code, see the vocab package for the UI labels
	Status uint8

	// Seconds since epoch, registry assigned
	SubmittedAt int64
	UpdatedAt   int64

	ReviewNotes string
	IsActive    bool
}

// SubmitResult pairs the registry assigned application id with the identifier
// of the ledger write that created it
type SubmitResult struct {
	ApplicationID string
	TxID          string
}

// rawApplication mirrors the ABI tuple layout of getUserApplications
type rawApplication struct {
	AppId                string
	UserId               string
	Wallet               common.Address
	IpfsHash             string
	Status               uint8
	SubmissionTimestamp  *big.Int
	LastUpdatedTimestamp *big.Int
	ReviewNotes          string
	IsActive             bool
}

func (raw *rawApplication) toApplication() Application {
	return Application{
		ID:            raw.AppId,
		OwnerIdentity: raw.UserId,
		OwnerWallet:   raw.Wallet,
		DocumentHash:  raw.IpfsHash,
		Status:        raw.Status,
		SubmittedAt:   timestampToInt64(raw.SubmissionTimestamp),
		UpdatedAt:     timestampToInt64(raw.LastUpdatedTimestamp),
		ReviewNotes:   raw.ReviewNotes,
		IsActive:      raw.IsActive,
	}
}

func timestampToInt64(v *big.Int) int64 {
	if v == nil || !v.IsInt64() {
		return 0
	}
	return v.Int64()
}

// decodeApplicationTuple decodes the positional output of getApplication
func decodeApplicationTuple(id string, values []interface{}) (out Application, err error) {
	if len(values) != 8 {
		err = fmt.Errorf("unexpected getApplication tuple size: %d", len(values))
		return
	}

	var ok bool
	out.ID = id

	out.OwnerIdentity, ok = values[0].(string)
	if !ok {
		err = errors.New("failed to decode owner identity")
		return
	}

	out.OwnerWallet, ok = values[1].(common.Address)
	if !ok {
		err = errors.New("failed to decode owner wallet")
		return
	}

	out.DocumentHash, ok = values[2].(string)
	if !ok {
		err = errors.New("failed to decode document hash")
		return
	}

	// Status may arrive as uint8 or wrapped in a big integer, depending on
	// which client stack produced the tuple
	switch code := values[3].(type) {
	case uint8:
		out.Status = code
	case *big.Int:
		n := vocab.FromBig(code)
		if n < 0 || n > 255 {
			err = errors.New("failed to decode status")
			return
		}
		out.Status = uint8(n)
	default:
		err = errors.New("failed to decode status")
		return
	}

	submittedAt, ok := values[4].(*big.Int)
	if !ok {
		err = errors.New("failed to decode submission timestamp")
		return
	}
	out.SubmittedAt = timestampToInt64(submittedAt)

	updatedAt, ok := values[5].(*big.Int)
	if !ok {
		err = errors.New("failed to decode last updated timestamp")
		return
	}
	out.UpdatedAt = timestampToInt64(updatedAt)

	out.ReviewNotes, ok = values[6].(string)
	if !ok {
		err = errors.New("failed to decode review notes")
		return
	}

	out.IsActive, ok = values[7].(bool)
	if !ok {
		err = errors.New("failed to decode active flag")
		return
	}

	return
}
