// Package vocab maps the registry's numeric application status codes into the
// string labels each portal displays. The mapping is total: codes outside the
// known range degrade to the default label and are reported through the second
// return value, never through an error.
package vocab

import "math/big"

// Status codes as stored in the TheaterRegistry contract
const (
	StatusPending     int64 = 0
	StatusApproved    int64 = 1
	StatusRejected    int64 = 2
	StatusUnderReview int64 = 3
)

// DefaultLabel is what any unrecognized code degrades to
const DefaultLabel = "pending"

type Vocabulary int

const (
	Admin Vocabulary = iota
	Owner
)

func (v Vocabulary) String() string {
	switch v {
	case Admin:
		return "admin"
	case Owner:
		return "owner"
	}
	return ""
}

// Map translates a status code into the label used by the given portal.
// The second return value is false when the code is outside the known range,
// which indicates drift between the registry and this client.
func Map(code int64, v Vocabulary) (label string, known bool) {
	switch v {
	case Owner:
		switch code {
		case StatusPending:
			return "pending", true
		case StatusApproved:
			return "active", true
		case StatusRejected:
			return "rejected", true
		case StatusUnderReview:
			// Owners are not shown a distinct under-review state
			return "pending", true
		}
	default:
		switch code {
		case StatusPending:
			return "pending", true
		case StatusApproved:
			return "approved", true
		case StatusRejected:
			return "rejected", true
		case StatusUnderReview:
			return "under_review", true
		}
	}

	return DefaultLabel, false
}

// FromBig converts a big-integer wrapped status code delivered by the chain
// client. Nil or out-of-range values map to -1, which Map treats as unknown.
func FromBig(code *big.Int) int64 {
	if code == nil || !code.IsInt64() {
		return -1
	}
	return code.Int64()
}
