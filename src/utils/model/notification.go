package model

import "encoding/json"

// StatusChangeNotification is published to Redis whenever an admin decision
// lands on the registry
type StatusChangeNotification struct {
	ApplicationId string `json:"application_id"`
	OwnerIdentity string `json:"owner_identity"`
	Status        uint8  `json:"status"`
	DisplayStatus string `json:"display_status"`
	ReviewNotes   string `json:"review_notes,omitempty"`
	TransactionId string `json:"transaction_id,omitempty"`
}

func (self *StatusChangeNotification) MarshalBinary() (data []byte, err error) {
	return json.Marshal(self)
}
