package domain

// Event is the planned occasion a signed contract pays for. At most one event
// exists per contract (unique index on contract_id). ClientID is derived from
// the contract at creation. SupportID is zero until a support collaborator is
// assigned. Start and End keep the validated "dd/mm/yyyy hh:mm" wire format;
// start < end is deliberately not enforced.
type Event struct {
	ID         int64  `json:"id" bson:"_id"`
	ContractID int64  `json:"contract_id" bson:"contract_id"`
	ClientID   int64  `json:"client_id" bson:"client_id"`
	Start      string `json:"event_start" bson:"event_start"`
	End        string `json:"event_end" bson:"event_end"`
	SupportID  int64  `json:"support_id" bson:"support_id"`
	Location   string `json:"location" bson:"location"`
	Attendees  int64  `json:"attendees" bson:"attendees"`
	Note       string `json:"note" bson:"note"`
}
