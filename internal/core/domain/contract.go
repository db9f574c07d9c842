package domain

// Contract binds a client to an event sale. CommercialID is copied from the
// client at creation time and may later be reassigned. Date is stored in the
// validated dd/mm/yyyy wire format. Status is the signed flag.
//
// remaining_to_pay exceeding total_cost is not rejected anywhere; the
// original system never enforced it and the gap is kept as documented.
type Contract struct {
	ID             int64   `json:"id" bson:"_id"`
	ClientID       int64   `json:"client_id" bson:"client_id"`
	CommercialID   int64   `json:"commercial_id" bson:"commercial_id"`
	EventTitle     string  `json:"event_title" bson:"event_title"`
	TotalCost      float64 `json:"total_cost" bson:"total_cost"`
	RemainingToPay float64 `json:"remaining_to_pay" bson:"remaining_to_pay"`
	Date           string  `json:"date" bson:"date"`
	Status         bool    `json:"status" bson:"status"`
}
