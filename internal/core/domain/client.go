package domain

import "time"

// Client is a customer of the business. CommercialID references the owning
// sales collaborator; zero means unassigned.
type Client struct {
	ID           int64     `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone" bson:"phone"`
	Company      string    `json:"company" bson:"company"`
	CreatedAt    time.Time `json:"create_date" bson:"create_date"`
	UpdatedAt    time.Time `json:"update_date" bson:"update_date,omitempty"`
	CommercialID int64     `json:"commercial_id" bson:"commercial_id"`
}

// Assigned reports whether the client has an owning sales collaborator.
func (c *Client) Assigned() bool {
	return c.CommercialID != 0
}
