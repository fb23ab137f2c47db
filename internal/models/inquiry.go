package models

import "time"

// Inquiry is a question sent by a tourist to the provider of an offer.
// It carries at most one reply.
type Inquiry struct {
	ID               string          `json:"id"`
	OfferID          string          `json:"offerId"`
	OfferTitle       LocalizedString `json:"offerTitle"`
	UserID           string          `json:"userId"`
	UserName         string          `json:"userName"`
	ProviderID       string          `json:"providerId"`
	Message          string          `json:"message"`
	Response         *string         `json:"response,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	IsReadByProvider bool            `json:"isReadByProvider"`
}

func (i Inquiry) Answered() bool { return i.Response != nil }

// Clone returns a copy that does not share the response pointer
func (i Inquiry) Clone() Inquiry {
	c := i
	if i.Response != nil {
		r := *i.Response
		c.Response = &r
	}
	return c
}
