package models

// BookingStatus represents where a booking is in its lifecycle
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusUpcoming  BookingStatus = "upcoming"
	BookingStatusCompleted BookingStatus = "completed" // seed data only
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the money side of a booking
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// DateLayout is the calendar date format used for booking dates
const DateLayout = "2006-01-02"

// Companion is an additional traveler on a booking
type Companion struct {
	Name string `json:"name"`
}

// Booking is a paid reservation. Offer is a snapshot taken at booking time.
type Booking struct {
	ID            string        `json:"id"`
	Offer         Offer         `json:"offer"`
	UserID        string        `json:"userId"`
	Date          string        `json:"date"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	Companions    []Companion   `json:"companions"`
	TotalPrice    float64       `json:"totalPrice"`
	CheckInDate   string        `json:"checkInDate,omitempty"`
	CheckOutDate  string        `json:"checkOutDate,omitempty"`
	Nights        int           `json:"nights,omitempty"`
	RoomType      *RoomType     `json:"roomType,omitempty"`
}

// Clone returns a deep copy of the booking
func (b Booking) Clone() Booking {
	c := b
	c.Offer = b.Offer.Clone()
	c.Companions = append([]Companion{}, b.Companions...)
	if b.RoomType != nil {
		r := *b.RoomType
		c.RoomType = &r
	}
	return c
}
