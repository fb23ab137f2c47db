package models

// OfferCategory represents the kind of bookable listing
type OfferCategory string

const (
	OfferCategoryOrganizedTrip OfferCategory = "trip"
	OfferCategoryHotel         OfferCategory = "hotel"
	OfferCategoryGuesthouse    OfferCategory = "guesthouse"
)

// Valid reports whether c is a known category
func (c OfferCategory) Valid() bool {
	switch c {
	case OfferCategoryOrganizedTrip, OfferCategoryHotel, OfferCategoryGuesthouse:
		return true
	}
	return false
}

// ItineraryItem is one day of an organized trip
type ItineraryItem struct {
	Day         int             `json:"day"`
	Description LocalizedString `json:"description"`
}

// RoomType is a bookable room of a hotel offer
type RoomType struct {
	ID       string          `json:"id"`
	Name     LocalizedString `json:"name"`
	PriceDZD float64         `json:"priceDZD"`
	Capacity int             `json:"capacity"`
}

// OfferProvider is the provider reference embedded in an offer
type OfferProvider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
}

// Offer represents a trip, hotel or guesthouse listing
type Offer struct {
	ID                 string            `json:"id"`
	Title              LocalizedString   `json:"title"`
	Location           LocalizedString   `json:"location"`
	Description        LocalizedString   `json:"description"`
	Images             []string          `json:"images"`
	Category           OfferCategory     `json:"category"`
	PriceDZD           float64           `json:"priceDZD"`
	Provider           OfferProvider     `json:"provider"`
	Rating             float64           `json:"rating"`
	ReviewsCount       int               `json:"reviewsCount"`
	IncludedServices   []LocalizedString `json:"includedServices"`
	CancellationPolicy LocalizedString   `json:"cancellationPolicy"`
	Duration           *LocalizedString  `json:"duration,omitempty"`
	Itinerary          []ItineraryItem   `json:"itinerary,omitempty"`
	RoomTypes          []RoomType        `json:"roomTypes,omitempty"`
}

// RoomByID returns the room type with the given id, if the offer has one
func (o Offer) RoomByID(id string) (RoomType, bool) {
	for _, r := range o.RoomTypes {
		if r.ID == id {
			return r, true
		}
	}
	return RoomType{}, false
}

// Normalize enforces the category invariants: itinerary only for trips,
// room types only for hotels.
func (o *Offer) Normalize() {
	if o.Category != OfferCategoryOrganizedTrip {
		o.Itinerary = nil
	}
	if o.Category != OfferCategoryHotel {
		o.RoomTypes = nil
	}
}

// Clone returns a deep copy so that snapshots do not share slices
func (o Offer) Clone() Offer {
	c := o
	c.Images = append([]string(nil), o.Images...)
	c.IncludedServices = append([]LocalizedString(nil), o.IncludedServices...)
	c.Itinerary = append([]ItineraryItem(nil), o.Itinerary...)
	c.RoomTypes = append([]RoomType(nil), o.RoomTypes...)
	if o.Duration != nil {
		d := *o.Duration
		c.Duration = &d
	}
	if len(o.Itinerary) == 0 {
		c.Itinerary = nil
	}
	if len(o.RoomTypes) == 0 {
		c.RoomTypes = nil
	}
	return c
}
