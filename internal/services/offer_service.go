package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/store"
)

const offerSearchCachePrefix = "offers:search:"

// Sort orders accepted by Search
const (
	SortRating    = "rating"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// OfferSearch holds the offers page filters
type OfferSearch struct {
	Query    string
	Category models.OfferCategory
	Sort     string
	Lang     models.Language
}

func (q OfferSearch) cacheKey() string {
	return fmt.Sprintf("%s%s|%s|%s|%s", offerSearchCachePrefix, q.Lang, q.Category, q.Sort, strings.ToLower(q.Query))
}

// OfferForm is the provider's add/edit offer form
type OfferForm struct {
	Title              models.LocalizedString   `json:"title"`
	Location           models.LocalizedString   `json:"location"`
	Description        models.LocalizedString   `json:"description"`
	Images             []string                 `json:"images"`
	Category           models.OfferCategory     `json:"category"`
	PriceDZD           float64                  `json:"priceDZD"`
	IncludedServices   []models.LocalizedString `json:"includedServices"`
	CancellationPolicy models.LocalizedString   `json:"cancellationPolicy"`
	Duration           models.LocalizedString   `json:"duration"`
	Itinerary          []models.ItineraryItem   `json:"itinerary"`
	RoomTypes          []models.RoomType        `json:"roomTypes"`
}

// Validate returns the form errors keyed by field
func (f OfferForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if !f.Title.Complete() {
		errs["title"] = "fieldCannotBeEmpty"
	}
	if !f.Location.Complete() {
		errs["location"] = "fieldCannotBeEmpty"
	}
	if !f.Description.Complete() {
		errs["description"] = "fieldCannotBeEmpty"
	}
	if !f.CancellationPolicy.Complete() {
		errs["cancellationPolicy"] = "fieldCannotBeEmpty"
	}
	if len(f.Images) == 0 {
		errs["images"] = "atLeastOneImage"
	}
	if !f.Category.Valid() {
		errs["category"] = "selectCategory"
	}
	if f.PriceDZD <= 0 {
		errs["priceDZD"] = "priceMustBePositive"
	}
	for _, s := range f.IncludedServices {
		if !s.Complete() {
			errs["includedServices"] = "fieldCannotBeEmpty"
			break
		}
	}
	if len(f.IncludedServices) == 0 {
		errs["includedServices"] = "addAtLeastOneService"
	}
	if f.Category == models.OfferCategoryOrganizedTrip {
		for _, item := range f.Itinerary {
			if !item.Description.Complete() {
				errs["itinerary"] = "fieldCannotBeEmpty"
				break
			}
		}
	}
	if f.Category == models.OfferCategoryHotel {
		for _, r := range f.RoomTypes {
			if !r.Name.Complete() || r.PriceDZD <= 0 {
				errs["roomTypes"] = "fieldCannotBeEmpty"
				break
			}
		}
	}
	return errs
}

// apply copies the form onto offer, keeping id, provider and rating
func (f OfferForm) apply(offer *models.Offer) {
	offer.Title = f.Title
	offer.Location = f.Location
	offer.Description = f.Description
	offer.Images = append([]string(nil), f.Images...)
	offer.Category = f.Category
	offer.PriceDZD = f.PriceDZD
	offer.IncludedServices = append([]models.LocalizedString(nil), f.IncludedServices...)
	offer.CancellationPolicy = f.CancellationPolicy
	offer.Duration = nil
	if f.Duration.Complete() {
		d := f.Duration
		offer.Duration = &d
	}
	offer.Itinerary = make([]models.ItineraryItem, 0, len(f.Itinerary))
	for i, item := range f.Itinerary {
		offer.Itinerary = append(offer.Itinerary, models.ItineraryItem{Day: i + 1, Description: item.Description})
	}
	offer.RoomTypes = make([]models.RoomType, 0, len(f.RoomTypes))
	for _, r := range f.RoomTypes {
		if r.ID == "" {
			r.ID = "room-" + uuid.New().String()
		}
		offer.RoomTypes = append(offer.RoomTypes, r)
	}
	offer.Normalize()
	if len(offer.Itinerary) == 0 {
		offer.Itinerary = nil
	}
	if len(offer.RoomTypes) == 0 {
		offer.RoomTypes = nil
	}
}

type OfferService struct {
	store    *store.Store
	cache    Cache
	cacheTTL time.Duration
}

func NewOfferService(s *store.Store, cache Cache, cacheTTL time.Duration) *OfferService {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &OfferService{store: s, cache: cache, cacheTTL: cacheTTL}
}

// Search filters offers by a case-insensitive match on title or location in
// the requested language, and by category, then sorts them.
func (s *OfferService) Search(ctx context.Context, q OfferSearch) ([]models.Offer, error) {
	return GetOrSet(s.cache, ctx, q.cacheKey(), s.cacheTTL, func() ([]models.Offer, error) {
		return searchOffers(s.store.Offers(), q), nil
	})
}

func searchOffers(all []models.Offer, q OfferSearch) []models.Offer {
	query := strings.ToLower(strings.TrimSpace(q.Query))
	result := make([]models.Offer, 0, len(all))
	for _, o := range all {
		titleMatch := strings.Contains(strings.ToLower(o.Title.Get(q.Lang)), query)
		locationMatch := strings.Contains(strings.ToLower(o.Location.Get(q.Lang)), query)
		categoryMatch := q.Category == "" || o.Category == q.Category
		if (titleMatch || locationMatch) && categoryMatch {
			result = append(result, o)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		switch q.Sort {
		case SortPriceAsc:
			return result[i].PriceDZD < result[j].PriceDZD
		case SortPriceDesc:
			return result[i].PriceDZD > result[j].PriceDZD
		default:
			return result[i].Rating > result[j].Rating
		}
	})
	return result
}

// Get returns the offer with the given id
func (s *OfferService) Get(id string) (models.Offer, error) {
	o, ok := s.store.FindOffer(id)
	if !ok {
		return models.Offer{}, ErrNotFound
	}
	return o, nil
}

// Create publishes a new offer authored by the provider
func (s *OfferService) Create(ctx context.Context, provider models.User, form OfferForm) (models.Offer, error) {
	if !provider.IsProvider() {
		return models.Offer{}, ErrForbidden
	}
	if err := newValidationError(form.Validate()); err != nil {
		return models.Offer{}, err
	}

	offer := models.Offer{
		ID:           "offer-" + uuid.New().String(),
		Provider:     models.OfferProvider{ID: provider.ID, Name: provider.Name, Verified: true},
		Rating:       0,
		ReviewsCount: 0,
	}
	form.apply(&offer)
	s.store.AddOffer(offer)
	s.invalidate(ctx)

	logger.FromContext(ctx).Info("Offer created",
		zap.String("offer_id", offer.ID),
		zap.String("provider_id", provider.ID),
		zap.String("category", string(offer.Category)))
	return offer, nil
}

// Update replaces the offer content. Only the owning provider may update.
func (s *OfferService) Update(ctx context.Context, provider models.User, id string, form OfferForm) (models.Offer, error) {
	offer, err := s.owned(provider, id)
	if err != nil {
		return models.Offer{}, err
	}
	if err := newValidationError(form.Validate()); err != nil {
		return models.Offer{}, err
	}

	form.apply(&offer)
	if err := s.store.UpdateOffer(offer); err != nil {
		return models.Offer{}, err
	}
	s.invalidate(ctx)

	logger.FromContext(ctx).Info("Offer updated", zap.String("offer_id", id))
	return offer, nil
}

// Delete removes the offer once the provider confirmed. Existing bookings and
// inquiries keep their copies.
func (s *OfferService) Delete(ctx context.Context, provider models.User, id string, confirmed bool) error {
	if _, err := s.owned(provider, id); err != nil {
		return err
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if err := s.store.DeleteOffer(id); err != nil {
		return err
	}
	s.invalidate(ctx)

	logger.FromContext(ctx).Info("Offer deleted", zap.String("offer_id", id))
	return nil
}

func (s *OfferService) owned(provider models.User, id string) (models.Offer, error) {
	if !provider.IsProvider() {
		return models.Offer{}, ErrForbidden
	}
	offer, ok := s.store.FindOffer(id)
	if !ok {
		return models.Offer{}, ErrNotFound
	}
	if offer.Provider.ID != provider.ID {
		return models.Offer{}, ErrForbidden
	}
	return offer, nil
}

func (s *OfferService) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, offerSearchCachePrefix); err != nil {
		logger.FromContext(ctx).Warn("Failed to invalidate offer search cache", zap.Error(err))
	}
}
