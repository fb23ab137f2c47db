package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"marhaba_app_echo/internal/models"
	"marhaba_app_echo/internal/store"
)

func offerIDs(offers []models.Offer) string {
	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = o.ID
	}
	return strings.Join(ids, ",")
}

func TestOfferSearch(t *testing.T) {
	svc := NewOfferService(store.NewSeeded(), NewMemoryCache(), 0)

	tests := []struct {
		name  string
		query OfferSearch
		want  string
	}{
		{"all by rating", OfferSearch{Lang: models.LanguageEnglish}, "offer-3,offer-1,offer-4,offer-2"},
		{"price ascending", OfferSearch{Sort: SortPriceAsc, Lang: models.LanguageEnglish}, "offer-3,offer-4,offer-2,offer-1"},
		{"price descending", OfferSearch{Sort: SortPriceDesc, Lang: models.LanguageEnglish}, "offer-1,offer-2,offer-4,offer-3"},
		{"title match ignores case", OfferSearch{Query: "djanet", Lang: models.LanguageEnglish}, "offer-1"},
		{"location match", OfferSearch{Query: "batna", Lang: models.LanguageEnglish}, "offer-4"},
		{"arabic query", OfferSearch{Query: "وهران", Lang: models.LanguageArabic}, "offer-2"},
		{"english query in arabic", OfferSearch{Query: "oran", Lang: models.LanguageArabic}, ""},
		{"category", OfferSearch{Category: models.OfferCategoryOrganizedTrip, Lang: models.LanguageEnglish}, "offer-1,offer-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if ids := offerIDs(got); ids != tt.want {
				t.Errorf("Search() = %q; want %q", ids, tt.want)
			}
		})
	}
}

func validForm() OfferForm {
	ls := func(en, ar string) models.LocalizedString { return models.LocalizedString{En: en, Ar: ar} }
	return OfferForm{
		Title:              ls("Hoggar Trek", "رحلة الهقار"),
		Location:           ls("Tamanrasset", "تمنراست"),
		Description:        ls("Five days in the Hoggar", "خمسة أيام في الهقار"),
		Images:             []string{"https://example.com/hoggar.jpg"},
		Category:           models.OfferCategoryOrganizedTrip,
		PriceDZD:           60000,
		IncludedServices:   []models.LocalizedString{ls("Guide", "مرشد")},
		CancellationPolicy: ls("Free cancellation", "إلغاء مجاني"),
		Duration:           ls("5 Days", "5 أيام"),
		Itinerary: []models.ItineraryItem{
			{Day: 4, Description: ls("Arrival", "الوصول")},
			{Day: 9, Description: ls("Assekrem", "الأسكرام")},
		},
		RoomTypes: []models.RoomType{{ID: "r", Name: ls("Room", "غرفة"), PriceDZD: 1}},
	}
}

func TestOfferCreate(t *testing.T) {
	s := store.NewSeeded()
	cache := NewMemoryCache()
	svc := NewOfferService(s, cache, 0)
	provider, _ := s.FindUserByID("p1")
	ctx := context.Background()

	before, _ := svc.Search(ctx, OfferSearch{Lang: models.LanguageEnglish})

	offer, err := svc.Create(ctx, provider, validForm())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !strings.HasPrefix(offer.ID, "offer-") || offer.ID == "offer-" {
		t.Errorf("ID = %q", offer.ID)
	}
	if offer.Provider != (models.OfferProvider{ID: "p1", Name: "Sahara Adventures", Verified: true}) {
		t.Errorf("Provider = %+v", offer.Provider)
	}
	if offer.Rating != 0 || offer.ReviewsCount != 0 {
		t.Errorf("rating/reviews = %v/%d", offer.Rating, offer.ReviewsCount)
	}
	if offer.Itinerary[0].Day != 1 || offer.Itinerary[1].Day != 2 {
		t.Errorf("itinerary not renumbered: %+v", offer.Itinerary)
	}
	if offer.RoomTypes != nil {
		t.Errorf("trip kept room types: %+v", offer.RoomTypes)
	}
	if offer.Duration == nil || offer.Duration.En != "5 Days" {
		t.Errorf("Duration = %+v", offer.Duration)
	}
	if first := s.Offers()[0]; first.ID != offer.ID {
		t.Errorf("offer not prepended, first = %q", first.ID)
	}

	after, _ := svc.Search(ctx, OfferSearch{Lang: models.LanguageEnglish})
	if len(after) != len(before)+1 {
		t.Errorf("search cache not invalidated: %d -> %d", len(before), len(after))
	}

	form := validForm()
	form.Duration = models.LocalizedString{En: "5 Days"}
	partial, err := svc.Create(ctx, provider, form)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if partial.Duration != nil {
		t.Errorf("half-filled duration kept: %+v", partial.Duration)
	}
}

func TestOfferFormValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*OfferForm)
		field  string
		key    string
	}{
		{"missing arabic title", func(f *OfferForm) { f.Title.Ar = " " }, "title", "fieldCannotBeEmpty"},
		{"no images", func(f *OfferForm) { f.Images = nil }, "images", "atLeastOneImage"},
		{"no category", func(f *OfferForm) { f.Category = "" }, "category", "selectCategory"},
		{"zero price", func(f *OfferForm) { f.PriceDZD = 0 }, "priceDZD", "priceMustBePositive"},
		{"no services", func(f *OfferForm) { f.IncludedServices = nil }, "includedServices", "addAtLeastOneService"},
		{"empty service", func(f *OfferForm) { f.IncludedServices = []models.LocalizedString{{En: "x"}} }, "includedServices", "fieldCannotBeEmpty"},
		{"empty itinerary day", func(f *OfferForm) { f.Itinerary[0].Description.En = "" }, "itinerary", "fieldCannotBeEmpty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			errs := form.Validate()
			if errs[tt.field] != tt.key {
				t.Errorf("Validate()[%q] = %q; want %q (all: %v)", tt.field, errs[tt.field], tt.key, errs)
			}
		})
	}

	if errs := validForm().Validate(); len(errs) != 0 {
		t.Errorf("valid form errors = %v", errs)
	}
}

func TestOfferUpdateDelete(t *testing.T) {
	s := store.NewSeeded()
	svc := NewOfferService(s, nil, 0)
	owner, _ := s.FindUserByID("p1")
	other, _ := s.FindUserByID("p2")
	tourist, _ := s.FindUserByID("u1")
	ctx := context.Background()

	form := validForm()
	form.PriceDZD = 99000
	updated, err := svc.Update(ctx, owner, "offer-1", form)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != "offer-1" || updated.Rating != 4.8 || updated.PriceDZD != 99000 {
		t.Errorf("updated = id %q rating %v price %v", updated.ID, updated.Rating, updated.PriceDZD)
	}

	if _, err := svc.Update(ctx, other, "offer-1", form); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign Update() error = %v", err)
	}
	if _, err := svc.Create(ctx, tourist, form); !errors.Is(err, ErrForbidden) {
		t.Errorf("tourist Create() error = %v", err)
	}

	if err := svc.Delete(ctx, owner, "offer-1", false); !errors.Is(err, ErrConfirmationRequired) {
		t.Errorf("unconfirmed Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, other, "offer-1", true); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign Delete() error = %v", err)
	}
	if err := svc.Delete(ctx, owner, "offer-1", true); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get("offer-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v", err)
	}
	if _, ok := s.FindBooking("b1"); !ok {
		t.Error("delete cascaded to bookings")
	}
}
