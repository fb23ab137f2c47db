package store

import (
	"time"

	"marhaba_app_echo/internal/models"
)

func ls(en, ar string) models.LocalizedString {
	return models.LocalizedString{En: en, Ar: ar}
}

func lsp(en, ar string) *models.LocalizedString {
	s := ls(en, ar)
	return &s
}

func seedData() ([]models.User, []models.Offer, []models.Booking, []models.Inquiry) {
	users := []models.User{
		{ID: "u1", Name: "Ahmed Benali", Email: "ahmed@test.com", Password: "password", Type: models.UserTypeTourist},
		{ID: "u2", Name: "Fatima Zohra", Email: "fatima@test.com", Password: "password", Type: models.UserTypeTourist},
		{ID: "p1", Name: "Sahara Adventures", Email: "sahara@provider.com", Password: "password", Type: models.UserTypeProvider, Phone: "+213 555 123 456"},
		{ID: "p2", Name: "Coastal Escapes", Email: "coastal@provider.com", Password: "password", Type: models.UserTypeProvider, Phone: "+213 666 987 654"},
		{ID: "p3", Name: "Kabylie Guesthouses", Email: "kabylie@provider.com", Password: "password", Type: models.UserTypeProvider, Phone: "+213 777 555 444"},
	}

	offers := []models.Offer{
		{
			ID:          "offer-1",
			Title:       ls("Djanet Desert Expedition", "رحلة استكشافية في جانت الصحراوية"),
			Location:    ls("Djanet, Illizi", "جانت، إليزي"),
			Description: ls("A 10-day 4x4 expedition through the stunning landscapes of the Tassili n'Ajjer National Park. Discover ancient rock art, towering sand dunes, and unique rock formations.", "رحلة استكشافية لمدة 10 أيام بالدفع الرباعي عبر المناظر الطبيعية الخلابة في حديقة طاسيلي ناجر الوطنية. اكتشف الفن الصخري القديم والكثبان الرملية الشاهقة والتكوينات الصخرية الفريدة."),
			Images: []string{
				"https://images.unsplash.com/photo-1605652289947-a855d4d38e8f?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1619733979028-78c5432652b4?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1543787002-99035a968925?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1617293523282-e278a2e0965e?q=80&w=1920&auto=format&fit=crop",
			},
			Category:     models.OfferCategoryOrganizedTrip,
			PriceDZD:     85000,
			Provider:     models.OfferProvider{ID: "p1", Name: "Sahara Adventures", Verified: true},
			Rating:       4.8,
			ReviewsCount: 124,
			IncludedServices: []models.LocalizedString{
				ls("4x4 Transport", "النقل بالدفع الرباعي"),
				ls("Full board catering", "إقامة كاملة"),
				ls("Professional guide", "دليل محترف"),
				ls("Camping equipment", "معدات التخييم"),
			},
			CancellationPolicy: ls("Free cancellation up to 14 days before the trip.", "إلغاء مجاني حتى 14 يومًا قبل الرحلة."),
			Duration:           lsp("10 Days, 9 Nights", "10 أيام ، 9 ليالي"),
			Itinerary: []models.ItineraryItem{
				{Day: 1, Description: ls("Arrival in Djanet, transfer to the campsite.", "الوصول إلى جانت، الانتقال إلى المخيم.")},
				{Day: 2, Description: ls("Explore the \"Crying Cow\" rock painting.", "استكشاف لوحة \"البقرة الباكية\" الصخرية.")},
				{Day: 3, Description: ls("Journey to the great dunes of Erg Admer.", "رحلة إلى كثبان عرق آدمر العظيمة.")},
			},
		},
		{
			ID:          "offer-2",
			Title:       ls("Luxury Stay at Oran Bay Hotel", "إقامة فاخرة في فندق خليج وهران"),
			Location:    ls("Oran", "وهران"),
			Description: ls("Experience luxury with a sea view at the prestigious Oran Bay Hotel. Enjoy our infinity pool, spa, and gourmet restaurants.", "جرب الفخامة مع إطلالة على البحر في فندق خليج وهران المرموق. استمتع بمسبحنا اللامتناهي والمنتجع الصحي والمطاعم الفاخرة."),
			Images: []string{
				"https://images.unsplash.com/photo-1561501900-3701fa6a0864?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1540541338287-417002075841?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1621293954908-907159247d87?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1582719508461-905c673771fd?q=80&w=1920&auto=format&fit=crop",
			},
			Category:     models.OfferCategoryHotel,
			PriceDZD:     22000,
			Provider:     models.OfferProvider{ID: "p2", Name: "Coastal Escapes", Verified: true},
			Rating:       4.5,
			ReviewsCount: 340,
			IncludedServices: []models.LocalizedString{
				ls("Breakfast included", "شامل الإفطار"),
				ls("Free Wi-Fi", "واي فاي مجاني"),
				ls("Pool and Gym access", "الوصول إلى المسبح والجيم"),
			},
			CancellationPolicy: ls("Free cancellation up to 48 hours before check-in.", "إلغاء مجاني حتى 48 ساعة قبل تسجيل الوصول."),
			RoomTypes: []models.RoomType{
				{ID: "room-1", Name: ls("Standard Double Room", "غرفة مزدوجة قياسية"), PriceDZD: 22000, Capacity: 2},
				{ID: "room-2", Name: ls("Sea View Suite", "جناح بإطلالة على البحر"), PriceDZD: 35000, Capacity: 3},
			},
		},
		{
			ID:          "offer-3",
			Title:       ls("Charming Guesthouse in Tizi Ouzou", "دار ضيافة ساحرة في تيزي وزو"),
			Location:    ls("Tizi Ouzou, Kabylie", "تيزي وزو، القبائل"),
			Description: ls("A traditional Berber guesthouse in the heart of the Djurdjura mountains. Enjoy authentic cuisine and breathtaking mountain views.", "دار ضيافة أمازيغية تقليدية في قلب جبال جرجرة. استمتع بالمأكولات الأصيلة وإطلالات جبلية خلابة."),
			Images: []string{
				"https://images.unsplash.com/photo-1558331163-f50473315a63?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1588821782294-279541a14175?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1596328330553-832c7a022567?q=80&w=1920&auto=format&fit=crop",
			},
			Category:     models.OfferCategoryGuesthouse,
			PriceDZD:     9000, // per person per night
			Provider:     models.OfferProvider{ID: "p3", Name: "Kabylie Guesthouses", Verified: true},
			Rating:       4.9,
			ReviewsCount: 88,
			IncludedServices: []models.LocalizedString{
				ls("Traditional breakfast", "إفطار تقليدي"),
				ls("Guided hikes available", "جولات مشي بصحبة مرشد متاحة"),
			},
			CancellationPolicy: ls("Free cancellation up to 7 days before check-in.", "إلغاء مجاني حتى 7 أيام قبل تسجيل الوصول."),
			Duration:           lsp("Price per night", "السعر لليلة الواحدة"),
		},
		{
			ID:          "offer-4",
			Title:       ls("Roman Ruins Tour of Timgad", "جولة في آثار تيمقاد الرومانية"),
			Location:    ls("Timgad, Batna", "تيمقاد، باتنة"),
			Description: ls("A guided day trip to the UNESCO World Heritage site of Timgad. Explore one of the best-preserved Roman cities in the world.", "رحلة يومية بصحبة مرشد إلى موقع تيمقاد للتراث العالمي لليونسكو. استكشف واحدة من أفضل المدن الرومانية المحفوظة في العالم."),
			Images: []string{
				"https://images.unsplash.com/photo-1596628012472-32a127a537dd?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1656274403333-56839e557f6b?q=80&w=1920&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1616835288219-049807578759?q=80&w=1920&auto=format&fit=crop",
			},
			Category:     models.OfferCategoryOrganizedTrip,
			PriceDZD:     15000,
			Provider:     models.OfferProvider{ID: "p1", Name: "Sahara Adventures", Verified: true},
			Rating:       4.7,
			ReviewsCount: 95,
			IncludedServices: []models.LocalizedString{
				ls("Private transport", "النقل الخاص"),
				ls("Lunch", "الغداء"),
				ls("Certified guide", "دليل معتمد"),
			},
			CancellationPolicy: ls("Full refund if cancelled 24 hours in advance.", "استرداد كامل المبلغ في حالة الإلغاء قبل 24 ساعة."),
			Duration:           lsp("1 Day", "يوم واحد"),
		},
	}

	room := offers[1].RoomTypes[0]
	bookings := []models.Booking{
		{
			ID:            "b1",
			Offer:         offers[0].Clone(),
			UserID:        "u1",
			Date:          "2023-10-15",
			Status:        models.BookingStatusCompleted,
			PaymentStatus: models.PaymentStatusPaid,
			Companions:    []models.Companion{{Name: "Aisha Benali"}},
			TotalPrice:    170000,
		},
		{
			ID:            "b2",
			Offer:         offers[1].Clone(),
			UserID:        "u2",
			Date:          "2023-11-01",
			Status:        models.BookingStatusUpcoming,
			PaymentStatus: models.PaymentStatusPaid,
			Companions:    []models.Companion{},
			TotalPrice:    66000,
			CheckInDate:   "2024-08-20",
			CheckOutDate:  "2024-08-23",
			Nights:        3,
			RoomType:      &room,
		},
	}

	inquiries := []models.Inquiry{
		{
			ID:               "inq-1",
			OfferID:          "offer-3",
			OfferTitle:       offers[2].Title,
			UserID:           "u1",
			UserName:         "Ahmed Benali",
			ProviderID:       "p3",
			Message:          "Is the guesthouse accessible by public transport from Tizi Ouzou?",
			CreatedAt:        time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC),
			IsReadByProvider: false,
		},
	}

	return users, offers, bookings, inquiries
}
