package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"homestay/internal/database"
	"homestay/internal/domain"
	"homestay/internal/facade"
)

// Seeds a demo dataset: an admin, two guests, two hosts with places and
// amenities, a few bookings and one review. Everything goes through the
// facade so the seeded data respects the same rules as the API.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data in dependency order.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM places")
	db.Exec("DELETE FROM amenities")
	db.Exec("DELETE FROM hosts")
	db.Exec("DELETE FROM users")

	f := facade.NewDB(db, nil)
	ctx := context.Background()

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		return string(h)
	}

	// ================== ACCOUNTS ==================
	log.Println("Creating accounts...")

	admin, err := f.CreateUser(ctx, facade.CreateUserParams{
		FirstName:    "Alina",
		LastName:     "Admin",
		Email:        "admin@homestay.local",
		PasswordHash: hash("admin123"),
		IsAdmin:      true,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Admin created: admin@homestay.local / admin123")

	guests := make([]string, 0, 2)
	for _, g := range []struct{ first, last, email string }{
		{"Asel", "Nurlan", "asel@mail.kz"},
		{"Bekzat", "Serik", "bekzat@gmail.com"},
	} {
		u, err := f.CreateUser(ctx, facade.CreateUserParams{
			FirstName:    g.first,
			LastName:     g.last,
			Email:        g.email,
			PasswordHash: hash("guest123"),
		})
		if err != nil {
			log.Fatal(err)
		}
		guests = append(guests, u.ID)
	}
	log.Printf("Guests created: %d (password guest123)", len(guests))

	hosts := make([]string, 0, 2)
	for _, h := range []struct{ first, last, email string }{
		{"Dina", "Kairat", "dina@yandex.kz"},
		{"Marat", "Omar", "marat@homestay.local"},
	} {
		host, err := f.CreateHost(ctx, facade.CreateUserParams{
			FirstName:    h.first,
			LastName:     h.last,
			Email:        h.email,
			PasswordHash: hash("host123"),
		})
		if err != nil {
			log.Fatal(err)
		}
		hosts = append(hosts, host.ID)
	}
	log.Printf("Hosts created: %d (password host123)", len(hosts))

	// ================== AMENITIES ==================
	log.Println("Creating amenities...")

	amenityIDs := map[string]string{}
	for _, name := range []string{"Wi-Fi", "Kitchen", "Parking", "Air conditioning", "Washer"} {
		a, err := f.CreateAmenity(ctx, name)
		if err != nil {
			log.Fatal(err)
		}
		amenityIDs[name] = a.ID
	}

	// ================== PLACES ==================
	log.Println("Creating places...")

	places := []facade.CreatePlaceParams{
		{
			Title:       "Cozy studio near the park",
			Description: "A bright studio apartment five minutes from the central park.",
			Price:       45,
			Latitude:    43.238949,
			Longitude:   76.889709,
			Capacity:    2,
			HostID:      hosts[0],
			AmenityIDs:  []string{amenityIDs["Wi-Fi"], amenityIDs["Kitchen"]},
		},
		{
			Title:       "Mountain view loft",
			Description: "Spacious loft with a panoramic view of the mountains.",
			Price:       120,
			Latitude:    43.2389,
			Longitude:   76.9454,
			Capacity:    4,
			HostID:      hosts[0],
			AmenityIDs:  []string{amenityIDs["Wi-Fi"], amenityIDs["Parking"], amenityIDs["Air conditioning"]},
		},
		{
			Title:       "Riverside family house",
			Description: "Quiet two-storey house by the river, great for families.",
			Price:       90,
			Latitude:    51.169392,
			Longitude:   71.449074,
			Capacity:    6,
			HostID:      hosts[1],
			AmenityIDs:  []string{amenityIDs["Kitchen"], amenityIDs["Washer"]},
		},
	}
	placeIDs := make([]string, 0, len(places))
	for _, p := range places {
		created, err := f.CreatePlace(ctx, p)
		if err != nil {
			log.Fatal(err)
		}
		placeIDs = append(placeIDs, created.ID)
	}
	log.Printf("Places created: %d", len(placeIDs))

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	checkin := time.Now().UTC().AddDate(0, 0, 14).Truncate(24 * time.Hour)

	b1, err := f.CreateBooking(ctx, facade.CreateBookingParams{
		UserID:      guests[0],
		PlaceID:     placeIDs[0],
		GuestCount:  2,
		CheckinDate: checkin,
		NightCount:  3,
	})
	if err != nil {
		log.Fatal(err)
	}
	if _, err := f.SetBookingStatus(ctx, b1.ID, domain.BookingConfirmed); err != nil {
		log.Fatal(err)
	}

	if _, err := f.CreateBooking(ctx, facade.CreateBookingParams{
		UserID:      guests[1],
		PlaceID:     placeIDs[2],
		GuestCount:  4,
		CheckinDate: checkin.AddDate(0, 0, 7),
		NightCount:  5,
	}); err != nil {
		log.Fatal(err)
	}
	log.Println("Bookings created: 2")

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")

	if _, err := f.CreateReview(ctx, facade.CreateReviewParams{
		BookingID: b1.ID,
		Text:      "Lovely stay, spotless and exactly as described.",
		Rating:    5,
	}); err != nil {
		log.Fatal(err)
	}

	_ = admin
	log.Println("Seed complete")
}
