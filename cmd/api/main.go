package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"homestay/internal/database"
	"homestay/internal/facade"
	"homestay/internal/middleware"
	"homestay/internal/modules/amenities"
	"homestay/internal/modules/auth"
	"homestay/internal/modules/bookings"
	"homestay/internal/modules/hosts"
	"homestay/internal/modules/places"
	"homestay/internal/modules/reviews"
	"homestay/internal/modules/users"
	"homestay/internal/notify"
	jwtsvc "homestay/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	hub := notify.NewHub()
	defer hub.Close()

	var f *facade.Facade
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := database.Connect(dsn)
		if err != nil {
			log.Fatal(err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal(err)
		}
		f = facade.NewDB(db, hub)
	} else {
		log.Println("DATABASE_URL is empty, using in-memory stores")
		f = facade.NewMemory(hub)
	}

	j := jwtsvc.New(secret, 24*time.Hour)

	authService := auth.NewService(f, j)
	authHandler := auth.NewHandler(authService)

	usersHandler := users.NewHandler(f)
	hostsHandler := hosts.NewHandler(f)
	placesHandler := places.NewHandler(f)
	amenitiesHandler := amenities.NewHandler(f)
	bookingsHandler := bookings.NewHandler(f)
	reviewsHandler := reviews.NewHandler(f)
	wsHandler := notify.NewWSHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		wsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))

		hostsHandler.RegisterRoutes(v1, protected)
		placesHandler.RegisterRoutes(v1, protected)
		amenitiesHandler.RegisterRoutes(v1, protected.Group("/", middleware.AdminOnly()))
		reviewsHandler.RegisterRoutes(v1, protected)

		usersHandler.RegisterRoutes(protected)
		bookingsHandler.RegisterRoutes(protected)
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
