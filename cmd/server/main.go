package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/twilio/twilio-go"

	"phillymounting/internal/api"
	"phillymounting/internal/auth"
	"phillymounting/internal/config"
	"phillymounting/internal/repository"
	"phillymounting/internal/service"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	var mailClient service.MailSender
	if cfg.SendGridAPIKey != "" {
		mailClient = sendgrid.NewSendClient(cfg.SendGridAPIKey)
	} else {
		log.Println("WARNING: SENDGRID_API_KEY not set, emails will not be sent")
	}

	var smsClient service.SMSSender
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		twilioClient := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
		smsClient = twilioClient.Api
	}

	bookingRepo := repository.NewBookingRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	sender := service.NewSenderService(cfg, mailClient, smsClient)
	bookingSvc := service.NewBookingService(bookingRepo, sender)
	messageSvc := service.NewMessageService(messageRepo, sender)
	reminderSvc := service.NewReminderService(bookingRepo, sender)
	authSvc := service.NewAdminAuthService(cfg)

	bookingHandler := api.NewBookingHandler(bookingSvc)
	messageHandler := api.NewMessageHandler(messageSvc)
	authHandler := api.NewAdminAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/contact", messageHandler.CreateContactMessage).Methods("POST")
	r.HandleFunc("/api/admin/login", authHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(cfg.JWTSecret))
	admin.HandleFunc("/bookings", bookingHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}", bookingHandler.UpdateBookingStatus).Methods("PATCH")
	admin.HandleFunc("/messages", messageHandler.ListContactMessages).Methods("GET")
	admin.HandleFunc("/messages/{id}", messageHandler.UpdateMessageStatus).Methods("PATCH")

	// Daily appointment reminders at 09:00
	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", func() {
		if err := reminderSvc.SendUpcomingReminders(); err != nil {
			log.Printf("reminder job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule reminder job: %v", err)
	}
	c.Start()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Printf("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
