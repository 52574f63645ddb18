package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/syammullapudi-pixel/PitstopPros/internal/booking"
	"github.com/syammullapudi-pixel/PitstopPros/internal/http/handlers"
	"github.com/syammullapudi-pixel/PitstopPros/internal/platform/cache"
	"github.com/syammullapudi-pixel/PitstopPros/internal/platform/gcal"
	"github.com/syammullapudi-pixel/PitstopPros/internal/platform/mailer"
	"github.com/syammullapudi-pixel/PitstopPros/internal/schedule"
	"github.com/syammullapudi-pixel/PitstopPros/pkg/config"
	"github.com/syammullapudi-pixel/PitstopPros/pkg/events"
	"github.com/syammullapudi-pixel/PitstopPros/pkg/logger"
	mw "github.com/syammullapudi-pixel/PitstopPros/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	loc, err := time.LoadLocation(cfg.Calendar.TimeZone)
	if err != nil {
		logger.Error("Invalid service time zone", "tz", cfg.Calendar.TimeZone, "error", err)
		os.Exit(1)
	}

	table := schedule.New()
	if cfg.Schedule.File != "" {
		table, err = schedule.Load(cfg.Schedule.File)
		if err != nil {
			logger.Error("Failed to load schedule file", "file", cfg.Schedule.File, "error", err)
			os.Exit(1)
		}
	}

	// Calendar auth is attempted exactly once. On failure the server still
	// starts, but booking creation stays disabled until restart.
	var inserter gcal.Inserter
	client, err := gcal.NewClient(ctx, gcal.Options{
		CredentialsJSON: cfg.Calendar.CredentialsJSON,
		CredentialsFile: cfg.Calendar.CredentialsFile,
		TokenFile:       cfg.Calendar.TokenFile,
	})
	if err != nil {
		logger.Warn("Google Calendar not configured; bookings disabled until restart", "error", err)
	} else {
		inserter = client
		logger.Info("Google Calendar authenticated", "calendar_id", cfg.Calendar.CalendarID)
	}

	var mail mailer.Service
	switch {
	case cfg.Email.DevMode:
		mail = mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		mail = mailer.NewMailer(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	default:
		mail = mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom,
			cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS)
	}

	var bus events.Publisher = events.NoopBus{}
	if cfg.NATS.URL != "" {
		natsBus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer natsBus.Close()
		bus = natsBus
	}

	ownerEmail := cfg.Email.OwnerEmail
	if ownerEmail == "" {
		ownerEmail = cfg.Email.SMTPFrom
	}

	bookingService := booking.NewService(booking.Options{
		Inserter:      inserter,
		Mailer:        mail,
		Table:         table,
		Bus:           bus,
		CalendarID:    cfg.Calendar.CalendarID,
		OwnerEmail:    ownerEmail,
		Location:      loc,
		EventDuration: cfg.Calendar.EventDuration,
	})

	h := handlers.New(bookingService, table)

	var createMiddleware chi.Middlewares
	if cfg.Redis.URL != "" {
		store, err := cache.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			logger.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer store.Close()
		createMiddleware = chi.Chain(mw.Idempotency(store))
	}

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("api"))
	r.Use(mw.Logging)
	r.Use(mw.CORS())
	r.Use(mw.Health)

	r.Route("/api", func(r chi.Router) {
		r.With(createMiddleware...).Post("/bookings/create", h.CreateBooking)
		r.Post("/contact", h.Contact)
		r.Get("/schedule", h.Schedule)
	})

	if cfg.Static.Dir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.Static.Dir)))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	logger.Info("Server running", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
