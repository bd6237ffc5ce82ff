package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/canchoice-leads/internal/config"
	"github.com/xavierca1/canchoice-leads/internal/entity"
	"github.com/xavierca1/canchoice-leads/internal/infra/database"
	"github.com/xavierca1/canchoice-leads/internal/infra/http/handlers"
	"github.com/xavierca1/canchoice-leads/internal/infra/http/middleware"
	"github.com/xavierca1/canchoice-leads/internal/infra/integration/zoho"
	"github.com/xavierca1/canchoice-leads/internal/infra/mail"
	"github.com/xavierca1/canchoice-leads/internal/infra/queue"
	"github.com/xavierca1/canchoice-leads/internal/usecase"
)

func main() {
	cfg := config.Load()

	// Intake log is optional; the service still books leads without it.
	var intakeRepo entity.IntakeRepositoryInterface
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		intakeRepo = database.NewIntakeRepository(db)
	}

	// Queue + mail worker are optional too.
	var rabbitMQ *queue.RabbitMQ
	var rabbitConn *amqp.Connection
	var producer usecase.QueueProducerInterface
	if cfg.RabbitHost != "" {
		var err error
		rabbitMQ, err = queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		rabbitConn = rabbitMQ.Conn

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		if cfg.MailConfigured() {
			mailSender := mail.NewEmailSender(
				cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass,
				cfg.MailFrom, cfg.DealerEmail,
			)
			worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
			go worker.Start(queue.QueueName)
		} else {
			log.Println("mail not configured, notification worker disabled")
		}
	}

	crm := zoho.NewClient(zoho.Config{
		RefreshToken: cfg.ZohoRefreshToken,
		ClientID:     cfg.ZohoClientID,
		ClientSecret: cfg.ZohoClientSecret,
		TokenURL:     cfg.ZohoTokenURL,
		OrgID:        cfg.ZohoOrgID,
		BaseURL:      cfg.ZohoBaseURL,
	})

	searchUC := usecase.NewSearchDuplicatesUseCase(crm, intakeRepo, cfg.Location)
	createUC := usecase.NewCreateLeadUseCase(crm, intakeRepo, producer, cfg.Location)

	leadHandler := handlers.NewLeadHandler(searchUC, createUC)
	validationHandler := handlers.NewValidationHandler()
	optionsHandler := handlers.NewOptionsHandler()
	intakeHandler := handlers.NewIntakeHandler(intakeRepo)
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, cfg.CRMConfigured())

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Post("/leads/search-duplicates", leadHandler.HandleSearchDuplicates)
	r.Post("/leads", leadHandler.HandleCreate)
	r.Post("/leads/validate", validationHandler.Handle)
	r.Get("/leads/options", optionsHandler.Handle)
	r.Get("/leads/intake-log", intakeHandler.HandleList)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("lead intake API listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
