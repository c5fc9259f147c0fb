package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"stagepass/internal/catalog"
	"stagepass/internal/config"
	"stagepass/internal/email"
	"stagepass/internal/observability"
	"stagepass/internal/store"

	analyticsHandler "stagepass/internal/analytics/handler"
	analyticsProcessor "stagepass/internal/analytics/processor"
	kafkaClient "stagepass/internal/clients/kafka"
	"stagepass/internal/clients/mail"
	"stagepass/internal/clients/paymentlink"
	"stagepass/internal/clients/storage"
	paymentlinksHandler "stagepass/internal/paymentlinks/handler"
	paymentlinksProcessor "stagepass/internal/paymentlinks/processor"
	settlementHandler "stagepass/internal/settlement/handler"
	settlementProcessor "stagepass/internal/settlement/processor"
	"stagepass/internal/workers"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	SettlementHandler   *settlementHandler.Handler
	PaymentLinksHandler *paymentlinksHandler.Handler
	AnalyticsHandler    *analyticsHandler.Handler

	// Background workers
	Reconciler *workers.ReconcilerWorker

	// Kafka clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	mailClient, err := mail.NewResendClient(cfg.Mail.ResendAPIKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	storageClient, err := storage.New(storage.Config{
		Endpoint:    cfg.Storage.Endpoint,
		AccessKey:   cfg.Storage.AccessKey,
		SecretKey:   cfg.Storage.SecretKey,
		Bucket:      cfg.Storage.Bucket,
		Secure:      cfg.Storage.Secure,
		DownloadTTL: cfg.Storage.DownloadTTL,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	providerClient := paymentlink.New(paymentlink.Config{
		KeyID:     cfg.Provider.KeyID,
		KeySecret: cfg.Provider.KeySecret,
		BaseURL:   cfg.Provider.BaseURL,
	}, logger)

	brokerList := strings.Split(cfg.Kafka.Brokers, ",")
	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: brokerList,
		Topic:   cfg.Kafka.Topic,
	}, logger)

	// Initialize email and catalog services
	emailService := email.New(mailClient, cfg.Mail.DefaultSender, logger)
	catalogService := catalog.New(&deps.Store, storageClient, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.New(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, logger)

	// Initialize the settlement engine and handler
	settlementProc := settlementProcessor.New(
		&deps.Store,
		catalogService,
		emailService,
		analyticsProc,
		deps.KafkaProducer,
		logger,
	)
	deps.SettlementHandler = settlementHandler.New(settlementProc, cfg.Provider.WebhookSecret, logger)

	// Initialize payment link issuance
	linksProc := paymentlinksProcessor.New(&deps.Store, providerClient, logger)
	deps.PaymentLinksHandler = paymentlinksHandler.New(linksProc, logger)

	// Initialize the reconciliation worker
	deps.Reconciler = workers.New(
		&deps.Store,
		settlementProc,
		logger,
		cfg.Worker.ReconcileInterval,
		cfg.Worker.DeliveryGrace,
		cfg.Worker.PendingTTL,
	)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
}
