package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	httpin "cardmarket/internal/adapters/in/http"
	rabbitin "cardmarket/internal/adapters/in/rabbitmq"
	"cardmarket/internal/adapters/out/kafka"
	"cardmarket/internal/adapters/out/mail"
	"cardmarket/internal/adapters/out/postgres"
	"cardmarket/internal/adapters/out/rabbitmq"
	"cardmarket/internal/core/application/usecases/commands"
	"cardmarket/internal/core/application/usecases/queries"
	"cardmarket/internal/core/ports"
	"cardmarket/internal/jobs"
	"cardmarket/internal/pkg/auth"
)

const defaultTokenTTL = time.Hour

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	publisher ports.EventPublisher
	notifier  ports.Notifier
	hasher    ports.PasswordHasher
	signer    ports.TokenSigner

	logger *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var publisher ports.EventPublisher
	if config.KafkaHost != "" {
		publisher = kafka.NewPublisher(config.KafkaHost, config.KafkaShipmentEventsTopic)
	}

	var notifier ports.Notifier
	if config.RabbitMQURL != "" {
		queueNotifier, err := rabbitmq.NewQueueNotifier(config.RabbitMQURL, config.NotificationQueueName)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, notifications disabled", "error", err)
		} else {
			notifier = queueNotifier
		}
	}

	ttl := defaultTokenTTL
	if config.JWTTokenTTL != "" {
		if parsed, err := time.ParseDuration(config.JWTTokenTTL); err == nil {
			ttl = parsed
		}
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		notifier:   notifier,
		hasher:     auth.NewArgon2Hasher(),
		signer:     auth.NewJWTSigner(config.JWTSecret, ttl),
		logger:     logger,
	}
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) purchaseUoWFactory() commands.PurchaseUoWFactory {
	return FuncPurchaseUoWFactory(func() commands.PurchaseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) intermediaryUoWFactory() commands.IntermediaryUoWFactory {
	return FuncIntermediaryUoWFactory(func() commands.IntermediaryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		RegisterIntermediary: commands.NewRegisterIntermediaryCommandHandler(c.intermediaryUoWFactory(), c.hasher),
		LoginIntermediary:    commands.NewLoginIntermediaryCommandHandler(c.intermediaryUoWFactory(), c.hasher, c.signer),
		RemoveIntermediary:   commands.NewRemoveIntermediaryCommandHandler(c.crossAggregateUoWFactory()),
		PlanShipment:         commands.NewPlanShipmentCommandHandler(c.shipmentUoWFactory()),
		ActivateShipment:     commands.NewActivateShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher),
		GenerateOrder:        commands.NewGenerateOrderCommandHandler(c.shipmentUoWFactory(), c.publisher),
		MarkSellerSent:       commands.NewMarkSellerSentCommandHandler(c.shipmentUoWFactory(), c.publisher),
		DispatchShipment:     commands.NewDispatchShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher),
		ReceiveShipment:      commands.NewReceiveShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher),
		MarkDelivered:        commands.NewMarkDeliveredCommandHandler(c.shipmentUoWFactory(), c.publisher),
		MarkWithdrawn:        commands.NewMarkWithdrawnCommandHandler(c.shipmentUoWFactory(), c.publisher),
		CancelShipment:       commands.NewCancelShipmentCommandHandler(c.shipmentUoWFactory(), c.publisher),
		DeleteShipment:       commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory()),
		UpdateShipment:       commands.NewUpdateShipmentDetailsCommandHandler(c.shipmentUoWFactory()),
		CreatePurchase:       commands.NewCreatePurchaseCommandHandler(c.purchaseUoWFactory()),
		AttachPurchase:       commands.NewAttachPurchaseCommandHandler(c.crossAggregateUoWFactory()),
		DetachPurchase:       commands.NewDetachPurchaseCommandHandler(c.crossAggregateUoWFactory()),
		SetPurchaseStatus:    commands.NewSetPurchaseStatusCommandHandler(c.purchaseUoWFactory()),
		GetShipments:         queries.NewGetShipmentsQueryHandler(c.gormDB),
		GetShipmentPurchases: queries.NewGetShipmentPurchasesQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.CreateServerHandlers(), c.signer)
}

// CreateJobManager wires the scheduled jobs. Returns nil when notifications
// are disabled, since the readiness job has nothing to deliver through.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.notifier == nil {
		return nil
	}
	return jobs.NewJobManager(c.crossAggregateUoWFactory(), c.notifier, c.logger)
}

// CreateMailWorker wires the queue-draining mail worker. Returns nil when the
// broker or the mail provider is not configured.
func (c *CompositionRoot) CreateMailWorker(config Config) (*rabbitin.MailWorker, error) {
	if c.notifier == nil || config.SendGridAPIKey == "" {
		return nil, nil
	}

	sender := mail.NewSendGridSender(config.SendGridAPIKey, config.SendGridFromEmail, config.SendGridFromName)
	return rabbitin.NewMailWorker(config.RabbitMQURL, config.NotificationQueueName, sender)
}

// Close releases the broker connections held by the root.
func (c *CompositionRoot) Close() {
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.logger.Warn("failed to close event publisher", "error", err)
		}
	}
	if closer, ok := c.notifier.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			c.logger.Warn("failed to close notifier", "error", err)
		}
	}
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncPurchaseUoWFactory func() commands.PurchaseUoW

func (f FuncPurchaseUoWFactory) Create() commands.PurchaseUoW {
	return f()
}

type FuncIntermediaryUoWFactory func() commands.IntermediaryUoW

func (f FuncIntermediaryUoWFactory) Create() commands.IntermediaryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
