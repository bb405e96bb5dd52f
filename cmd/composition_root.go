package cmd

import (
	"log/slog"

	httpin "purelife/internal/adapters/in/http"
	"purelife/internal/adapters/out/notify"
	"purelife/internal/adapters/out/postgres"
	"purelife/internal/adapters/out/postgres/productrepo"
	"purelife/internal/adapters/out/postgres/userrepo"
	"purelife/internal/adapters/out/razorpay"
	"purelife/internal/core/application/usecases/commands"
	"purelife/internal/core/application/usecases/queries"
	"purelife/internal/core/ports"
	"purelife/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into application handlers. Everything hangs
// off one gorm.DB; each command gets a fresh unit of work through the factory.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	userRepo    ports.UserRepository
	productRepo ports.ProductRepository
	gateway     ports.PaymentGateway
	notifier    ports.Notifier
}

// NewCompositionRoot builds the object graph from configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	gateway, err := razorpay.NewClient(config.RazorpayKeyID, config.RazorpayKeySecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	notifier, err := notify.NewHTTPDispatcher(config.NotificationEndpoint, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:      config,
		logger:      logger,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		userRepo:    userrepo.NewGormUserRepository(gormDB),
		productRepo: productrepo.NewGormProductRepository(gormDB),
		gateway:     gateway,
		notifier:    notifier,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.userRepo, c.productRepo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.userRepo, c.productRepo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.userRepo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateScheduleInstallationCommandHandler() commands.ScheduleInstallationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleInstallationCommandHandler(f, c.userRepo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInitiatePaymentCommandHandler(f, c.userRepo, c.productRepo, c.gateway)
}

func (c *CompositionRoot) CreateVerifyPaymentCommandHandler() commands.VerifyPaymentCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyPaymentCommandHandler(f, c.userRepo, c.gateway, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateNotifyRentalRenewalsCommandHandler() commands.NotifyRentalRenewalsCommandHandler {
	var f commands.RentalUoWFactory = FuncRentalUoWFactory(func() commands.RentalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyRentalRenewalsCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableAgentsQueryHandler() queries.GetAvailableAgentsQueryHandler {
	return queries.NewGetAvailableAgentsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateAssignAgentCommandHandler(),
		c.CreateScheduleInstallationCommandHandler(),
		c.CreateInitiatePaymentCommandHandler(),
		c.CreateVerifyPaymentCommandHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetAvailableAgentsQueryHandler(),
	)
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateNotifyRentalRenewalsCommandHandler(),
		c.config.RenewalSchedule,
		c.config.RenewalWindowDays,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderPaymentUoWFactory func() commands.OrderPaymentUoW

func (f FuncOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	return f()
}

type FuncRentalUoWFactory func() commands.RentalUoW

func (f FuncRentalUoWFactory) Create() commands.RentalUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
