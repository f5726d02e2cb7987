package cmd

import (
	"log/slog"
	"net/http"
	"os"

	"foodorder/internal/adapters/out/httpclient"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	configs    Config
	logger     *slog.Logger
	schedule   *jobs.InMemorySchedule
	clock      jobs.SystemClock
	httpClient *http.Client
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		configs:    configs,
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		schedule:   jobs.NewInMemorySchedule(),
		clock:      jobs.SystemClock{},
		httpClient: &http.Client{},
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Schedule() *jobs.InMemorySchedule {
	return c.schedule
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		httpclient.NewPaymentGatewayClient(c.configs.PaymentServiceURL, c.httpClient, httpclient.DefaultCallTimeout),
		httpclient.NewDeliveryCoordinatorClient(c.configs.DeliveryServiceURL, c.httpClient, httpclient.DefaultCallTimeout),
		httpclient.NewNotificationSinkClient(c.configs.NotificationServiceURL, c.httpClient, httpclient.DefaultCallTimeout),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	// Unbounded sink on purpose: the status update path has no call timeout.
	return commands.NewUpdateOrderStatusCommandHandler(
		f,
		httpclient.NewNotificationSinkClient(c.configs.NotificationServiceURL, c.httpClient, 0),
		c.clock,
	)
}

func (c *CompositionRoot) CreateProcessPaymentCommandHandler() commands.ProcessPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessPaymentCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f, c.schedule, c.clock)
}

func (c *CompositionRoot) CreateAdvanceDeliveriesCommandHandler() commands.AdvanceDeliveriesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	// Progression pushes carry no call timeout, mirroring the status
	// update path they are routed through.
	return commands.NewAdvanceDeliveriesCommandHandler(
		f,
		c.schedule,
		httpclient.NewOrderStatusPusherClient(c.configs.OrderServiceURL, c.httpClient, 0),
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateNotificationCommandHandler() commands.CreateNotificationCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateNotificationCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryStatusQueryHandler() queries.GetDeliveryStatusQueryHandler {
	return queries.NewGetDeliveryStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserNotificationsQueryHandler() queries.GetUserNotificationsQueryHandler {
	return queries.NewGetUserNotificationsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
