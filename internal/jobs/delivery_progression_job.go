package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryProgressionJob manages the scheduled progression of deliveries.
// Runs every second to pick up and complete deliveries whose offsets have
// elapsed.
type DeliveryProgressionJob struct {
	handler commands.AdvanceDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryProgressionJob creates a new job for advancing deliveries.
// Uses AdvanceDeliveriesCommandHandler to process scheduled tasks every second.
func NewDeliveryProgressionJob(handler commands.AdvanceDeliveriesCommandHandler, logger *slog.Logger) *DeliveryProgressionJob {
	return &DeliveryProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_progression_job"),
	}
}

// Start begins the delivery progression job to run every second.
func (j *DeliveryProgressionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceDeliveriesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery progression job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery progression job started (running every second)")
	return nil
}

// Stop stops the delivery progression job.
func (j *DeliveryProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery progression job stopped")
}
