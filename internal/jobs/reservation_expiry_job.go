package jobs

import (
	"context"
	"log/slog"
	"time"

	"rapidxcel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReservationExpiryJob manages the scheduled release of expired reservations.
// Runs every minute to return stock held by abandoned order attempts to the
// catalog.
type ReservationExpiryJob struct {
	handler commands.ReleaseExpiredReservationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReservationExpiryJob creates a new job for releasing expired reservations.
// Uses ReleaseExpiredReservationsCommandHandler to run the expiry sweep every minute.
func NewReservationExpiryJob(
	handler commands.ReleaseExpiredReservationsCommandHandler,
	logger *slog.Logger,
) *ReservationExpiryJob {
	return &ReservationExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reservation_expiry_job"),
	}
}

// Start begins the reservation expiry job to run every minute.
func (j *ReservationExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseExpiredReservationsCommand(time.Now())

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reservation expiry job failed", "error", err)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released expired reservations", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reservation expiry job started (running every minute)")
	return nil
}

// Stop stops the reservation expiry job.
func (j *ReservationExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reservation expiry job stopped")
}
