package worker

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/mserjo/bossy/internal/notification"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/logger"
	"github.com/mserjo/bossy/pkg/serrors"
	"github.com/mserjo/bossy/pkg/storage"
)

// DeliveryWorker pushes stored notifications to out-of-app channels. The
// in-app record is already committed when the job runs, so delivery failures
// are retried without ever duplicating the record itself.
//
// Out-of-app channels (email, push) plug in here; until one is configured the
// worker only logs the delivery.
type DeliveryWorker struct {
	river.WorkerDefaults[notification.DeliveryJobArgs]

	storage storage.Storage
}

// NewDeliveryWorker constructs a DeliveryWorker reading notifications from the
// provided storage.
func NewDeliveryWorker(storage storage.Storage) *DeliveryWorker {
	return &DeliveryWorker{storage: storage}
}

// Work delivers a single notification.
func (d *DeliveryWorker) Work(ctx context.Context, job *river.Job[notification.DeliveryJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("notificationID", job.Args.NotificationID.String()))

	row, err := d.storage.NotificationByID(ctx, domain.NotificationID(job.Args.NotificationID))
	if err != nil {
		logger.Error(ctx, "error fetching notification", zap.Error(err))

		return fmt.Errorf("could not fetch notification: %w", err)
	}
	if row == nil {
		// the notification was removed; nothing to deliver
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "notification not found")) //nolint: wrapcheck
	}

	logger.Info(ctx, "notification delivered",
		zap.String("type", string(row.Type)),
		zap.String("title", row.Title))

	return nil
}
